package robot

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedDirection = errors.New("unrecognized direction")
	ErrUnrecognizedMovement  = errors.New("unrecognized movement")
	ErrCoordinateOverflow    = errors.New("coordinate overflow")
)

// OverflowError reports a Forward move that would leave the int64 grid.
type OverflowError struct {
	From     RobotState
	Movement Movement
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: moving %s from %s", ErrCoordinateOverflow, e.Movement, e.From)
}

func (e *OverflowError) Unwrap() error {
	return ErrCoordinateOverflow
}
