package robot

import (
	"fmt"
	"strings"
)

// Movement is a single robot command.
type Movement int

const (
	Forward Movement = iota
	TurnLeft
	TurnRight
)

// MovementOf looks up the command written as r.
func MovementOf(r rune) (Movement, error) {
	switch r {
	case 'F':
		return Forward, nil
	case 'L':
		return TurnLeft, nil
	case 'R':
		return TurnRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedMovement, r)
}

// MovementsOf converts a movement line such as "FRRFLFFL". Unknown characters
// are an error, never skipped.
func MovementsOf(s string) ([]Movement, error) {
	moves := make([]Movement, 0, len(s))
	for i, r := range s {
		m, err := MovementOf(r)
		if err != nil {
			return nil, fmt.Errorf("at index %d: %w", i, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Rune is the input character for m.
func (m Movement) Rune() rune {
	switch m {
	case Forward:
		return 'F'
	case TurnLeft:
		return 'L'
	case TurnRight:
		return 'R'
	}
	return '?'
}

func (m Movement) String() string {
	switch m {
	case Forward:
		return "Forward"
	case TurnLeft:
		return "TurnLeft"
	case TurnRight:
		return "TurnRight"
	}
	return fmt.Sprintf("Movement(%d)", int(m))
}

// FormatMovements writes moves back in input notation.
func FormatMovements(moves []Movement) string {
	var sb strings.Builder
	sb.Grow(len(moves))
	for _, m := range moves {
		sb.WriteRune(m.Rune())
	}
	return sb.String()
}
