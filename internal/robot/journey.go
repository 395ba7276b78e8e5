package robot

import "slices"

// Journey is one record of the input: a claimed start, the commands issued and
// the claimed end. End is whatever the input says; it is never computed here.
type Journey struct {
	Start RobotState
	Moves []Movement
	End   RobotState
}

// Equal reports whether both journeys have the same states and moves.
func (j Journey) Equal(other Journey) bool {
	return j.Start == other.Start && j.End == other.End && slices.Equal(j.Moves, other.Moves)
}
