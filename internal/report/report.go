// Package report compares simulated end states with the end states claimed by
// the input and renders the outcome.
package report

import (
	"errors"
	"fmt"

	"journeys/internal/robot"
)

var ErrLengthMismatch = errors.New("journeys and results differ in length")

// Verdict is the outcome of one journey.
type Verdict struct {
	Index   int
	Journey robot.Journey
	Actual  robot.RobotState
}

// Passed reports whether the robot ended where the journey claimed.
func (v Verdict) Passed() bool {
	return v.Actual == v.Journey.End
}

// Report holds the verdicts in input order.
type Report struct {
	Verdicts []Verdict
}

// New pairs every journey with its simulated end state.
func New(journeys []robot.Journey, results []robot.RobotState) (Report, error) {
	if len(journeys) != len(results) {
		return Report{}, fmt.Errorf("%w: %d journeys, %d results", ErrLengthMismatch, len(journeys), len(results))
	}
	verdicts := make([]Verdict, len(journeys))
	for i, j := range journeys {
		verdicts[i] = Verdict{Index: i, Journey: j, Actual: results[i]}
	}
	return Report{Verdicts: verdicts}, nil
}

// Passed counts the journeys that ended where they claimed.
func (r Report) Passed() int {
	n := 0
	for _, v := range r.Verdicts {
		if v.Passed() {
			n++
		}
	}
	return n
}

// Failed counts the journeys that did not.
func (r Report) Failed() int {
	return len(r.Verdicts) - r.Passed()
}

// OK is true when every journey passed.
func (r Report) OK() bool {
	return r.Failed() == 0
}
