package robot

import (
	"fmt"
	"math"
)

// Location is a point on the grid. Both axes may go negative.
type Location struct {
	X, Y int64
}

// NewLocation returns the point (x, y).
func NewLocation(x, y int64) Location {
	return Location{X: x, Y: y}
}

// Add returns l moved by d, or false when either axis leaves the int64 range.
func (l Location) Add(d Location) (Location, bool) {
	x, ok := addInt64(l.X, d.X)
	if !ok {
		return l, false
	}
	y, ok := addInt64(l.Y, d.Y)
	if !ok {
		return l, false
	}
	return Location{X: x, Y: y}, true
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// RobotState is a position and heading snapshot.
type RobotState struct {
	At     Location
	Facing Direction
}

// NewRobotState returns a robot at (x, y) heading facing.
func NewRobotState(x, y int64, facing Direction) RobotState {
	return RobotState{At: Location{X: x, Y: y}, Facing: facing}
}

// Position returns the coordinates and heading.
func (s RobotState) Position() (int64, int64, Direction) {
	return s.At.X, s.At.Y, s.Facing
}

func (s RobotState) String() string {
	return fmt.Sprintf("%s facing %c", s.At, s.Facing.Rune())
}
