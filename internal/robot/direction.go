package robot

import "fmt"

// Direction is one of the four compass headings.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every heading in clockwise order.
var Directions = []Direction{North, East, South, West}

// DirectionOf looks up the heading written as r.
func DirectionOf(r rune) (Direction, error) {
	switch r {
	case 'N':
		return North, nil
	case 'E':
		return East, nil
	case 'S':
		return South, nil
	case 'W':
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedDirection, r)
}

// Rune is the input character for d.
func (d Direction) Rune() rune {
	switch d {
	case North:
		return 'N'
	case East:
		return 'E'
	case South:
		return 'S'
	case West:
		return 'W'
	}
	return '?'
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Left is the heading after a quarter turn counter-clockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right is the heading after a quarter turn clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Delta is the unit step taken by a Forward move while facing d.
func (d Direction) Delta() Location {
	switch d {
	case North:
		return Location{Y: 1}
	case East:
		return Location{X: 1}
	case South:
		return Location{Y: -1}
	case West:
		return Location{X: -1}
	}
	return Location{}
}
