// Package robot holds the journey domain model and the simulator that replays
// a journey's movements.
//
// A robot lives on an unbounded integer grid. Its state is a position plus a
// compass heading:
//
//	start := robot.NewRobotState(0, 3, robot.West)
//	moves, err := robot.MovementsOf("LLFFFLFLFL")
//	if err != nil {
//		log.Fatal(err)
//	}
//	end, err := robot.Run(robot.Journey{Start: start, Moves: moves})
//
// States are values. Step never mutates its input, and Run is a left-to-right
// fold of Step over the movement list. Coordinates are int64; a move that would
// leave the int64 range fails with ErrCoordinateOverflow instead of wrapping.
//
// RunAll simulates independent journeys concurrently. Movements inside one
// journey are always applied in order.
package robot
