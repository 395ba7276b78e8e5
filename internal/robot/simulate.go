package robot

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Step applies one movement. Turns only change the heading; Forward only
// changes the coordinate along the heading.
func Step(s RobotState, m Movement) (RobotState, error) {
	switch m {
	case TurnLeft:
		return RobotState{At: s.At, Facing: s.Facing.Left()}, nil
	case TurnRight:
		return RobotState{At: s.At, Facing: s.Facing.Right()}, nil
	case Forward:
		at, ok := s.At.Add(s.Facing.Delta())
		if !ok {
			return s, &OverflowError{From: s, Movement: m}
		}
		return RobotState{At: at, Facing: s.Facing}, nil
	}
	return s, fmt.Errorf("%w: %v", ErrUnrecognizedMovement, m)
}

// Run replays j.Moves from j.Start and returns where the robot actually ends.
// Comparing the result with j.End is left to the caller.
func Run(j Journey) (RobotState, error) {
	state := j.Start
	for i, m := range j.Moves {
		next, err := Step(state, m)
		if err != nil {
			return state, fmt.Errorf("move %d: %w", i, err)
		}
		state = next
	}
	return state, nil
}

// RunAll simulates every journey and returns the end states in input order.
// Journeys run concurrently, at most workers at a time (0 means no limit).
func RunAll(ctx context.Context, journeys []Journey, workers int) ([]RobotState, error) {
	results := make([]RobotState, len(journeys))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, j := range journeys {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			end, err := Run(j)
			if err != nil {
				return fmt.Errorf("journey %d: %w", i, err)
			}
			results[i] = end
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
