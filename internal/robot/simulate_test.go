package robot

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoves(t *testing.T, s string) []Movement {
	t.Helper()
	moves, err := MovementsOf(s)
	require.NoError(t, err)
	return moves
}

func TestStep_Forward(t *testing.T) {
	tests := []struct {
		facing Direction
		want   Location
	}{
		{North, NewLocation(5, 6)},
		{East, NewLocation(6, 5)},
		{South, NewLocation(5, 4)},
		{West, NewLocation(4, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			start := NewRobotState(5, 5, tt.facing)
			got, err := Step(start, Forward)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.At)
			assert.Equal(t, tt.facing, got.Facing)
			assert.Equal(t, NewRobotState(5, 5, tt.facing), start, "input state must not change")
		})
	}
}

func TestStep_TurnsKeepLocation(t *testing.T) {
	for _, d := range Directions {
		start := NewRobotState(-2, 7, d)

		left, err := Step(start, TurnLeft)
		require.NoError(t, err)
		assert.Equal(t, start.At, left.At)

		back, err := Step(left, TurnRight)
		require.NoError(t, err)
		assert.Equal(t, start, back)

		right, err := Step(start, TurnRight)
		require.NoError(t, err)
		back, err = Step(right, TurnLeft)
		require.NoError(t, err)
		assert.Equal(t, start, back)
	}
}

func TestRun_FourTurnsReturnToHeading(t *testing.T) {
	for _, d := range Directions {
		start := NewRobotState(3, 3, d)
		for _, moves := range []string{"RRRR", "LLLL"} {
			end, err := Run(Journey{Start: start, Moves: mustMoves(t, moves)})
			require.NoError(t, err)
			assert.Equal(t, start, end, "%s from %s", moves, d)
		}
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		start RobotState
		moves string
		want  RobotState
	}{
		{
			name:  "no moves",
			start: NewRobotState(4, 2, South),
			moves: "",
			want:  NewRobotState(4, 2, South),
		},
		{
			name:  "turn then forward",
			start: NewRobotState(0, 0, North),
			moves: "RF",
			want:  NewRobotState(1, 0, East),
		},
		{
			name:  "forward then turn",
			start: NewRobotState(0, 0, North),
			moves: "FR",
			want:  NewRobotState(0, 1, East),
		},
		{
			name:  "hand traced journey",
			start: NewRobotState(0, 3, West),
			moves: "LLFFFLFLFL",
			want:  NewRobotState(2, 4, South),
		},
		{
			name:  "closed square",
			start: NewRobotState(1, 1, East),
			moves: "RFRFRFRF",
			want:  NewRobotState(1, 1, East),
		},
		{
			name:  "crosses below zero",
			start: NewRobotState(0, 0, South),
			moves: "FFRF",
			want:  NewRobotState(-1, -2, West),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(Journey{Start: tt.start, Moves: mustMoves(t, tt.moves)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_DoesNotUseClaimedEnd(t *testing.T) {
	j := Journey{
		Start: NewRobotState(0, 0, North),
		Moves: mustMoves(t, "F"),
		End:   NewRobotState(9, 9, West),
	}
	got, err := Run(j)
	require.NoError(t, err)
	assert.Equal(t, NewRobotState(0, 1, North), got)
}

func TestRun_Overflow(t *testing.T) {
	j := Journey{
		Start: NewRobotState(math.MaxInt64-1, 0, East),
		Moves: mustMoves(t, "FF"),
	}
	_, err := Run(j)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCoordinateOverflow)

	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, NewRobotState(math.MaxInt64, 0, East), overflow.From)
	assert.Contains(t, err.Error(), "move 1")

	j = Journey{Start: NewRobotState(0, math.MinInt64, South), Moves: mustMoves(t, "F")}
	_, err = Run(j)
	assert.ErrorIs(t, err, ErrCoordinateOverflow)
}

func TestRunAll(t *testing.T) {
	journeys := []Journey{
		{Start: NewRobotState(0, 0, North), Moves: mustMoves(t, "RF")},
		{Start: NewRobotState(0, 0, North), Moves: mustMoves(t, "FR")},
		{Start: NewRobotState(0, 3, West), Moves: mustMoves(t, "LLFFFLFLFL")},
		{Start: NewRobotState(1, 1, East), Moves: mustMoves(t, "RFRFRFRF")},
	}
	want := []RobotState{
		NewRobotState(1, 0, East),
		NewRobotState(0, 1, East),
		NewRobotState(2, 4, South),
		NewRobotState(1, 1, East),
	}

	for _, workers := range []int{0, 1, 3} {
		got, err := RunAll(context.Background(), journeys, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestRunAll_Empty(t *testing.T) {
	got, err := RunAll(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunAll_Overflow(t *testing.T) {
	journeys := []Journey{
		{Start: NewRobotState(0, 0, North), Moves: mustMoves(t, "F")},
		{Start: NewRobotState(0, math.MaxInt64, North), Moves: mustMoves(t, "F")},
	}
	_, err := RunAll(context.Background(), journeys, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCoordinateOverflow)
	assert.Contains(t, err.Error(), "journey 1")
}

func TestRunAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	journeys := []Journey{{Start: NewRobotState(0, 0, North), Moves: mustMoves(t, "F")}}
	_, err := RunAll(ctx, journeys, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
