package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	pc "github.com/shibukawa/parsercombinator"

	"journeys/internal/robot"
)

// Productions never consume the EOF token, so every token slice they see has
// at least one element.

// fail returns pc.ErrNotMatch before a commit point and the typed error after it.
func fail(committed bool, err *Error) (int, []pc.Token[Entity], error) {
	if !committed {
		return 0, nil, pc.ErrNotMatch
	}
	return 0, nil, err
}

// missing builds the error for a token that is not what the production wanted.
// Running out of input inside a journey is always an incomplete journey.
func missing(t pc.Token[Entity], kind Kind, want string) *Error {
	if t.Val.Kind == EOF {
		return newError(IncompleteJourney, t, "expected "+want+", found end of input")
	}
	return newError(kind, t, fmt.Sprintf("expected %s, found %s", want, describe(t)))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// firstRune returns the bytes of the first rune of s. An invalid UTF-8 byte
// is returned as it is.
func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// coordinate matches one integer field. A soft coordinate only commits when the
// field starts with a digit; anything else is left for the caller.
func coordinate(axis string, soft bool) pc.Parser[Entity] {
	return pc.Trace(axis, func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		t := tokens[0]
		committed := !soft || (t.Val.Kind == Field && startsWithDigit(t.Raw))
		if t.Val.Kind != Field {
			return fail(committed, missing(t, UnexpectedInput, axis+" coordinate"))
		}
		if !isDigits(t.Raw) {
			return fail(committed, newError(MalformedCoordinate, t,
				fmt.Sprintf("%s coordinate %q is not a non-negative integer", axis, t.Raw)))
		}
		v, err := strconv.ParseInt(t.Raw, 10, 64)
		if err != nil {
			perr := newError(MalformedCoordinate, t, fmt.Sprintf("%s coordinate %q is out of range", axis, t.Raw))
			perr.Err = err
			return fail(committed, perr)
		}
		return 1, []pc.Token[Entity]{{Type: axis, Pos: t.Pos, Val: Entity{Kind: Field, Token: t.Val.Token, Value: v}, Raw: t.Raw}}, nil
	})
}

func spaces(before string) pc.Parser[Entity] {
	return pc.Trace("space", func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		t := tokens[0]
		if t.Val.Kind == Space {
			return 1, tokens[:1], nil
		}
		return 0, nil, missing(t, UnexpectedInput, "space before "+before)
	})
}

func direction() pc.Parser[Entity] {
	return pc.Trace("direction", func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		t := tokens[0]
		if t.Val.Kind != Field {
			return 0, nil, missing(t, UnrecognizedDirection, "direction (N, E, S or W)")
		}
		r, size := utf8.DecodeRuneInString(t.Raw)
		d, err := robot.DirectionOf(r)
		if err != nil || size != len(t.Raw) {
			perr := newError(UnrecognizedDirection, t, fmt.Sprintf("expected direction (N, E, S or W), found %q", t.Raw))
			perr.Err = err
			return 0, nil, perr
		}
		return 1, []pc.Token[Entity]{{Type: "direction", Pos: t.Pos, Val: Entity{Kind: Field, Token: t.Val.Token, Value: d}, Raw: t.Raw}}, nil
	})
}

// movements matches a whole movement line. The line is committed: once the
// parser is here, a bad character is reported where it stands instead of ending
// the list early and misreading the rest as the next state line.
func movements() pc.Parser[Entity] {
	return pc.Trace("movements", func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		t := tokens[0]
		switch t.Val.Kind {
		case EOF:
			return 0, nil, missing(t, IncompleteJourney, "movements")
		case Newline:
			return 0, nil, newError(UnrecognizedMovement, t, "movement line is empty")
		case Space:
			return 0, nil, newError(UnrecognizedMovement, t, fmt.Sprintf("expected movement (F, R or L), found %q", t.Raw))
		}
		if startsWithDigit(t.Raw) {
			return 0, nil, newError(IncompleteJourney, t, "expected movements, found a robot state line")
		}

		moves := make([]robot.Movement, 0, len(t.Raw))
		column := 0
		for offset, r := range t.Raw {
			m, err := robot.MovementOf(r)
			if err != nil {
				found := firstRune(t.Raw[offset:])
				perr := newError(UnrecognizedMovement, t, fmt.Sprintf("expected movement (F, R or L), found %q", found))
				perr.Pos.Offset += offset
				perr.Pos.Column += column
				perr.Found = found
				perr.Err = err
				return 0, nil, perr
			}
			moves = append(moves, m)
			column++
		}

		if next := tokens[1]; next.Val.Kind != Newline && next.Val.Kind != EOF {
			perr := newError(UnrecognizedMovement, next, fmt.Sprintf("expected movement (F, R or L), found %s", describe(next)))
			perr.Found = firstRune(next.Raw)
			return 0, nil, perr
		}
		return 1, []pc.Token[Entity]{{Type: "movements", Pos: t.Pos, Val: Entity{Kind: Field, Token: t.Val.Token, Value: moves}, Raw: t.Raw}}, nil
	})
}

func newline(after string, soft bool) pc.Parser[Entity] {
	return pc.Trace("newline", func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		t := tokens[0]
		if t.Val.Kind == Newline {
			return 1, tokens[:1], nil
		}
		return fail(!soft, missing(t, UnexpectedInput, "end of line after "+after))
	})
}

// robotState matches "<x> <y> <direction>". With a soft start nothing is
// committed until the x coordinate looks like a number.
func robotState(label string, softStart bool) pc.Parser[Entity] {
	return pc.Trace(label, pc.Trans(
		pc.Seq(
			coordinate("x", softStart),
			pc.Drop(spaces("y coordinate")),
			coordinate("y", false),
			pc.Drop(spaces("direction")),
			direction(),
		),
		func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
			if len(tokens) != 3 {
				return nil, fmt.Errorf("%w: %s: expected 3 values, got %d", pc.ErrCritical, label, len(tokens))
			}
			state := robot.RobotState{
				At:     robot.NewLocation(tokens[0].Val.Value.(int64), tokens[1].Val.Value.(int64)),
				Facing: tokens[2].Val.Value.(robot.Direction),
			}
			return []pc.Token[Entity]{{Type: label, Pos: tokens[0].Pos, Val: Entity{Kind: Field, Token: tokens[0].Val.Token, Value: state}}}, nil
		},
	))
}

// journey matches the three lines of one journey plus an optional line break.
// The first journey of the input is committed from its first token.
func journey(first bool) pc.Parser[Entity] {
	return pc.Trace("journey", pc.Trans(
		pc.Seq(
			robotState("start", !first),
			pc.Drop(newline("start state", false)),
			movements(),
			pc.Drop(newline("movements", false)),
			robotState("end", false),
			pc.Optional(pc.Drop(newline("end state", true))),
		),
		func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
			if len(tokens) != 3 {
				return nil, fmt.Errorf("%w: journey: expected 3 values, got %d", pc.ErrCritical, len(tokens))
			}
			j := robot.Journey{
				Start: tokens[0].Val.Value.(robot.RobotState),
				Moves: tokens[1].Val.Value.([]robot.Movement),
				End:   tokens[2].Val.Value.(robot.RobotState),
			}
			return []pc.Token[Entity]{{Type: "journey", Pos: tokens[0].Pos, Val: Entity{Kind: Field, Token: tokens[0].Val.Token, Value: j}}}, nil
		},
	))
}

var (
	firstJourney = journey(true)
	nextJourney  = journey(false)
)
