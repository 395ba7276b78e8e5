package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
	pc "github.com/shibukawa/parsercombinator"

	"journeys/internal/robot"
)

var (
	ErrMalformedCoordinate = errors.New("malformed coordinate")
	ErrIncompleteJourney   = errors.New("incomplete journey")
	ErrTrailingInput       = errors.New("trailing input")
	ErrUnexpectedInput     = errors.New("unexpected input")
)

// Kind is the category of a parse failure.
type Kind int

const (
	MalformedCoordinate Kind = iota + 1
	UnrecognizedDirection
	UnrecognizedMovement
	IncompleteJourney
	TrailingInput
	UnexpectedInput
)

func (k Kind) String() string {
	switch k {
	case MalformedCoordinate:
		return "MalformedCoordinate"
	case UnrecognizedDirection:
		return "UnrecognizedDirection"
	case UnrecognizedMovement:
		return "UnrecognizedMovement"
	case IncompleteJourney:
		return "IncompleteJourney"
	case TrailingInput:
		return "TrailingInput"
	case UnexpectedInput:
		return "UnexpectedInput"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// sentinel is the error value errors.Is matches for this kind.
func (k Kind) sentinel() error {
	switch k {
	case MalformedCoordinate:
		return ErrMalformedCoordinate
	case UnrecognizedDirection:
		return robot.ErrUnrecognizedDirection
	case UnrecognizedMovement:
		return robot.ErrUnrecognizedMovement
	case IncompleteJourney:
		return ErrIncompleteJourney
	case TrailingInput:
		return ErrTrailingInput
	case UnexpectedInput:
		return ErrUnexpectedInput
	}
	return nil
}

// Error is a parse failure at a known position. It always unwraps to
// pc.ErrCritical: once raised, no other grammar alternative is tried.
type Error struct {
	Kind   Kind
	Pos    lexer.Position
	Found  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Pos, e.Kind.sentinel())
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{pc.ErrCritical, e.Err}
	}
	return []error{pc.ErrCritical}
}

// describe renders a token for error messages.
func describe(t pc.Token[Entity]) string {
	switch t.Val.Kind {
	case EOF:
		return "end of input"
	case Newline:
		return "end of line"
	}
	return fmt.Sprintf("%q", t.Raw)
}

func newError(kind Kind, t pc.Token[Entity], detail string) *Error {
	return &Error{Kind: kind, Pos: t.Val.Token.Pos, Found: t.Raw, Detail: detail}
}
