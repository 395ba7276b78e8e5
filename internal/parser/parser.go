// Package parser turns the journeys text format into robot journeys.
//
// The input is a sequence of three-line blocks:
//
//	1 1 E
//	RFRFRFRF
//	1 1 E
//
// Parse either accounts for the whole buffer or fails with an *Error that
// names the kind of problem and where it is. There are no partial results.
package parser

import (
	"errors"
	"fmt"
	"io"

	pc "github.com/shibukawa/parsercombinator"

	"journeys/internal/robot"
)

type options struct {
	filename string
	trace    io.Writer
}

// Option configures Parse.
type Option func(*options)

// WithFilename sets the file name reported in error positions.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithTrace writes the production trace of every journey to w. A nil w
// disables tracing.
func WithTrace(w io.Writer) Option {
	return func(o *options) {
		o.trace = w
	}
}

// Parse reads every journey in text.
func Parse(text string, opts ...Option) ([]robot.Journey, error) {
	o := options{filename: "input"}
	for _, opt := range opts {
		opt(&o)
	}

	lexed, err := Tokenize(o.filename, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedInput, err)
	}
	tokens := toParserTokens(lexed)

	pctx := pc.NewParseContext[Entity]()
	pctx.TraceEnable = o.trace != nil

	var journeys []robot.Journey
	for rest := tokens; ; {
		production := nextJourney
		if len(journeys) == 0 {
			production = firstJourney
		} else if rest[0].Val.Kind == EOF {
			break
		}

		consumed, matched, err := production(pctx, rest)
		if o.trace != nil {
			pctx.DumpTraceTo(o.trace)
			pctx.Traces = nil
		}
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) {
				return nil, perr
			}
			if errors.Is(err, pc.ErrNotMatch) {
				return nil, trailing(text, rest[0])
			}
			return nil, err
		}
		if consumed == 0 || len(matched) != 1 {
			return nil, trailing(text, rest[0])
		}
		journeys = append(journeys, matched[0].Val.Value.(robot.Journey))
		rest = rest[consumed:]
	}
	return journeys, nil
}

func trailing(text string, t pc.Token[Entity]) *Error {
	left := text[t.Val.Token.Pos.Offset:]
	perr := newError(TrailingInput, t, fmt.Sprintf("could not read the whole input, left with %q", abbreviate(left, 40)))
	perr.Found = left
	return perr
}

func abbreviate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
