package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"journeys/internal/robot"
)

var ErrUnknownFormat = errors.New("unknown report format")

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options selects and tunes a Renderer.
type Options struct {
	Format string
	Color  string
	Emoji  bool
}

// Renderer writes a Report.
type Renderer interface {
	Render(w io.Writer, r Report) error
}

// NewRenderer returns the renderer for opts.Format.
func NewRenderer(opts Options) (Renderer, error) {
	switch opts.Format {
	case FormatText, "":
		return NewTextRenderer(opts.Color, opts.Emoji), nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// TextRenderer prints one line per journey followed by a summary.
type TextRenderer struct {
	pass     *color.Color
	fail     *color.Color
	passMark string
	failMark string
}

// NewTextRenderer builds a text renderer. mode is ColorAuto, ColorAlways or
// ColorNever; without emoji the marks are PASS and FAIL.
func NewTextRenderer(mode string, emoji bool) *TextRenderer {
	r := &TextRenderer{
		pass:     color.New(color.FgGreen),
		fail:     color.New(color.FgRed, color.Bold),
		passMark: "👍",
		failMark: "👎",
	}
	if !emoji {
		r.passMark, r.failMark = "PASS", "FAIL"
	}
	switch mode {
	case ColorAlways:
		r.pass.EnableColor()
		r.fail.EnableColor()
	case ColorNever:
		r.pass.DisableColor()
		r.fail.DisableColor()
	}
	return r
}

func (r *TextRenderer) Render(w io.Writer, rep Report) error {
	for _, v := range rep.Verdicts {
		line := r.pass.Sprintf("Journey %d %s", v.Index, r.passMark)
		if !v.Passed() {
			line = r.fail.Sprintf("Journey %d %s ended up at %s, expected %s",
				v.Index, r.failMark, v.Actual, v.Journey.End)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d %s: %d passed, %d failed\n",
		len(rep.Verdicts), plural(len(rep.Verdicts), "journey"), rep.Passed(), rep.Failed())
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// StateDocument is the serialized form of a robot state.
type StateDocument struct {
	X      int64  `json:"x" yaml:"x"`
	Y      int64  `json:"y" yaml:"y"`
	Facing string `json:"facing" yaml:"facing"`
}

// JourneyDocument is the serialized form of a parsed journey.
type JourneyDocument struct {
	Start StateDocument `json:"start" yaml:"start"`
	Moves string        `json:"moves" yaml:"moves"`
	End   StateDocument `json:"end" yaml:"end"`
}

// VerdictDocument is the serialized form of a verdict.
type VerdictDocument struct {
	Index    int           `json:"index" yaml:"index"`
	Passed   bool          `json:"passed" yaml:"passed"`
	Start    StateDocument `json:"start" yaml:"start"`
	Moves    string        `json:"moves" yaml:"moves"`
	Expected StateDocument `json:"expected" yaml:"expected"`
	Actual   StateDocument `json:"actual" yaml:"actual"`
}

// Document is the serialized form of a Report.
type Document struct {
	Journeys []VerdictDocument `json:"journeys" yaml:"journeys"`
	Passed   int               `json:"passed" yaml:"passed"`
	Failed   int               `json:"failed" yaml:"failed"`
}

// NewStateDocument converts a robot state, writing the heading as N, E, S or W.
func NewStateDocument(s robot.RobotState) StateDocument {
	x, y, facing := s.Position()
	return StateDocument{X: x, Y: y, Facing: string(facing.Rune())}
}

// NewJourneyDocument converts a parsed journey, moves in input notation.
func NewJourneyDocument(j robot.Journey) JourneyDocument {
	return JourneyDocument{
		Start: NewStateDocument(j.Start),
		Moves: robot.FormatMovements(j.Moves),
		End:   NewStateDocument(j.End),
	}
}

// NewDocument converts r for the structured renderers.
func NewDocument(r Report) Document {
	doc := Document{
		Journeys: make([]VerdictDocument, 0, len(r.Verdicts)),
		Passed:   r.Passed(),
		Failed:   r.Failed(),
	}
	for _, v := range r.Verdicts {
		doc.Journeys = append(doc.Journeys, VerdictDocument{
			Index:    v.Index,
			Passed:   v.Passed(),
			Start:    NewStateDocument(v.Journey.Start),
			Moves:    robot.FormatMovements(v.Journey.Moves),
			Expected: NewStateDocument(v.Journey.End),
			Actual:   NewStateDocument(v.Actual),
		})
	}
	return doc
}

// JSONRenderer writes the Document as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(r))
}

// YAMLRenderer writes the Document as YAML.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, r Report) error {
	return WriteYAML(w, NewDocument(r))
}

// WriteYAML encodes v as a YAML document.
func WriteYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
