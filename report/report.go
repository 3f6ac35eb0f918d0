// Package report renders planner results for the command line.
//
// A Reporter consumes either a successful plan (actions first, then the
// generated and expanded counters) or a single failure signal. Two formats
// are provided: the plain text format, one action label per line followed by
// the two counter lines, and a YAML document for tooling.
package report

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vacuum/planner"
)

// FailureMessage is printed when no plan exists.
const FailureMessage = "No plan found"

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrUnknownFormat indicates an output format other than FormatText or FormatYAML.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Reporter consumes the outcome of a search.
type Reporter interface {
	// Success receives the ordered plan and the two search counters.
	Success(actions []planner.Action, generated, expanded int) error
	// Failure signals that the frontier was exhausted.
	Failure() error
}

// New returns the Reporter for format writing to w.
func New(format string, w io.Writer) (Reporter, error) {
	switch format {
	case FormatText, "":
		return &Text{w: w}, nil
	case FormatYAML:
		return &YAML{w: w}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Deliver hands res to r: Success with its counters when a plan was found,
// Failure otherwise.
func Deliver(r Reporter, res planner.Result) error {
	if !res.Found {
		return r.Failure()
	}

	return r.Success(res.Actions, res.Generated, res.Expanded)
}

// Text writes the plain text format:
//
//	E
//	E
//	V
//	3 nodes generated
//	4 nodes expanded
type Text struct {
	w io.Writer
}

// NewText returns a Text reporter writing to w.
func NewText(w io.Writer) *Text { return &Text{w: w} }

// Success writes one label per line and then the counters.
func (t *Text) Success(actions []planner.Action, generated, expanded int) error {
	for _, a := range actions {
		if _, err := fmt.Fprintln(t.w, a); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(t.w, "%d nodes generated\n%d nodes expanded\n", generated, expanded)

	return err
}

// Failure writes FailureMessage.
func (t *Text) Failure() error {
	_, err := fmt.Fprintln(t.w, FailureMessage)

	return err
}

// Document is the YAML shape of a successful result. Every field is
// always present, so an empty plan encodes as "actions: []".
type Document struct {
	Found     bool     `yaml:"found"`
	Actions   []string `yaml:"actions"`
	Generated int      `yaml:"generated"`
	Expanded  int      `yaml:"expanded"`
}

// FailureDocument is the YAML shape of an exhausted search.
type FailureDocument struct {
	Found   bool   `yaml:"found"`
	Message string `yaml:"message"`
}

// YAML writes a single Document.
type YAML struct {
	w io.Writer
}

// NewYAML returns a YAML reporter writing to w.
func NewYAML(w io.Writer) *YAML { return &YAML{w: w} }

// Success encodes the plan and counters.
func (y *YAML) Success(actions []planner.Action, generated, expanded int) error {
	return y.encode(Document{
		Found:     true,
		Actions:   planner.Labels(actions),
		Generated: generated,
		Expanded:  expanded,
	})
}

// Failure encodes found: false with FailureMessage.
func (y *YAML) Failure() error {
	return y.encode(FailureDocument{Message: FailureMessage})
}

func (y *YAML) encode(doc any) error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
