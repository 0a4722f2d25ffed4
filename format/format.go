// Package format renders parse results: the three-line caret diagnostic
// and whole-result encodings as console text, single lines, JSON or YAML.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/arith/syntax"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(res syntax.Result) error
}

// CaretMode selects which position the caret points at.
type CaretMode string

const (
	// CaretEnd places the caret at the consumed-count reached when the
	// whole descent finished.
	CaretEnd CaretMode = "end"
	// CaretMismatch places the caret under the lookahead that caused the
	// first latched error.
	CaretMismatch CaretMode = "mismatch"
)

func ParseCaretMode(s string) (CaretMode, error) {
	switch CaretMode(s) {
	case "", CaretEnd:
		return CaretEnd, nil
	case CaretMismatch:
		return CaretMismatch, nil
	default:
		return "", fmt.Errorf("unknown caret mode: %s", s)
	}
}

// Position returns the caret column for res.
func (m CaretMode) Position(res syntax.Result) int {
	if m == CaretMismatch {
		return res.MismatchAt
	}
	return res.Consumed
}

type Options struct {
	Caret CaretMode
	Color bool
}

// Names lists the accepted encoder names.
var Names = []string{"text", "line", "json", "yaml"}

func NewEncoder(name string, w io.Writer, opts Options) (Encoder, error) {
	switch name {
	case "", "text":
		return NewTextEncoder(w, opts), nil
	case "line":
		return NewLineEncoder(w, opts), nil
	case "json":
		return NewJSONEncoder(w, opts), nil
	case "yaml":
		return NewYAMLEncoder(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
