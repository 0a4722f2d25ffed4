// Package grammar holds the EBNF definition of the arithmetic language and
// a longest-match tokenizer driven by its lexical productions.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/ebnf"
)

// Start is the start production of the language.
const Start = "Program"

//go:embed arith.ebnf
var source []byte

// Source returns the embedded grammar text.
func Source() []byte {
	return bytes.Clone(source)
}

// Load parses the embedded grammar.
func Load() (ebnf.Grammar, error) {
	return Parse("arith.ebnf", bytes.NewReader(source))
}

func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// LoadFile parses a grammar from disk.
func LoadFile(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return Parse(filename, f)
}

// Verify checks that every production is defined and reachable from start.
func Verify(g ebnf.Grammar, start string) error {
	if err := ebnf.Verify(g, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}
