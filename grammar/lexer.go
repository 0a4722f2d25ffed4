package grammar

import (
	"fmt"
	"io"

	"golang.org/x/exp/ebnf"
)

// Kinds the tokenizer tries when none are given. Numbers are matched as a
// whole, so "1.5" is one token.
var DefaultKinds = []string{"number", "operator", "lparen", "rparen", "point", "semicolon"}

// SymbolKinds split input into single symbols.
var SymbolKinds = []string{"digit", "operator", "lparen", "rparen", "point", "semicolon"}

// Token is a lexical token. Offset counts runes from the start of input.
type Token struct {
	Kind    string
	Literal string
	Offset  int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %s %q", t.Offset, t.Kind, t.Literal)
}

type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input by longest match over a set of lexical productions.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	input    []rune
	pos      int
	memo     map[memoKey]int  // match length per production and offset, -1 = no match
	visiting map[memoKey]bool // cycle detection
}

// NewLexer creates a lexer trying the given productions in order; on equal
// match length the earlier kind wins.
func NewLexer(g ebnf.Grammar, input string, kinds ...string) *Lexer {
	if len(kinds) == 0 {
		kinds = DefaultKinds
	}
	return &Lexer{
		grammar:  g,
		kinds:    kinds,
		input:    []rune(input),
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// NextToken returns the next token, or io.EOF with an EOF token at the end.
// A rune that no production matches becomes an ERROR token.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: "EOF", Offset: l.pos}, io.EOF
	}

	start := l.pos
	var bestKind string
	var bestLen int

	for _, name := range l.kinds {
		prod, ok := l.grammar[name]
		if !ok || prod.Expr == nil {
			continue
		}
		l.visiting = make(map[memoKey]bool)
		if n, ok := l.tryMatch(prod.Expr, start); ok && n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		l.pos++
		return Token{Kind: "ERROR", Literal: string(l.input[start]), Offset: start}, nil
	}

	l.pos += bestLen
	return Token{
		Kind:    bestKind,
		Literal: string(l.input[start:l.pos]),
		Offset:  start,
	}, nil
}

// Tokenize reads all tokens including the trailing EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		tokens = append(tokens, tok)
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
	}
}

// tryMatch returns the length of the longest match of expr at offset. An
// option or repetition that matches nothing still succeeds with length 0.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) (int, bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n, ok := l.tryMatch(item, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best, matched := 0, false
		for _, alt := range e {
			if n, ok := l.tryMatch(alt, offset); ok && (!matched || n > best) {
				best, matched = n, true
			}
		}
		return best, matched

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := l.tryMatch(e.Body, offset+total)
			if !ok || n == 0 {
				break
			}
			total += n
		}
		return total, true

	case *ebnf.Option:
		if n, ok := l.tryMatch(e.Body, offset); ok {
			return n, true
		}
		return 0, true

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)

	default:
		return 0, false
	}
}

func (l *Lexer) tryMatchName(name string, offset int) (int, bool) {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		return max(result, 0), result >= 0
	}

	// left recursion
	if l.visiting[key] {
		return 0, false
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return 0, false
	}

	l.visiting[key] = true
	n, matched := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	if matched {
		l.memo[key] = n
	} else {
		l.memo[key] = -1
	}
	return n, matched
}

func (l *Lexer) tryMatchToken(token string, offset int) (int, bool) {
	s := []rune(token)
	if len(s) == 0 || offset+len(s) > len(l.input) {
		return 0, false
	}
	for i, r := range s {
		if l.input[offset+i] != r {
			return 0, false
		}
	}
	return len(s), true
}

func (l *Lexer) tryMatchRange(begin, end string, offset int) (int, bool) {
	if offset >= len(l.input) {
		return 0, false
	}
	b, e := []rune(begin), []rune(end)
	if len(b) != 1 || len(e) != 1 {
		return 0, false
	}
	r := l.input[offset]
	if r >= b[0] && r <= e[0] {
		return 1, true
	}
	return 0, false
}
