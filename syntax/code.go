package syntax

import (
	"fmt"
	"strconv"
)

// Code is the latched outcome of a parse. The numeric values are part of
// the external interface and must not change.
type Code int

const (
	OK                      Code = 0
	ExpectedDigit           Code = -1
	ExpectedCloseParen      Code = -2
	ExpectedPrimary         Code = -3
	ExpectedSemicolon       Code = -4
	ExpectedExpressionStart Code = -5
)

var codeNames = map[Code]string{
	OK:                      "ok",
	ExpectedDigit:           "expected-digit",
	ExpectedCloseParen:      "expected-close-paren",
	ExpectedPrimary:         "expected-primary",
	ExpectedSemicolon:       "expected-semicolon",
	ExpectedExpressionStart: "expected-expression-start",
}

var codeMessages = map[Code]string{
	ExpectedDigit:           "Symbol %s is not a digit from 0 to 9",
	ExpectedCloseParen:      "Symbol %s is not a symbol ')'",
	ExpectedPrimary:         "Symbol %s is not a symbol '('",
	ExpectedSemicolon:       "Symbol %s is not a symbol ';'",
	ExpectedExpressionStart: "Symbol %s is not a digit from 0 to 9 or the symbol '('",
}

// Codes returns the error codes in table order.
func Codes() []Code {
	return []Code{
		ExpectedDigit,
		ExpectedCloseParen,
		ExpectedPrimary,
		ExpectedSemicolon,
		ExpectedExpressionStart,
	}
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "code(" + strconv.Itoa(int(c)) + ")"
}

// Message renders the fixed diagnostic for c with symbol in place of the
// offending lookahead. OK has no message.
func (c Code) Message(symbol string) string {
	format, ok := codeMessages[c]
	if !ok {
		return ""
	}
	return fmt.Sprintf(format, symbol)
}

// ParseCode maps a name produced by String back to its Code.
func ParseCode(name string) (Code, error) {
	for c, n := range codeNames {
		if n == name {
			return c, nil
		}
	}
	return OK, fmt.Errorf("unknown code %q", name)
}
