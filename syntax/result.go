package syntax

import (
	"fmt"

	"github.com/dhamidi/arith/symbol"
)

// Result is the outcome of one parse.
type Result struct {
	Input string
	Code  Code
	// Consumed is the consumed-count when the descent finished.
	Consumed int
	// Lookahead is the lookahead when the descent finished, or symbol.None.
	Lookahead rune
	// MismatchAt is the rune offset of the lookahead at the moment Code was
	// latched. It equals Consumed when Code is OK.
	MismatchAt int
}

func (r Result) OK() bool {
	return r.Code == OK
}

// Message returns the diagnostic for the latched code, naming the final
// lookahead. It is empty on success.
func (r Result) Message() string {
	return r.Code.Message(symbol.String(r.Lookahead))
}

// Err returns nil on success and an *Error otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{
		Code:      r.Code,
		Lookahead: r.Lookahead,
		Offset:    r.Consumed,
		Message:   r.Message(),
	}
}

// Error is a syntax error as a Go error value.
type Error struct {
	Code      Code
	Lookahead rune
	Offset    int
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: syntax error (state %d): %s", e.Offset, int(e.Code), e.Message)
}
