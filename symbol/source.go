// Package symbol turns an input line into a front-consumable stream of
// runes and classifies single runes into the categories the arithmetic
// grammar branches on.
package symbol

// None is the lookahead once the input is exhausted.
const None rune = -1

// Source is a cursor over the runes of one input line.
//
// The current rune is the lookahead. Consumed counts the runes that have
// been popped into the lookahead, including the first one, so that after a
// full successful parse Consumed equals the input length.
type Source struct {
	input    []rune
	pos      int
	next     rune
	consumed int
}

// NewSource creates a Source and loads the first rune as lookahead.
func NewSource(input string) *Source {
	s := &Source{
		input: []rune(input),
		next:  None,
	}
	s.Advance()
	return s
}

// Peek returns the lookahead without consuming it.
func (s *Source) Peek() rune {
	return s.next
}

// Advance pops the next rune into the lookahead. Past the end of input the
// lookahead becomes None and the consumed count stays where it is.
func (s *Source) Advance() {
	if s.pos >= len(s.input) {
		s.next = None
		return
	}
	s.next = s.input[s.pos]
	s.pos++
	s.consumed++
}

// Consumed returns the number of runes popped so far.
func (s *Source) Consumed() int {
	return s.consumed
}

// Len returns the input length in runes.
func (s *Source) Len() int {
	return len(s.input)
}

// Exhausted reports whether the lookahead is None.
func (s *Source) Exhausted() bool {
	return s.next == None
}
