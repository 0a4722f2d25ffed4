package syntax

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/arith/symbol"
)

type Option func(*Parser)

// WithLogger traces productions and latches at debug level.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

type Parser struct {
	input      string
	src        *symbol.Source
	code       Code
	mismatchAt int
	log        commonlog.Logger
	done       bool
}

func New(input string, opts ...Option) *Parser {
	p := &Parser{
		input: input,
		src:   symbol.NewSource(input),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs a fresh parser over input.
func Parse(input string, opts ...Option) Result {
	return New(input, opts...).Run()
}

// Run parses the whole input and returns the outcome. Calling Run again
// returns the same Result without parsing twice.
func (p *Parser) Run() Result {
	if !p.done {
		p.statementList()
		p.done = true
		p.tracef("done code=%d consumed=%d", p.code, p.src.Consumed())
	}
	mismatchAt := p.mismatchAt
	if p.code == OK {
		mismatchAt = p.src.Consumed()
	}
	return Result{
		Input:      p.input,
		Code:       p.code,
		Consumed:   p.src.Consumed(),
		Lookahead:  p.src.Peek(),
		MismatchAt: mismatchAt,
	}
}

func (p *Parser) peek() rune {
	return p.src.Peek()
}

func (p *Parser) advance() {
	p.src.Advance()
}

// latch records c unless an earlier error is already recorded.
func (p *Parser) latch(c Code) {
	if p.code != OK {
		p.tracef("suppressed %s at %d", c, p.src.Consumed())
		return
	}
	p.code = c
	p.mismatchAt = p.src.Consumed()
	if !p.src.Exhausted() {
		p.mismatchAt--
	}
	p.tracef("latched %s on %s at %d", c, symbol.String(p.peek()), p.mismatchAt)
}

func (p *Parser) tracef(format string, args ...any) {
	if p.log != nil {
		p.log.Debugf(format, args...)
	}
}

// statementList handles Program = Statement { Statement }. The original
// tail recursion over ";" segments is a loop here.
func (p *Parser) statementList() {
	for {
		p.tracef("statement at %d", p.src.Consumed())
		switch {
		case symbol.IsDigit(p.peek()):
			p.number()
			p.continuation()
		case symbol.IsOpenParen(p.peek()):
			if !p.group() {
				return
			}
		default:
			p.latch(ExpectedExpressionStart)
			return
		}

		if !symbol.IsTerminator(p.peek()) {
			p.latch(ExpectedSemicolon)
			return
		}
		p.advance()
		if p.src.Exhausted() {
			return
		}
	}
}

// expression handles Primary [ Operator Expression ]. On a bad primary it
// consumes nothing and leaves the lookahead for the caller's checks.
func (p *Parser) expression() {
	p.tracef("expression at %d", p.src.Consumed())
	switch {
	case symbol.IsDigit(p.peek()):
		p.number()
		p.continuation()
	case symbol.IsOpenParen(p.peek()):
		p.group()
	default:
		p.latch(ExpectedPrimary)
	}
}

// group parses "(" Expression ")" and an optional operator continuation.
// When the closing parenthesis is missing it latches ExpectedCloseParen,
// stops at the unmatched symbol without consuming it and reports false.
// The caller then skips the ";" check, so the caret stays on that symbol.
func (p *Parser) group() bool {
	p.advance()
	p.expression()
	if !symbol.IsCloseParen(p.peek()) {
		p.latch(ExpectedCloseParen)
		return false
	}
	p.advance()
	p.continuation()
	return true
}

// number consumes the leading digit the caller has already matched, the
// rest of its digit run, and an optional decimal fraction.
func (p *Parser) number() {
	p.advance()
	if symbol.IsDigit(p.peek()) {
		p.digitRun()
	}
	if symbol.IsDecimalPoint(p.peek()) {
		p.advance()
		p.digitRun()
	}
}

func (p *Parser) continuation() {
	if symbol.IsOperator(p.peek()) {
		p.advance()
		p.expression()
	}
}

// digitRun consumes a maximal run of digits. Called on a non-digit it
// latches ExpectedDigit.
func (p *Parser) digitRun() {
	if !symbol.IsDigit(p.peek()) {
		p.latch(ExpectedDigit)
		return
	}
	for symbol.IsDigit(p.peek()) {
		p.advance()
	}
}
