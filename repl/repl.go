// Package repl runs the interactive read/parse/report loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/arith/config"
	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/syntax"
)

const maxLine = 16 << 20

type Session struct {
	prompt  string
	out     io.Writer
	encoder format.Encoder
	log     commonlog.Logger
	trace   bool
}

type Option func(*Session)

func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithTrace passes the session logger to every parser for production traces.
func WithTrace() Option {
	return func(s *Session) {
		s.trace = true
	}
}

// New creates a session writing prompts to out and results through enc.
func New(out io.Writer, enc format.Encoder, opts ...Option) *Session {
	s := &Session{
		prompt:  config.DefaultPrompt,
		out:     out,
		encoder: enc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type line struct {
	text string
	err  error
}

// Run prompts for and checks lines from in until in is exhausted or ctx is
// cancelled. Every line is parsed on its own; syntax errors never stop the
// loop. It returns ctx.Err() on cancellation and nil at end of input.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan line)
	go scanLines(ctx, in, lines)

	for n := 1; ; n++ {
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		var l line
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok = <-lines:
		}
		if !ok {
			s.debugf("end of input after %d lines", n-1)
			return nil
		}
		if l.err != nil {
			return fmt.Errorf("read line %d: %w", n, l.err)
		}

		if err := s.Check(l.text); err != nil {
			return err
		}
	}
}

// Check parses one input and writes its report.
func (s *Session) Check(input string) error {
	var opts []syntax.Option
	if s.trace && s.log != nil {
		opts = append(opts, syntax.WithLogger(s.log))
	}
	res := syntax.Parse(input, opts...)
	s.debugf("checked %q: state %d, consumed %d", input, int(res.Code), res.Consumed)
	if err := s.encoder.Encode(res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (s *Session) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func scanLines(ctx context.Context, in io.Reader, out chan<- line) {
	defer close(out)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		select {
		case out <- line{text: strings.TrimSuffix(scanner.Text(), "\r")}:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case out <- line{err: err}:
		case <-ctx.Done():
		}
	}
}
