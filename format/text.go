package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dhamidi/arith/syntax"
)

const rule = "-------------------------------"

type styles struct {
	caret   func(string) string
	message func(string) string
	success func(string) string
}

func identity(s string) string { return s }

var plainStyles = styles{
	caret:   identity,
	message: identity,
	success: identity,
}

func colorStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	caret := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	message := r.NewStyle().Foreground(lipgloss.Color("9"))
	success := r.NewStyle().Foreground(lipgloss.Color("10"))
	return styles{
		caret:   func(s string) string { return caret.Render(s) },
		message: func(s string) string { return message.Render(s) },
		success: func(s string) string { return success.Render(s) },
	}
}

// TextEncoder writes the console report of the interactive checker.
type TextEncoder struct {
	w      io.Writer
	opts   Options
	styles styles
	res    syntax.Result
}

func NewTextEncoder(w io.Writer, opts Options) *TextEncoder {
	st := plainStyles
	if opts.Color {
		st = colorStyles(w)
	}
	return &TextEncoder{w: w, opts: opts, styles: st}
}

func (e *TextEncoder) Encode(res syntax.Result) error {
	e.res = res
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	res := e.res

	if res.OK() {
		sb.WriteString("State 0\n")
		sb.WriteString(e.styles.success("The program completed successfully"))
		sb.WriteByte('\n')
		return []byte(sb.String()), nil
	}

	sb.WriteString("Syntax error: program with failure terminated\n")
	sb.WriteString(rule)
	sb.WriteByte('\n')
	writeDiagnostic(&sb, res, e.opts.Caret, e.styles)
	sb.WriteString("State ")
	sb.WriteString(strconv.Itoa(int(res.Code)))
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}
