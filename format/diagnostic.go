package format

import (
	"io"
	"strings"

	"github.com/dhamidi/arith/syntax"
)

// WriteDiagnostic writes the input, a caret line and the error message.
// It writes nothing for a successful result.
func WriteDiagnostic(w io.Writer, res syntax.Result, mode CaretMode) error {
	if res.OK() {
		return nil
	}
	var sb strings.Builder
	writeDiagnostic(&sb, res, mode, plainStyles)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeDiagnostic(sb *strings.Builder, res syntax.Result, mode CaretMode, st styles) {
	sb.WriteString(res.Input)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", mode.Position(res)))
	sb.WriteString(st.caret("^"))
	sb.WriteByte('\n')
	sb.WriteString(st.message(res.Message()))
	sb.WriteByte('\n')
}
