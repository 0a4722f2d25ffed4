package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/syntax"
)

const diagnosticSource = "arith"

// Diagnostics checks every non-blank line of text and returns one
// diagnostic per failing line. Columns are UTF-16 code units.
func Diagnostics(text string, mode format.CaretMode) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		res := syntax.Parse(line)
		if res.OK() {
			continue
		}
		diagnostics = append(diagnostics, newDiagnostic(uint32(i), line, res, mode))
	}
	return diagnostics
}

func newDiagnostic(lineNo uint32, line string, res syntax.Result, mode format.CaretMode) protocol.Diagnostic {
	runes := []rune(line)
	col := mode.Position(res)
	start := utf16Len(runes[:col])
	end := start
	if col < len(runes) {
		end = start + utf16Len(runes[col:col+1])
	}

	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: lineNo, Character: start},
			End:   protocol.Position{Line: lineNo, Character: end},
		},
		Severity: &severity,
		Code:     &protocol.IntegerOrString{Value: protocol.Integer(res.Code)},
		Source:   &source,
		Message:  res.Message(),
	}
}

func utf16Len(runes []rune) uint32 {
	var n uint32
	for _, r := range runes {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
