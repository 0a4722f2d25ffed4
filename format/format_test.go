package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/arith/syntax"
)

func TestWriteDiagnostic(t *testing.T) {
	tests := []struct {
		input string
		mode  CaretMode
		want  string
	}{
		{
			input: "1.;",
			mode:  CaretEnd,
			want:  "1.;\n   ^\nSymbol None is not a digit from 0 to 9\n",
		},
		{
			input: "1.;",
			mode:  CaretMismatch,
			want:  "1.;\n  ^\nSymbol None is not a digit from 0 to 9\n",
		},
		{
			input: "a;",
			mode:  CaretEnd,
			want:  "a;\n ^\nSymbol a is not a digit from 0 to 9 or the symbol '('\n",
		},
		{
			input: "(1;",
			mode:  CaretEnd,
			want:  "(1;\n   ^\nSymbol ; is not a symbol ')'\n",
		},
		{
			input: "",
			mode:  CaretEnd,
			want:  "\n^\nSymbol None is not a digit from 0 to 9 or the symbol '('\n",
		},
		{
			input: "1",
			mode:  CaretEnd,
			want:  "1\n ^\nSymbol None is not a symbol ';'\n",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.input, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteDiagnostic(&buf, syntax.Parse(tt.input), tt.mode); err != nil {
				t.Fatalf("WriteDiagnostic: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteDiagnosticSuccessIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDiagnostic(&buf, syntax.Parse("1;"), CaretEnd); err != nil {
		t.Fatalf("WriteDiagnostic: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q, want empty output", buf.String())
	}
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf, Options{Caret: CaretEnd})

	if err := enc.Encode(syntax.Parse("1+2;")); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "State 0\nThe program completed successfully\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := enc.Encode(syntax.Parse("1")); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want = strings.Join([]string{
		"Syntax error: program with failure terminated",
		"-------------------------------",
		"1",
		" ^",
		"Symbol None is not a symbol ';'",
		"State -4",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTextEncoderColor(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf, Options{Caret: CaretEnd, Color: true})
	if err := enc.Encode(syntax.Parse("a;")); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes in %q", out)
	}
	if !strings.Contains(out, "is not a digit from 0 to 9") {
		t.Errorf("message missing from %q", out)
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewJSONEncoder(&buf, Options{Caret: CaretMismatch})
	if err := enc.Encode(syntax.Parse("1.+2;3;")); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got resultData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.OK {
		t.Error("OK = true, want false")
	}
	if got.State != -1 {
		t.Errorf("State = %d, want %d", got.State, -1)
	}
	if got.Code != "expected-digit" {
		t.Errorf("Code = %q, want %q", got.Code, "expected-digit")
	}
	if got.Consumed != 7 {
		t.Errorf("Consumed = %d, want %d", got.Consumed, 7)
	}
	if got.Caret != 2 {
		t.Errorf("Caret = %d, want %d", got.Caret, 2)
	}
	if got.Lookahead != "None" {
		t.Errorf("Lookahead = %q, want %q", got.Lookahead, "None")
	}
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewYAMLEncoder(&buf, Options{})
	if err := enc.Encode(syntax.Parse("(1+2)*3;")); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got resultData
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.OK {
		t.Error("OK = false, want true")
	}
	if got.Consumed != 8 {
		t.Errorf("Consumed = %d, want %d", got.Consumed, 8)
	}
	if got.Message != "" {
		t.Errorf("Message = %q, want empty", got.Message)
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range Names {
		if _, err := NewEncoder(name, &bytes.Buffer{}, Options{}); err != nil {
			t.Errorf("NewEncoder(%q): %v", name, err)
		}
	}
	if _, err := NewEncoder("xml", &bytes.Buffer{}, Options{}); err == nil {
		t.Error("NewEncoder(\"xml\") succeeded, want error")
	}
}

func TestParseCaretMode(t *testing.T) {
	tests := []struct {
		in      string
		want    CaretMode
		wantErr bool
	}{
		{"", CaretEnd, false},
		{"end", CaretEnd, false},
		{"mismatch", CaretMismatch, false},
		{"start", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCaretMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCaretMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseCaretMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewLineEncoder(&buf, Options{Caret: CaretEnd})
	for _, input := range []string{"1;", "(1;"} {
		if err := enc.Encode(syntax.Parse(input)); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}
	want := "\"1;\":2: ok\n\"(1;\":3: state -2: Symbol ; is not a symbol ')'\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
