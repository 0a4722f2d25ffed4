package syntax

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dhamidi/arith/symbol"
)

func TestParseValid(t *testing.T) {
	tests := []string{
		"1;",
		"1+2;",
		"(1+2)*3;",
		"1.5;",
		"12.34+(5:6)^7;",
		"1;2;3;",
		"((1));",
		"(1)+(2)-3^4:5*6;",
		"0.0;",
		"1234567890;",
		"(1.25*(3-4));7;",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			res := Parse(input)
			if res.Code != OK {
				t.Fatalf("Code = %v, want %v (%s)", res.Code, OK, res.Message())
			}
			if res.Consumed != len(input) {
				t.Errorf("Consumed = %d, want %d", res.Consumed, len(input))
			}
			if res.MismatchAt != res.Consumed {
				t.Errorf("MismatchAt = %d, want %d", res.MismatchAt, res.Consumed)
			}
			if res.Lookahead != symbol.None {
				t.Errorf("Lookahead = %q, want None", res.Lookahead)
			}
			if err := res.Err(); err != nil {
				t.Errorf("Err() = %v, want nil", err)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		input      string
		code       Code
		consumed   int
		mismatchAt int
		lookahead  rune
	}{
		{"", ExpectedExpressionStart, 0, 0, symbol.None},
		{"1.;", ExpectedDigit, 3, 2, symbol.None},
		{"1", ExpectedSemicolon, 1, 1, symbol.None},
		{"a;", ExpectedExpressionStart, 1, 0, 'a'},
		{"(1;", ExpectedCloseParen, 3, 2, ';'},
		{"(1;2;", ExpectedCloseParen, 3, 2, ';'},
		{"1;;", ExpectedExpressionStart, 3, 2, ';'},
		{"()", ExpectedPrimary, 2, 1, symbol.None},
		{"(1)", ExpectedSemicolon, 3, 3, symbol.None},
		{"1+;", ExpectedPrimary, 3, 2, symbol.None},
		{"(1+2", ExpectedCloseParen, 4, 4, symbol.None},
		{"1+(2", ExpectedCloseParen, 4, 4, symbol.None},
		{"1 ;", ExpectedSemicolon, 2, 1, ' '},
		{"1.+2;3;", ExpectedDigit, 7, 2, symbol.None},
		{";", ExpectedExpressionStart, 1, 0, ';'},
		{"1;x", ExpectedExpressionStart, 3, 2, 'x'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := Parse(tt.input)
			if res.Code != tt.code {
				t.Errorf("Code = %v, want %v", res.Code, tt.code)
			}
			if res.Consumed != tt.consumed {
				t.Errorf("Consumed = %d, want %d", res.Consumed, tt.consumed)
			}
			if res.MismatchAt != tt.mismatchAt {
				t.Errorf("MismatchAt = %d, want %d", res.MismatchAt, tt.mismatchAt)
			}
			if res.Lookahead != tt.lookahead {
				t.Errorf("Lookahead = %q, want %q", res.Lookahead, tt.lookahead)
			}
			if res.OK() {
				t.Error("OK() = true, want false")
			}
		})
	}
}

func TestParseFirstFailureWins(t *testing.T) {
	tests := []struct {
		input string
		code  Code
	}{
		// ExpectedPrimary, then the missing ';' is not recorded.
		{"()", ExpectedPrimary},
		// ExpectedDigit, then the missing ';' is not recorded.
		{"1.+2", ExpectedDigit},
		// ExpectedCloseParen inside, then a bad start of the next statement.
		{"1+(2;a;", ExpectedCloseParen},
		// ExpectedPrimary, then ExpectedCloseParen.
		{"(+", ExpectedPrimary},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := Parse(tt.input)
			if res.Code != tt.code {
				t.Errorf("Code = %v, want %v", res.Code, tt.code)
			}
		})
	}
}

func TestParseContinuesAfterError(t *testing.T) {
	res := Parse("1.+2;3;")
	if res.Code != ExpectedDigit {
		t.Fatalf("Code = %v, want %v", res.Code, ExpectedDigit)
	}
	if res.Consumed != 7 {
		t.Errorf("Consumed = %d, want %d (end of the partial derivation)", res.Consumed, 7)
	}
	if res.MismatchAt != 2 {
		t.Errorf("MismatchAt = %d, want %d", res.MismatchAt, 2)
	}
}

func TestParseDeterministic(t *testing.T) {
	inputs := []string{"", "1;", "(1;", "1.+2;3;", "((((", "9^(8:7)-.;"}
	for _, input := range inputs {
		a := Parse(input)
		b := Parse(input)
		if a != b {
			t.Errorf("Parse(%q) = %+v then %+v", input, a, b)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	p := New("1+2;")
	first := p.Run()
	second := p.Run()
	if first != second {
		t.Errorf("second Run() = %+v, want %+v", second, first)
	}
}

func TestParseLongInput(t *testing.T) {
	input := strings.Repeat("1+2;", 100000)
	res := Parse(input)
	if res.Code != OK {
		t.Fatalf("Code = %v, want %v", res.Code, OK)
	}
	if res.Consumed != len(input) {
		t.Errorf("Consumed = %d, want %d", res.Consumed, len(input))
	}
}

func TestParseGeneratedPrograms(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		input := genProgram(rng)
		res := Parse(input)
		if res.Code != OK {
			t.Fatalf("Parse(%q).Code = %v, want %v", input, res.Code, OK)
		}
		if res.Consumed != len(input) {
			t.Fatalf("Parse(%q).Consumed = %d, want %d", input, res.Consumed, len(input))
		}
	}
}

func genProgram(rng *rand.Rand) string {
	var b strings.Builder
	n := 1 + rng.Intn(3)
	for i := 0; i < n; i++ {
		genExpression(rng, &b, 0)
		b.WriteByte(';')
	}
	return b.String()
}

func genExpression(rng *rand.Rand, b *strings.Builder, depth int) {
	if depth < 3 && rng.Intn(3) == 0 {
		b.WriteByte('(')
		genExpression(rng, b, depth+1)
		b.WriteByte(')')
	} else {
		genDigits(rng, b)
		if rng.Intn(3) == 0 {
			b.WriteByte('.')
			genDigits(rng, b)
		}
	}
	if depth < 4 && rng.Intn(2) == 0 {
		b.WriteByte(symbol.Operators[rng.Intn(len(symbol.Operators))])
		genExpression(rng, b, depth+1)
	}
}

func genDigits(rng *rand.Rand, b *strings.Builder) {
	n := 1 + rng.Intn(3)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
}
