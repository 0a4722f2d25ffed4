// Package syntax implements an LL(1) recognizer for semicolon-terminated
// arithmetic expressions.
//
// # Grammar
//
//	Program     = Statement { Statement } .
//	Statement   = Expression ";" .
//	Expression  = Primary [ Operator Expression ] .
//	Primary     = Number | "(" Expression ")" .
//	Number      = Digits [ "." Digits ] .
//	Digits      = Digit { Digit } .
//	Digit       = "0" … "9" .
//	Operator    = "*" | ":" | "+" | "-" | "^" .
//
// The finer productions are flattened into three procedures, each a loop
// over a FIRST-set test of the lookahead:
//
//	┌───────────────┐     ┌──────────────┐     ┌──────────────┐
//	│ statementList │────▶│  expression  │────▶│   digitRun   │
//	│  (Program)    │     │ (Expression) │     │   (Digits)   │
//	└───────────────┘     └──────────────┘     └──────────────┘
//	        │                    ▲    │
//	        └────────────────────┘    └── "(" Expression ")" / Operator Expression
//
// No production backtracks. The lookahead alone picks the branch.
//
// # Errors
//
// The parser does not stop at the first mismatch. It latches the first
// error Code and keeps descending through the rest of the structure, so
// later checks may still consume input. Only the code is frozen:
//
//	p := syntax.New("1.;")
//	res := p.Run()
//	res.Code     // ExpectedDigit
//	res.Consumed // 3, the position after the whole partial derivation
//
// Result.MismatchAt records where the lookahead was when the code was
// latched, for callers that want the caret under the offending symbol
// instead of at the end of the derivation.
//
// # Thread Safety
//
// A Parser is used for exactly one input and is not safe for concurrent
// use. Parse is safe to call from multiple goroutines.
package syntax
