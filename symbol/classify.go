package symbol

// Category is the lexical class of a single symbol.
type Category int

const (
	CategoryOther Category = iota
	CategoryDigit
	CategoryOperator
	CategoryOpenParen
	CategoryCloseParen
	CategoryDecimalPoint
	CategoryTerminator
	CategoryEnd
)

var categoryNames = [...]string{
	CategoryOther:        "other",
	CategoryDigit:        "digit",
	CategoryOperator:     "operator",
	CategoryOpenParen:    "open-paren",
	CategoryCloseParen:   "close-paren",
	CategoryDecimalPoint: "decimal-point",
	CategoryTerminator:   "terminator",
	CategoryEnd:          "end",
}

// String returns the category name, "other" for unknown values.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "other"
	}
	return categoryNames[c]
}

// Operators lists the binary operators in the order the grammar declares them.
const Operators = "*:+-^"

// IsDigit reports whether r is one of 0 to 9.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsOperator reports whether r is one of the binary operators.
func IsOperator(r rune) bool {
	switch r {
	case '*', ':', '+', '-', '^':
		return true
	}
	return false
}

// IsOpenParen reports whether r is "(".
func IsOpenParen(r rune) bool {
	return r == '('
}

// IsCloseParen reports whether r is ")".
func IsCloseParen(r rune) bool {
	return r == ')'
}

// IsDecimalPoint reports whether r is ".".
func IsDecimalPoint(r rune) bool {
	return r == '.'
}

// IsTerminator reports whether r is the statement terminator ";".
func IsTerminator(r rune) bool {
	return r == ';'
}

// IsEnd reports whether r is the end-of-input marker None.
func IsEnd(r rune) bool {
	return r == None
}

// Classify returns the category of r.
func Classify(r rune) Category {
	switch {
	case IsEnd(r):
		return CategoryEnd
	case IsDigit(r):
		return CategoryDigit
	case IsOperator(r):
		return CategoryOperator
	case IsOpenParen(r):
		return CategoryOpenParen
	case IsCloseParen(r):
		return CategoryCloseParen
	case IsDecimalPoint(r):
		return CategoryDecimalPoint
	case IsTerminator(r):
		return CategoryTerminator
	default:
		return CategoryOther
	}
}

// String renders r for messages. None is shown as "None".
func String(r rune) string {
	if r == None {
		return "None"
	}
	return string(r)
}
