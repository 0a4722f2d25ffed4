package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/arith/syntax"
)

// LineEncoder writes one compiler-style line per result:
//
//	"(1;":3: state -2: Symbol ; is not a symbol ')'
type LineEncoder struct {
	w    io.Writer
	opts Options
	res  syntax.Result
}

func NewLineEncoder(w io.Writer, opts Options) *LineEncoder {
	return &LineEncoder{w: w, opts: opts}
}

func (e *LineEncoder) Encode(res syntax.Result) error {
	e.res = res
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	res := e.res
	if res.OK() {
		return []byte(fmt.Sprintf("%q:%d: ok\n", res.Input, res.Consumed)), nil
	}
	return []byte(fmt.Sprintf("%q:%d: state %d: %s\n",
		res.Input, e.opts.Caret.Position(res), int(res.Code), res.Message())), nil
}
