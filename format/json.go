package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/arith/symbol"
	"github.com/dhamidi/arith/syntax"
)

type JSONEncoder struct {
	w    io.Writer
	opts Options
	res  syntax.Result
}

func NewJSONEncoder(w io.Writer, opts Options) *JSONEncoder {
	return &JSONEncoder{w: w, opts: opts}
}

func (e *JSONEncoder) Encode(res syntax.Result) error {
	e.res = res
	if err := write(e.w, e); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildResultData(e.res, e.opts), "", "  ")
}

// resultData is the structured shape shared by the JSON and YAML encoders.
type resultData struct {
	Input      string `json:"input" yaml:"input"`
	OK         bool   `json:"ok" yaml:"ok"`
	State      int    `json:"state" yaml:"state"`
	Code       string `json:"code" yaml:"code"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
	Lookahead  string `json:"lookahead,omitempty" yaml:"lookahead,omitempty"`
	Consumed   int    `json:"consumed" yaml:"consumed"`
	MismatchAt int    `json:"mismatchAt" yaml:"mismatchAt"`
	Caret      int    `json:"caret" yaml:"caret"`
}

func buildResultData(res syntax.Result, opts Options) resultData {
	data := resultData{
		Input:      res.Input,
		OK:         res.OK(),
		State:      int(res.Code),
		Code:       res.Code.String(),
		Consumed:   res.Consumed,
		MismatchAt: res.MismatchAt,
		Caret:      opts.Caret.Position(res),
	}
	if !res.OK() {
		data.Message = res.Message()
		data.Lookahead = symbol.String(res.Lookahead)
	}
	return data
}
