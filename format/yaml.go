package format

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/arith/syntax"
)

// YAMLEncoder writes one YAML document per result.
type YAMLEncoder struct {
	w    io.Writer
	opts Options
	res  syntax.Result
}

func NewYAMLEncoder(w io.Writer, opts Options) *YAMLEncoder {
	return &YAMLEncoder{w: w, opts: opts}
}

func (e *YAMLEncoder) Encode(res syntax.Result) error {
	e.res = res
	if _, err := io.WriteString(e.w, "---\n"); err != nil {
		return err
	}
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildResultData(e.res, e.opts))
}
