package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/syntax"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check [input...]",
		Short: "Check each argument, or each line of a file, and report the result",
		Example: `  arith check '1+2;' '(1;'
  arith check --file exprs.txt --format json
  echo '1.5*2;' | arith check --file -`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if file != "" {
				lines, err := readLines(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				inputs = append(inputs, lines...)
			}
			if len(inputs) == 0 {
				return fmt.Errorf("nothing to check: pass inputs as arguments or use --file")
			}

			enc, err := opts.encoder(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			log := logger("check")
			failed := 0
			for _, input := range inputs {
				res := syntax.Parse(input)
				log.Debugf("%q: state %d", input, int(res.Code))
				if !res.OK() {
					failed++
				}
				if err := enc.Encode(res); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read one input per line from file (- for stdin)")

	return cmd
}

func readLines(stdin io.Reader, file string) ([]string, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return lines, nil
}
