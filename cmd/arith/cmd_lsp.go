package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/lsp"
)

func newLSPCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, lsp.WithCaret(opts.caretMode()))
			return server.RunStdio()
		},
	}
}
