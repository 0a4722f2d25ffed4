package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/repl"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:     "arith",
		Short:   "LL(1) syntax checker for semicolon-terminated arithmetic",
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := opts.encoder(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			replOpts := []repl.Option{
				repl.WithPrompt(opts.cfg.Prompt),
				repl.WithLogger(logger("repl")),
			}
			if opts.cfg.Log.Verbosity > 1 {
				replOpts = append(replOpts, repl.WithTrace())
			}
			session := repl.New(cmd.OutOrStdout(), enc, replOpts...)
			err = session.Run(cmd.Context(), cmd.InOrStdin())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	opts.register(rootCmd)

	rootCmd.AddCommand(newCheckCmd(&opts))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(&opts))
	rootCmd.AddCommand(newUICmd(&opts))

	return rootCmd
}
