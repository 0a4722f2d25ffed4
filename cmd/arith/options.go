package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/arith/config"
	"github.com/dhamidi/arith/format"
)

// globalOptions are the persistent flags shared by every command. Flags that
// were set explicitly override the config file.
type globalOptions struct {
	configPath string
	format     string
	caret      string
	color      string
	verbosity  int
	logFile    string

	cfg *config.Config
}

func (o *globalOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default $"+config.EnvVar+", ./arith.toml)")
	flags.StringVarP(&o.format, "format", "f", "text", "output format (text, line, json, yaml)")
	flags.StringVar(&o.caret, "caret", "end", "caret position (end, mismatch)")
	flags.StringVar(&o.color, "color", "auto", "colorize output (auto, always, never)")
	flags.CountVarP(&o.verbosity, "verbose", "v", "log verbosity (repeat for more)")
	flags.StringVar(&o.logFile, "log-file", "", "write logs to this file instead of stderr")
}

func (o *globalOptions) load(cmd *cobra.Command) error {
	var cfg *config.Config
	var err error
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("caret") {
		cfg.Caret = o.caret
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbosity = o.verbosity
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var logPath *string
	if cfg.Log.File != "" {
		logPath = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logPath)

	o.cfg = cfg
	return nil
}

func (o *globalOptions) caretMode() format.CaretMode {
	mode, err := format.ParseCaretMode(o.cfg.Caret)
	if err != nil {
		return format.CaretEnd
	}
	return mode
}

func (o *globalOptions) colorEnabled(w io.Writer) bool {
	switch o.cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (o *globalOptions) encoder(w io.Writer) (format.Encoder, error) {
	enc, err := format.NewEncoder(o.cfg.Format, w, format.Options{
		Caret: o.caretMode(),
		Color: o.colorEnabled(w),
	})
	if err != nil {
		return nil, fmt.Errorf("create encoder: %w", err)
	}
	return enc, nil
}

func logger(name string) commonlog.Logger {
	return commonlog.GetLogger("arith." + name)
}
