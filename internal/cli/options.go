package cli

import (
	"github.com/holonoms/filesize/internal/config"
	"github.com/holonoms/filesize/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Options holds the command-line options shared across commands
type Options struct {
	// JSON prints results as one JSON object per line. When the --json flag
	// is not given, the output.json preference decides.
	JSON bool

	// Verbose enables debug logging on stderr.
	Verbose bool

	// RespectIgnore filters directory walks through .filesizeignore or
	// .gitignore. When --respect-ignore is not given, the
	// stat.respect_ignore preference decides (default true).
	RespectIgnore bool

	// IgnoreFile specifies an explicit ignore file for directory walks.
	IgnoreFile string

	// Tree renders directory results as a sized tree.
	Tree bool

	log *zap.Logger
}

// resolve builds the logger and fills in options the user did not set on
// the command line from the stored preferences. An unreadable config file
// is logged and otherwise ignored.
func (o *Options) resolve(cmd *cobra.Command) {
	o.log = logging.New(cmd.ErrOrStderr(), o.Verbose)

	cfg, err := config.New(".")
	if err != nil {
		o.log.Warn("ignoring config", zap.Error(err))
		cfg = nil
	}

	flags := cmd.Flags()
	if !flags.Changed("json") && cfg != nil {
		o.JSON = cfg.Bool(config.KeyOutputJSON, false)
	}
	if !flags.Changed("respect-ignore") {
		o.RespectIgnore = true
		if cfg != nil {
			o.RespectIgnore = cfg.Bool(config.KeyRespectIgnore, true)
		}
	}

	o.log.Debug("resolved options",
		zap.Bool("json", o.JSON),
		zap.Bool("respect_ignore", o.RespectIgnore),
		zap.String("ignore_file", o.IgnoreFile),
	)
}

func (o *Options) logger() *zap.Logger {
	if o.log == nil {
		return logging.Nop()
	}
	return o.log
}
