package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/holonoms/filesize/internal/size"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runReport implements the root command: size the file, then convert the
// (size, unit) pair. Output up to the first failure is kept.
func runReport(cmd *cobra.Command, opts *Options, args []string) error {
	if len(args) < 3 {
		cmd.PrintErrln(cmd.UsageString())
		return ErrMissingArguments
	}

	log := opts.logger()
	p := newPrinter(cmd.OutOrStdout(), opts)

	if p.json {
		log.Debug("arguments", zap.Strings("args", args))
	} else {
		fmt.Fprintf(p.w, "args are: %v\n", args)
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	n := uint64(info.Size())

	if p.json {
		if err := p.encode(fileReport{Path: path, Bytes: n, Human: size.Format(n)}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(p.w, "File Size is: %d bytes\n", n)
		fmt.Fprintln(p.w, size.Format(n))
	}

	value, err := parseSize(args[1])
	if err != nil {
		return err
	}

	b, err := convert(value, args[2])
	if err != nil {
		return err
	}
	log.Debug("converted", zap.Float64("value", value), zap.String("unit", args[2]), zap.Float64("bytes", b.Bytes))

	return p.breakdown(b)
}

// parseSize reads a magnitude. Any finite number is accepted, including
// negative ones.
func parseSize(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %q: must be a finite number", ErrInvalidSize, s)
	}
	return v, nil
}

// convert is size.Convert with overflow reported as an invalid size.
func convert(value float64, unit string) (size.Breakdown, error) {
	b, err := size.Convert(value, unit)
	if errors.Is(err, size.ErrOutOfRange) {
		return b, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	return b, err
}
