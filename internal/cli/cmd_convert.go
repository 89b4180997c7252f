package cli

import (
	"fmt"

	"github.com/holonoms/filesize/internal/size"
	"github.com/spf13/cobra"
)

// newConvertCmd creates the convert command
func newConvertCmd(opts *Options) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <size> <unit>",
		Short: "Convert a size to bytes, kilobytes, megabytes and gigabytes",
		Long: `Convert <size> given in <unit> into every unit, or only into the unit named
by --to. Negative sizes are converted like any other.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0], args[1], to)
		},
		ValidArgsFunction: func(
			_ *cobra.Command,
			args []string,
			_ string,
		) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return unitNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Print the size in this unit only (B, KB, MB or GB)")
	_ = cmd.RegisterFlagCompletionFunc("to", func(
		_ *cobra.Command,
		_ []string,
		_ string,
	) ([]string, cobra.ShellCompDirective) {
		return unitNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runConvert(cmd *cobra.Command, opts *Options, sizeArg, unit, to string) error {
	value, err := parseSize(sizeArg)
	if err != nil {
		return err
	}

	b, err := convert(value, unit)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), opts)
	if to == "" {
		return p.breakdown(b)
	}

	target, err := size.ParseUnit(to)
	if err != nil {
		return err
	}
	if p.json {
		return p.encode(unitValue{Value: b.In(target), Unit: target})
	}
	_, err = fmt.Fprintf(p.w, "%s %s\n", formatFloat(b.In(target)), target)
	return err
}

func unitNames() []string {
	names := make([]string, 0, len(size.Units))
	for _, u := range size.Units {
		names = append(names, string(u))
	}
	return names
}
