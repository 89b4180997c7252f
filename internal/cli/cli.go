// Package cli provides the command-line interface for filesize.
package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Default version for development/non-release builds. Release builds set
	// it with -ldflags "-X github.com/holonoms/filesize/internal/cli.version=...".
	version = "dev"
)

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	return newRootCmd(&Options{})
}

func newRootCmd(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filesize <file_path> <size> <unit>",
		Short: "Report a file's size and convert sizes between byte units",
		Long: `filesize prints the size of a file in the largest sensible decimal unit,
then converts <size> given in <unit> (B, KB, MB or GB) into every unit.
Units are powers of 1000. Negative sizes such as -5 are read as values,
not flags.`,
		Version:      version,
		SilenceUsage: true,
		// NB: ArbitraryArgs keeps the positional arguments from being taken
		// as subcommand names; the argument count is checked in runReport so
		// that a short invocation prints the usage text.
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Print results as JSON lines")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	// Add commands
	rootCmd.AddCommand(
		newStatCmd(opts),
		newConvertCmd(opts),
		newParseCmd(opts),
		newConfigCmd(),
	)

	return rootCmd
}

// Execute runs cmd with args. Negative numbers are positional values, so
// "filesize data.bin -5 MB" converts -5 instead of failing on an unknown
// shorthand flag '5'.
func Execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(positionalNumbers(args))
	return cmd.Execute()
}

// positionalNumbers rewrites args so the first negative number, and every
// argument after it that is not a flag, follows a "--" terminator. Flags that
// came after it are moved in front of the terminator and keep working.
func positionalNumbers(args []string) []string {
	first := -1
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if isNegativeNumber(arg) {
			first = i
			break
		}
	}
	if first < 0 {
		return args
	}

	head := append([]string{}, args[:first]...)
	var tail []string
	for _, arg := range args[first:] {
		if arg == "--" {
			continue
		}
		if strings.HasPrefix(arg, "-") && !isNegativeNumber(arg) {
			head = append(head, arg)
			continue
		}
		tail = append(tail, arg)
	}
	return append(append(head, "--"), tail...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}
