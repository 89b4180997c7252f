package cli

import (
	"fmt"
	"strings"

	"github.com/holonoms/filesize/internal/size"
	"github.com/spf13/cobra"
)

// newParseCmd creates the parse command
func newParseCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse a size such as 10MB or \"1.5 GB\" and convert it",
		Long: `Parse a human-readable size and print it in every unit. SI suffixes are
decimal (1 MB = 1000000 bytes); IEC suffixes such as MiB are binary.
Several arguments are joined with spaces, so "parse 10 MB" works unquoted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, strings.Join(args, " "))
		},
	}

	return cmd
}

func runParse(cmd *cobra.Command, opts *Options, expr string) error {
	n, err := size.Parse(expr)
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), opts)
	if !p.json {
		fmt.Fprintf(p.w, "%s = %d bytes (%s)\n", expr, n, size.Format(n))
	}
	return p.breakdown(size.FromBytes(float64(n)))
}
