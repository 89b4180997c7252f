package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/holonoms/filesize/internal/filetree"
	"github.com/holonoms/filesize/internal/size"
	"github.com/holonoms/filesize/internal/walker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newStatCmd creates the stat command
func newStatCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat <path>",
		Short: "Report the size of a file or directory",
		Long: `Report the size of a file, or the total size of the regular files under a
directory. Directory walks skip .git and, unless disabled, anything matched
by .filesizeignore or .gitignore.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.Tree, "tree", "t", false, "Render a sized directory tree")
	cmd.Flags().BoolVar(&opts.RespectIgnore, "respect-ignore", true, "Skip files matched by the ignore file")
	cmd.Flags().StringVar(&opts.IgnoreFile, "ignore", "", "Ignore file (default: .filesizeignore, then .gitignore)")

	return cmd
}

func runStat(cmd *cobra.Command, opts *Options, path string) error {
	w, err := walker.New(path, walker.Options{
		RespectIgnore: opts.RespectIgnore,
		IgnoreFile:    opts.IgnoreFile,
		Logger:        opts.logger(),
	})
	if err != nil {
		return fmt.Errorf("unable to create walker: %w", err)
	}

	entries, err := w.Walk()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}

	tree := filetree.New(entries)
	total := tree.Size()
	opts.logger().Debug("stat",
		zap.String("path", path),
		zap.String("ignore_file", w.IgnoreFile()),
		zap.Int("files", len(entries)),
		zap.Uint64("bytes", total),
	)

	p := newPrinter(cmd.OutOrStdout(), opts)
	if p.json {
		report := fileReport{Path: path, Bytes: total, Human: size.Format(total), Files: len(entries)}
		if opts.Tree {
			for _, e := range entries {
				report.Entries = append(report.Entries, entryReport{Path: e.Path, Bytes: e.Size})
			}
		}
		return p.encode(report)
	}

	if opts.Tree {
		fmt.Fprintln(p.w, tree.String(filepath.Base(filepath.Clean(path))))
	}

	suffix := ""
	if len(entries) != 1 {
		suffix = "s"
	}
	_, err = fmt.Fprintf(p.w, "%s: %s bytes (%s) in %d file%s\n",
		path, humanize.Comma(int64(total)), size.Format(total), len(entries), suffix)
	return err
}
