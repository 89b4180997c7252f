// Package walker measures the on-disk byte count of a path. A regular file
// yields a single entry; a directory yields every regular file beneath it,
// optionally filtered through gitignore-style patterns so that build output
// and other ignored files don't inflate the total.
package walker

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

// alwaysIgnored is matched regardless of Options.RespectIgnore.
var alwaysIgnored = []string{".git"}

// Options controls how a directory is walked.
type Options struct {
	// RespectIgnore enables ignore-file filtering. When set and IgnoreFile is
	// empty, .filesizeignore is used if present, then .gitignore.
	RespectIgnore bool

	// IgnoreFile points at an explicit ignore file. Only read when
	// RespectIgnore is set.
	IgnoreFile string

	// Logger receives debug output about skipped entries. May be nil.
	Logger *zap.Logger
}

// Entry is one counted file.
type Entry struct {
	// Path is relative to the walk root and slash separated.
	Path string
	Size uint64
}

// Walker sizes a file or directory tree.
type Walker struct {
	root       string
	ignoreFile string
	matcher    gitignore.Matcher
	log        *zap.Logger
}

// New creates a Walker rooted at root.
func New(root string, opts Options) (*Walker, error) {
	root = filepath.Clean(root)

	w := &Walker{
		root: root,
		log:  opts.Logger,
	}
	if w.log == nil {
		w.log = zap.NewNop()
	}

	patterns := make([]gitignore.Pattern, 0, len(alwaysIgnored))
	for _, p := range alwaysIgnored {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}

	if opts.RespectIgnore {
		w.ignoreFile = opts.IgnoreFile
		if w.ignoreFile == "" {
			w.ignoreFile = findIgnoreFile(root)
		}
	}

	if w.ignoreFile != "" {
		data, err := os.ReadFile(w.ignoreFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore file: %w", err)
		}
		patterns = append(patterns, parsePatterns(string(data))...)
		w.log.Debug("loaded ignore file", zap.String("path", w.ignoreFile))
	}

	w.matcher = gitignore.NewMatcher(patterns)
	return w, nil
}

// IgnoreFile returns the ignore file in effect, or "" if none.
func (w *Walker) IgnoreFile() string {
	return w.ignoreFile
}

// Walk returns the counted entries sorted by path.
func (w *Walker) Walk() ([]Entry, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []Entry{{Path: filepath.Base(w.root), Size: uint64(info.Size())}}, nil
	}

	var entries []Entry
	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == w.root {
			return nil
		}

		relPath, err := filepath.Rel(w.root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		relPath = filepath.ToSlash(relPath)

		if w.matcher.Match(strings.Split(relPath, "/"), d.IsDir()) {
			w.log.Debug("ignored", zap.String("path", relPath))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Directories are descended into; symlinks and devices are not counted.
		if !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", relPath, err)
		}
		entries = append(entries, Entry{Path: relPath, Size: uint64(fi.Size())})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	w.log.Debug("walked directory", zap.String("root", w.root), zap.Int("files", len(entries)))
	return entries, nil
}

func findIgnoreFile(root string) string {
	for _, name := range []string{".filesizeignore", ".gitignore"} {
		candidate := filepath.Join(root, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func parsePatterns(data string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns
}
