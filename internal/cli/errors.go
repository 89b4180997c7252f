package cli

import (
	"errors"

	"github.com/holonoms/filesize/internal/size"
)

var (
	// ErrMissingArguments is returned when the root command gets fewer than
	// three positional arguments.
	ErrMissingArguments = errors.New("missing arguments: expected <file_path> <size> <unit>")

	// ErrFileUnreadable wraps failures to read a path's metadata.
	ErrFileUnreadable = errors.New("unable to read file metadata")

	// ErrInvalidSize is returned when the size argument is not a finite
	// number, or overflows once scaled to bytes.
	ErrInvalidSize = errors.New("invalid size")
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitUsage          = 2
	ExitFileUnreadable = 3
	ExitInvalidSize    = 4
	ExitInvalidUnit    = 5
)

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMissingArguments):
		return ExitUsage
	case errors.Is(err, ErrFileUnreadable):
		return ExitFileUnreadable
	case errors.Is(err, ErrInvalidSize), errors.Is(err, size.ErrInvalidExpression):
		return ExitInvalidSize
	case errors.Is(err, size.ErrInvalidUnit):
		return ExitInvalidUnit
	default:
		return ExitFailure
	}
}
