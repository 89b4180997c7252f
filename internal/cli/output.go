package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/holonoms/filesize/internal/size"
)

// fileReport is the JSON shape of a measured path.
type fileReport struct {
	Path    string        `json:"path"`
	Bytes   uint64        `json:"bytes"`
	Human   string        `json:"human"`
	Files   int           `json:"files,omitempty"`
	Entries []entryReport `json:"entries,omitempty"`
}

type entryReport struct {
	Path  string `json:"path"`
	Bytes uint64 `json:"bytes"`
}

// unitValue is the JSON shape of a size in a single unit.
type unitValue struct {
	Value float64   `json:"value"`
	Unit  size.Unit `json:"unit"`
}

// printer writes results either as text or as JSON lines.
type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(w io.Writer, opts *Options) printer {
	return printer{w: w, json: opts.JSON}
}

func (p printer) encode(v any) error {
	return json.NewEncoder(p.w).Encode(v)
}

// breakdown prints every unit view of a magnitude.
func (p printer) breakdown(b size.Breakdown) error {
	if p.json {
		return p.encode(b)
	}

	_, err := fmt.Fprintf(p.w,
		"Sizes {\n    bytes: %s,\n    kilobytes: %s,\n    megabytes: %s,\n    gigabytes: %s,\n}\n",
		formatFloat(b.Bytes),
		formatFloat(b.Kilobytes),
		formatFloat(b.Megabytes),
		formatFloat(b.Gigabytes),
	)
	return err
}

// formatFloat prints the shortest decimal that reads back as v, without an
// exponent.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
