package size

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// ErrInvalidExpression is returned when a size expression such as "10MB"
// cannot be parsed.
var ErrInvalidExpression = errors.New("invalid size expression")

// ErrOutOfRange is returned when a magnitude, once scaled to bytes, is not a
// finite float64.
var ErrOutOfRange = errors.New("size out of range")

// Breakdown is one magnitude expressed in every unit at once.
type Breakdown struct {
	Bytes     float64 `json:"bytes"`
	Kilobytes float64 `json:"kilobytes"`
	Megabytes float64 `json:"megabytes"`
	Gigabytes float64 `json:"gigabytes"`
}

// Convert scales value from unit into bytes and derives the other three
// views. An unrecognized unit yields ErrInvalidUnit and a zero Breakdown.
// Negative magnitudes convert like any other; NaN, infinities and products
// that overflow yield ErrOutOfRange.
func Convert(value float64, unit string) (Breakdown, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Breakdown{}, err
	}
	bytes := value * float64(u.Multiplier())
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) {
		return Breakdown{}, fmt.Errorf("%w: %v %s", ErrOutOfRange, value, u)
	}
	return FromBytes(bytes), nil
}

// FromBytes builds the breakdown of a byte magnitude.
func FromBytes(bytes float64) Breakdown {
	return Breakdown{
		Bytes:     bytes,
		Kilobytes: bytes / float64(Kilobyte),
		Megabytes: bytes / float64(Megabyte),
		Gigabytes: bytes / float64(Gigabyte),
	}
}

// In returns the view of b in unit u.
func (b Breakdown) In(u Unit) float64 {
	switch u {
	case KB:
		return b.Kilobytes
	case MB:
		return b.Megabytes
	case GB:
		return b.Gigabytes
	default:
		return b.Bytes
	}
}

// Parse reads a human size expression like "10MB", "1.5 GB" or "512" into a
// byte count. SI suffixes are decimal (MB = 1000000); IEC suffixes such as
// MiB are accepted and stay binary.
func Parse(expr string) (uint64, error) {
	n, err := humanize.ParseBytes(expr)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidExpression, expr, err)
	}
	return n, nil
}
