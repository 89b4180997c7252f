// Package size converts byte counts between decimal units and renders them as
// human-readable strings. All units are powers of 1000: a kilobyte is 1000
// bytes, never 1024.
package size

import (
	"errors"
	"fmt"
)

// Unit tags a magnitude with its scale.
type Unit string

// Recognized units. Matching is case-sensitive.
const (
	B  Unit = "B"
	KB Unit = "KB"
	MB Unit = "MB"
	GB Unit = "GB"
)

// Byte multipliers for each unit.
const (
	Byte     uint64 = 1
	Kilobyte        = 1000 * Byte
	Megabyte        = 1000 * Kilobyte
	Gigabyte        = 1000 * Megabyte
)

// ErrInvalidUnit is returned when a unit tag is not one of B, KB, MB or GB.
var ErrInvalidUnit = errors.New("unknown unit")

// Units lists the recognized units from smallest to largest.
var Units = []Unit{B, KB, MB, GB}

// ParseUnit validates a unit tag.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case B, KB, MB, GB:
		return u, nil
	default:
		return "", fmt.Errorf("%w %q: use B, KB, MB, or GB", ErrInvalidUnit, s)
	}
}

// Multiplier returns the number of bytes in one of u, or 0 for an
// unrecognized unit.
func (u Unit) Multiplier() uint64 {
	switch u {
	case B:
		return Byte
	case KB:
		return Kilobyte
	case MB:
		return Megabyte
	case GB:
		return Gigabyte
	default:
		return 0
	}
}
