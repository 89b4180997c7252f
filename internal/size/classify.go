package size

import "fmt"

// Class is the display unit chosen for a byte count. Exactly one of Bytes,
// Kilobytes, Megabytes or Gigabytes implements it; the value carried is the
// magnitude already scaled into that unit.
type Class interface {
	fmt.Stringer
	Unit() Unit
	class()
}

// Bytes is a count under one kilobyte, kept exact.
type Bytes uint64

// Kilobytes is a count in [1 KB, 1 MB), scaled to KB.
type Kilobytes float64

// Megabytes is a count in [1 MB, 1 GB), scaled to MB.
type Megabytes float64

// Gigabytes is a count of one gigabyte or more, scaled to GB.
type Gigabytes float64

func (b Bytes) String() string     { return fmt.Sprintf("%d bytes", uint64(b)) }
func (k Kilobytes) String() string { return fmt.Sprintf("%.2f KB", float64(k)) }
func (m Megabytes) String() string { return fmt.Sprintf("%.2f MB", float64(m)) }
func (g Gigabytes) String() string { return fmt.Sprintf("%.2f GB", float64(g)) }

func (Bytes) Unit() Unit     { return B }
func (Kilobytes) Unit() Unit { return KB }
func (Megabytes) Unit() Unit { return MB }
func (Gigabytes) Unit() Unit { return GB }

func (Bytes) class()     {}
func (Kilobytes) class() {}
func (Megabytes) class() {}
func (Gigabytes) class() {}

// Classify picks the largest unit whose threshold n reaches. The band is
// chosen on the exact integer, so 999999 is Kilobytes even though it renders
// as "1000.00 KB".
func Classify(n uint64) Class {
	switch {
	case n < Kilobyte:
		return Bytes(n)
	case n < Megabyte:
		return Kilobytes(float64(n) / float64(Kilobyte))
	case n < Gigabyte:
		return Megabytes(float64(n) / float64(Megabyte))
	default:
		return Gigabytes(float64(n) / float64(Gigabyte))
	}
}

// Format converts a byte count into a human-readable string. Counts under a
// kilobyte print as whole bytes, everything else with two decimal places:
//
//   - 999 -> "999 bytes"
//   - 2048 -> "2.05 KB"
//   - 1000000000 -> "1.00 GB"
func Format(n uint64) string {
	return Classify(n).String()
}
