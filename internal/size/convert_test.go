package size

import (
	"errors"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		unit     string
		expected Breakdown
	}{
		{
			name:     "bytes",
			value:    100,
			unit:     "B",
			expected: Breakdown{Bytes: 100, Kilobytes: 0.1, Megabytes: 0.0001, Gigabytes: 0.0000001},
		},
		{
			name:     "one kilobyte",
			value:    1,
			unit:     "KB",
			expected: Breakdown{Bytes: 1000, Kilobytes: 1, Megabytes: 0.001, Gigabytes: 0.000001},
		},
		{
			name:     "one megabyte",
			value:    1,
			unit:     "MB",
			expected: Breakdown{Bytes: 1_000_000, Kilobytes: 1000, Megabytes: 1, Gigabytes: 0.001},
		},
		{
			name:     "one gigabyte",
			value:    1,
			unit:     "GB",
			expected: Breakdown{Bytes: 1_000_000_000, Kilobytes: 1_000_000, Megabytes: 1000, Gigabytes: 1},
		},
		{
			name:     "ten megabytes",
			value:    10,
			unit:     "MB",
			expected: Breakdown{Bytes: 10_000_000, Kilobytes: 10_000, Megabytes: 10, Gigabytes: 0.01},
		},
		{
			name:     "negative megabytes",
			value:    -5,
			unit:     "MB",
			expected: Breakdown{Bytes: -5_000_000, Kilobytes: -5000, Megabytes: -5, Gigabytes: -0.005},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Convert(tt.value, tt.unit)
			if err != nil {
				t.Fatalf("Convert(%v, %q) failed: %v", tt.value, tt.unit, err)
			}
			if result != tt.expected {
				t.Errorf("Convert(%v, %q) = %+v, want %+v", tt.value, tt.unit, result, tt.expected)
			}
		})
	}
}

func TestConvertInvalidUnit(t *testing.T) {
	for _, unit := range []string{"XX", "kb", "Kb", "", "TB", " MB"} {
		result, err := Convert(5, unit)
		if !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("Convert(5, %q) error = %v, want ErrInvalidUnit", unit, err)
		}
		if result != (Breakdown{}) {
			t.Errorf("Convert(5, %q) = %+v, want zero Breakdown", unit, result)
		}
	}
}

func TestConvertOutOfRange(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
	}{
		{1e300, "GB"},
		{-1e300, "GB"},
		{math.MaxFloat64, "KB"},
		{math.Inf(1), "B"},
		{math.NaN(), "MB"},
	}

	for _, tt := range tests {
		result, err := Convert(tt.value, tt.unit)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Convert(%v, %q) error = %v, want ErrOutOfRange", tt.value, tt.unit, err)
		}
		if result != (Breakdown{}) {
			t.Errorf("Convert(%v, %q) = %+v, want zero Breakdown", tt.value, tt.unit, result)
		}
	}

	// The largest finite byte count still converts.
	if _, err := Convert(math.MaxFloat64, "B"); err != nil {
		t.Errorf("Convert(MaxFloat64, B) failed: %v", err)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, v := range []float64{1, 2.048, 999, 1000, 12.5} {
		b, err := Convert(v, "KB")
		if err != nil {
			t.Fatalf("Convert(%v, KB) failed: %v", v, err)
		}
		if b.Bytes != v*1000 {
			t.Errorf("Convert(%v, KB).Bytes = %v, want %v", v, b.Bytes, v*1000)
		}

		switch u := Classify(uint64(b.Bytes)).Unit(); u {
		case B, KB, MB:
		default:
			t.Errorf("Classify(%v) = %s, want KB or an adjacent unit", b.Bytes, u)
		}
	}
}

func TestBreakdownIn(t *testing.T) {
	b := FromBytes(2_000_000)
	for unit, want := range map[Unit]float64{B: 2_000_000, KB: 2000, MB: 2, GB: 0.002} {
		if got := b.In(unit); got != want {
			t.Errorf("In(%s) = %v, want %v", unit, got, want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	for _, u := range Units {
		got, err := ParseUnit(string(u))
		if err != nil || got != u {
			t.Errorf("ParseUnit(%q) = %q, %v", u, got, err)
		}
		if u.Multiplier() == 0 {
			t.Errorf("%s has no multiplier", u)
		}
	}
	if _, err := ParseUnit("gb"); !errors.Is(err, ErrInvalidUnit) {
		t.Errorf("ParseUnit(gb) error = %v, want ErrInvalidUnit", err)
	}
	if m := Unit("PB").Multiplier(); m != 0 {
		t.Errorf("Multiplier(PB) = %d, want 0", m)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr string
		want uint64
	}{
		{"512", 512},
		{"10MB", 10_000_000},
		{"1.5 GB", 1_500_000_000},
		{"2 KB", 2000},
		{"1 MiB", 1 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.expr, got, tt.want)
			}
		})
	}

	if _, err := Parse("ten megabytes"); !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("Parse(ten megabytes) error = %v, want ErrInvalidExpression", err)
	}
}
