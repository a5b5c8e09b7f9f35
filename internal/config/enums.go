package config

import "fmt"

// Precision selects the floating-point width used for grid physical
// quantities.
type Precision string

const (
	Single Precision = "single"
	Double Precision = "double"
)

// PrecisionFromBytes maps a byte-width keyword to a Precision.
// Only 4 (single) and 8 (double) are supported.
func PrecisionFromBytes(n int) (Precision, error) {
	switch n {
	case 4:
		return Single, nil
	case 8:
		return Double, nil
	}
	return "", fmt.Errorf("unsupported byte width %d (expected 4 or 8)", n)
}

// OutputLevel controls how often a physical quantity is written out.
type OutputLevel string

const (
	// OutputAll writes the quantity after every temperature iteration.
	OutputAll OutputLevel = "all"
	// OutputLast writes the quantity after the final iteration only.
	OutputLast OutputLevel = "last"
	// OutputNone never writes the quantity.
	OutputNone OutputLevel = "none"
)

// ParseOutputLevel validates an output verbosity keyword. Any value outside
// {all, last, none} is rejected.
func ParseOutputLevel(s string) (OutputLevel, error) {
	switch OutputLevel(s) {
	case OutputAll, OutputLast, OutputNone:
		return OutputLevel(s), nil
	}
	return "", fmt.Errorf("invalid output level %q (expected all, last, or none)", s)
}
