package curb

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute tolerance of the length conservation invariant.
// Rounded values whose magnitude is below it are treated as zero.
const Tolerance = 0.01

// DefaultPrecision is the number of decimals lengths are rounded to.
const DefaultPrecision = 1

// DefaultSeedLength is the length of segments created by [AddSegment].
const DefaultSeedLength = 20

// Config parameterizes the reducer. The zero value is not useful; start from
// [DefaultConfig].
type Config struct {
	// Precision is the number of decimals lengths are rounded to after every
	// mutation.
	Precision int
	// SeedLength is the preferred length of segments created by
	// [AddSegment]. Less is used if less is unassigned.
	SeedLength float64
	// DefaultType is the type of newly created segments.
	DefaultType SegmentType
}

var DefaultConfig = Config{
	Precision:   DefaultPrecision,
	SeedLength:  DefaultSeedLength,
	DefaultType: Parking,
}

// Round rounds x to the configured precision. Results closer to zero than
// [Tolerance] become exactly zero.
func (cfg Config) Round(x float64) float64 {
	x = scalar.Round(x, cfg.Precision)
	if math.Abs(x) < Tolerance {
		return 0
	}
	return x
}

// floor rounds x down to the configured precision.
func (cfg Config) floor(x float64) float64 {
	pow := math.Pow10(cfg.Precision)
	return settle(math.Floor(x*pow) / pow)
}

// snap rounds x to the configured precision unless that would move it by a
// noticeable amount, as it would for lengths that absorbed a sub-precision
// remainder. Values below Tolerance become zero.
func (cfg Config) snap(x float64) float64 {
	if r := cfg.Round(x); math.Abs(r-x) < Tolerance/10 {
		return r
	}
	return settle(x)
}

// belowStep reports whether x is positive but smaller than the smallest
// length the configured precision can express.
func (cfg Config) belowStep(x float64) bool {
	return x > 0 && x < math.Pow10(-cfg.Precision)-Tolerance/10
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
