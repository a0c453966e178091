// Package validation provides functionality to validate generated bullets
// and application packages against a candidate's verifiable history.
package validation

// Limits carries the thresholds the checks validate against. Callers pass
// an explicit value; there is no package-level default state.
type Limits struct {
	MinBulletChars      int
	MaxBulletChars      int
	MinCoverageRatio    float64
	MinCoverLetterChars int
}

// DefaultLimits returns the standard thresholds.
func DefaultLimits() Limits {
	return Limits{
		MinBulletChars:      30,
		MaxBulletChars:      150,
		MinCoverageRatio:    0.8,
		MinCoverLetterChars: 200,
	}
}
