package normality

import "errors"

// Test errors - centralized definitions, wrapped with context at call sites.
var (
	// ErrInvalidInput reports input the tests cannot work on: a nil or
	// too-short series, non-finite entries, or an unknown method name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingValue reports an undefined (NaN) entry in the input.
	ErrMissingValue = errors.New("missing value in series")

	// ErrNumericDomain reports a degenerate variance estimator that leaves
	// the test statistic undefined, e.g. for an exactly constant series.
	ErrNumericDomain = errors.New("statistic undefined for degenerate input")
)

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsMissingValue(err error) bool {
	return errors.Is(err, ErrMissingValue)
}

func IsNumericDomain(err error) bool {
	return errors.Is(err, ErrNumericDomain)
}
