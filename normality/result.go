package normality

import (
	"fmt"
	"strings"
)

// Result holds the outcome of a Gaussianity test.
type Result struct {
	Statistic   float64  // test statistic
	DF          int      // degrees of freedom of the reference distribution; 0 for bootstrap tests
	PValue      float64  // upper-tail probability under the Gaussian null
	Method      string   // test name
	DataName    string   // label of the tested series
	Alternative string   // alternative hypothesis description
	Warnings    []string // advisory diagnostics; never fatal
}

// Reject reports whether the Gaussian null is rejected at level alpha.
func (r *Result) Reject(alpha float64) bool {
	return r.PValue < alpha
}

// String renders the result as a small text report.
func (r *Result) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n\t%s\n\n", r.Method)
	fmt.Fprintf(&b, "data: %s\n", r.DataName)
	if r.DF > 0 {
		fmt.Fprintf(&b, "statistic = %.5f, df = %d, p-value = %.5f\n",
			r.Statistic, r.DF, r.PValue)
	} else {
		fmt.Fprintf(&b, "statistic = %.5f, p-value = %.5f\n",
			r.Statistic, r.PValue)
	}
	fmt.Fprintf(&b, "alternative hypothesis: %s\n", r.Alternative)
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}

	return b.String()
}
