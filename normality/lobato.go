package normality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gonorts/stats"
	"github.com/sartorproj/gonorts/timeseries"
	"github.com/sartorproj/gonorts/uroot"
)

// DefaultBandwidth is the default lag-window constant c. It controls how
// many autocovariance lags enter the variance estimators.
const DefaultBandwidth = 1.0

// Advisory messages attached to results when the pre-checks flag the series.
const (
	warnNonStationary = "unit root suspected: the test assumes a stationary process"
	warnSeasonal      = "seasonal instability detected: the test assumes a stable seasonal pattern"
)

// validateSeries rejects input no test can work on. It runs before any
// numeric work.
func validateSeries(y *timeseries.Series) error {
	if y == nil || y.Len() < 2 {
		return fmt.Errorf("%w: series must hold at least 2 observations", ErrInvalidInput)
	}
	for i, v := range y.Values {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: NaN at index %d", ErrMissingValue, i)
		}
		if math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value at index %d", ErrInvalidInput, i)
		}
	}
	return nil
}

// advisories runs the stationarity and seasonal pre-checks. Findings are
// warnings attached to the result; they never abort a test.
func advisories(y *timeseries.Series) []string {
	var warnings []string

	if report := uroot.Test(y); report != nil && !report.Stationary {
		warnings = append(warnings, warnNonStationary)
	}

	if y.Frequency > 1 {
		if sr := uroot.Seasonal(y); sr != nil && sr.Seasonal {
			warnings = append(warnings, warnSeasonal)
		}
	}

	return warnings
}

// dataName labels a series in results.
func dataName(y *timeseries.Series) string {
	if y.Name != "" {
		return y.Name
	}
	return "series"
}

// lagCount returns hn = ceil(c*sqrt(n) - 1), the number of autocovariance
// lags entering the variance estimators, clamped to at least one lag.
func lagCount(n int, c float64) int {
	hn := int(math.Ceil(c*math.Sqrt(float64(n)) - 1))
	if hn < 1 {
		hn = 1
	}
	return hn
}

// LobatoStatistic computes the studentized skewness-kurtosis statistic of
// Lobato and Velasco for the given observations. The variance of the sample
// skewness and kurtosis is estimated from the autocovariances up to lag
// hn = ceil(c*sqrt(n) - 1), which makes the statistic valid under serial
// dependence. c <= 0 selects the default bandwidth of 1.
//
// The statistic is asymptotically chi-squared with 2 degrees of freedom
// under the Gaussian null. The computation is pure and deterministic.
func LobatoStatistic(values []float64, c float64) (float64, error) {
	n := len(values)
	if n < 2 {
		return 0, fmt.Errorf("%w: need at least 2 observations, have %d", ErrInvalidInput, n)
	}
	if c <= 0 {
		c = DefaultBandwidth
	}

	mu1, mu2, mu3, mu4 := stats.CentralMoments(values)

	hn := lagCount(n, c)

	// gamma[j-1] holds the biased (denominator n) autocovariance at lag j,
	// computed from the n-j available pairs. A lag with no pairs left, or
	// whose arithmetic degenerates to NaN, is defined as zero.
	gamma := make([]float64, hn)
	for j := 1; j <= hn; j++ {
		if n-j <= 0 {
			continue
		}
		sum := 0.0
		for t := 0; t < n-j; t++ {
			sum += (values[t] - mu1) * (values[t+j] - mu1)
		}
		g := sum / float64(n)
		if math.IsNaN(g) {
			continue
		}
		gamma[j-1] = g
	}

	// gat is gamma read back-to-front; an index reversal, no recomputation.
	gat := make([]float64, hn)
	for j := 0; j < hn; j++ {
		gat[j] = gamma[hn-1-j]
	}

	f3 := 0.0
	f4 := 0.0
	for j := 0; j < hn; j++ {
		s := gamma[j] + gat[j]
		f3 += gamma[j] * s * s
		f4 += gamma[j] * s * s * s
	}
	f3 = math.Abs(2*f3 + mu2*mu2*mu2)
	f4 = math.Abs(2*f4 + mu2*mu2*mu2*mu2)

	if f3 == 0 || f4 == 0 {
		return 0, fmt.Errorf("%w: variance estimator collapsed to zero", ErrNumericDomain)
	}

	skewTerm := mu3 * mu3 / (6 * f3)
	excess := mu4 - 3*mu2*mu2
	kurtTerm := excess * excess / (24 * f4)

	return float64(n) * (skewTerm + kurtTerm), nil
}

// Lobato runs Lobato and Velasco's test for Gaussianity of a stationary
// series. Unlike moment tests that assume independent observations, the
// statistic stays valid under serial dependence. c tunes the lag window;
// c <= 0 selects the default of 1.
//
// Stationarity and seasonal-instability findings are attached as warnings,
// never as errors: a caller who ignores warnings still receives a complete
// result.
func Lobato(y *timeseries.Series, c float64) (*Result, error) {
	if err := validateSeries(y); err != nil {
		return nil, err
	}

	warnings := advisories(y)

	g, err := LobatoStatistic(y.Values, c)
	if err != nil {
		return nil, err
	}

	chi := distuv.ChiSquared{K: 2}
	name := dataName(y)

	return &Result{
		Statistic:   g,
		DF:          2,
		PValue:      chi.Survival(g),
		Method:      "Lobato and Velasco's test",
		DataName:    name,
		Alternative: fmt.Sprintf("%s is not Gaussian", name),
		Warnings:    warnings,
	}, nil
}
