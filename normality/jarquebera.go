package normality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gonorts/stats"
	"github.com/sartorproj/gonorts/timeseries"
)

// JarqueBeraStatistic computes the Jarque-Bera statistic
// JB = n*(S^2/6 + (K-3)^2/24) from the moment skewness S and kurtosis K.
// It is the independent-observations special case of the Lobato-Velasco
// statistic: with all autocovariances zero the variance estimators reduce
// to powers of the variance and the two coincide.
func JarqueBeraStatistic(values []float64) (float64, error) {
	n := len(values)
	if n < 2 {
		return 0, fmt.Errorf("%w: need at least 2 observations, have %d", ErrInvalidInput, n)
	}

	_, mu2, mu3, mu4 := stats.CentralMoments(values)
	if mu2 == 0 {
		return 0, fmt.Errorf("%w: zero variance", ErrNumericDomain)
	}

	skew := mu3 / math.Pow(mu2, 1.5)
	kurt := mu4 / (mu2 * mu2)

	return float64(n) * (skew*skew/6 + (kurt-3)*(kurt-3)/24), nil
}

// JarqueBera runs the Jarque-Bera moment test for Gaussianity. The test
// assumes independent observations; on autocorrelated data its size is
// distorted, which is what Lobato corrects. Offered for comparison and for
// series known to be white noise.
func JarqueBera(y *timeseries.Series) (*Result, error) {
	if err := validateSeries(y); err != nil {
		return nil, err
	}

	warnings := advisories(y)

	jb, err := JarqueBeraStatistic(y.Values)
	if err != nil {
		return nil, err
	}

	chi := distuv.ChiSquared{K: 2}
	name := dataName(y)

	return &Result{
		Statistic:   jb,
		DF:          2,
		PValue:      chi.Survival(jb),
		Method:      "Jarque-Bera test",
		DataName:    name,
		Alternative: fmt.Sprintf("%s is not Gaussian", name),
		Warnings:    warnings,
	}, nil
}
