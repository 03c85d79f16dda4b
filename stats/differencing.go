package stats

import (
	"math"

	"github.com/sartorproj/gonorts/timeseries"
)

// NSDiffs determines the number of seasonal differences required.
// Uses the seasonal strength measure: if F_S >= 0.64, one seasonal difference is suggested.
// period is the seasonal period (e.g., 12 for monthly data with yearly seasonality).
func NSDiffs(series *timeseries.Series, period int, maxD int) int {
	if maxD <= 0 {
		maxD = 1
	}
	if period <= 1 || series.Len() < 2*period {
		return 0
	}

	current := series
	for d := 0; d < maxD; d++ {
		strength := SeasonalStrength(current, period)

		// If seasonal strength < 0.64, no more seasonal differencing needed
		if strength < 0.64 {
			return d
		}

		// Apply seasonal differencing
		current = current.SeasonalDiff(period)
		if current.Len() < 2*period {
			return d
		}
	}

	return maxD
}

// SeasonalStrength calculates the strength of seasonality (F_S).
// F_S = max(0, 1 - Var(R) / Var(S+R))
// where S is the seasonal component and R the residual of a classical
// additive decomposition. Values near 1 indicate a dominant seasonal pattern.
func SeasonalStrength(series *timeseries.Series, period int) float64 {
	if period <= 1 || series.Len() < 2*period {
		return 0
	}

	decomp := Decompose(series, period, "additive")
	if decomp == nil {
		return 0
	}

	// Variance of residuals
	varR := nanVariance(decomp.Residual.Values)

	// Variance of seasonal + residual
	seasonalPlusResid := make([]float64, len(decomp.Seasonal.Values))
	for i := range seasonalPlusResid {
		if !math.IsNaN(decomp.Seasonal.Values[i]) && !math.IsNaN(decomp.Residual.Values[i]) {
			seasonalPlusResid[i] = decomp.Seasonal.Values[i] + decomp.Residual.Values[i]
		}
	}
	varSR := nanVariance(seasonalPlusResid)

	if varSR == 0 {
		return 0
	}

	strength := 1 - varR/varSR
	if strength < 0 {
		strength = 0
	}

	return strength
}

// nanVariance calculates the sample variance of a slice, ignoring NaN values.
func nanVariance(data []float64) float64 {
	valid := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}

	n := len(valid)
	if n < 2 {
		return 0
	}

	sum := 0.0
	for _, v := range valid {
		sum += v
	}
	mean := sum / float64(n)

	sumSq := 0.0
	for _, v := range valid {
		diff := v - mean
		sumSq += diff * diff
	}

	return sumSq / float64(n-1)
}

// AICc calculates the corrected Akaike Information Criterion.
// AICc = AIC + 2(k)(k+1)/(n-k-1) where k is number of parameters.
// This corrects for small sample sizes.
func AICc(aic float64, nObs int, nParams int) float64 {
	k := float64(nParams)
	n := float64(nObs)

	if n-k-1 <= 0 {
		return math.Inf(1)
	}

	correction := 2 * k * (k + 1) / (n - k - 1)
	return aic + correction
}

// InformationCriteria holds AIC, AICc, and BIC for a fitted model.
type InformationCriteria struct {
	AIC    float64
	AICc   float64
	BIC    float64
	LogLik float64
}

// CalculateIC calculates all information criteria.
// logLik is the log-likelihood, nObs is the number of observations,
// nParams is the number of estimated parameters.
func CalculateIC(logLik float64, nObs int, nParams int) *InformationCriteria {
	k := float64(nParams)
	n := float64(nObs)

	aic := -2*logLik + 2*k
	bic := -2*logLik + k*math.Log(n)

	var aicc float64
	if n-k-1 > 0 {
		aicc = aic + 2*k*(k+1)/(n-k-1)
	} else {
		aicc = math.Inf(1)
	}

	return &InformationCriteria{
		AIC:    aic,
		AICc:   aicc,
		BIC:    bic,
		LogLik: logLik,
	}
}
