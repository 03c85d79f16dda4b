package ar

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gonorts/stats"
	"github.com/sartorproj/gonorts/timeseries"
)

// Model represents a fitted AR(p) model.
type Model struct {
	Order    int
	Phi      []float64 // AR coefficients
	Mean     float64
	Variance float64 // Innovation variance
	AIC      float64
	AICc     float64 // Corrected AIC for small sample sizes
	BIC      float64
	LogLik   float64

	data       *timeseries.Series
	residuals  []float64
	fittedVals []float64
}

// Fit estimates an AR(p) model by solving the Yule-Walker equations with
// the Levinson-Durbin recursion on the sample autocorrelations.
func Fit(series *timeseries.Series, order int) (*Model, error) {
	if series == nil {
		return nil, errors.New("series is nil")
	}
	if order < 0 {
		return nil, errors.New("order must be non-negative")
	}
	if series.Len() < order+10 {
		return nil, errors.New("insufficient data points for the specified order")
	}

	y := series.Values
	n := len(y)

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)

	m := &Model{
		Order: order,
		Mean:  mean,
		data:  series,
	}

	if order > 0 {
		acf := stats.ACF(series, order)
		if acf == nil {
			return nil, errors.New("could not compute autocorrelations")
		}
		m.Phi = yuleWalker(acf, order)
		if m.Phi == nil {
			return nil, fmt.Errorf("yule-walker failed for order %d", order)
		}
	} else {
		m.Phi = []float64{}
	}

	// One-step-ahead residuals. The first p observations have no full
	// history, so the fitted value there is just the mean.
	m.residuals = make([]float64, n)
	m.fittedVals = make([]float64, n)
	for t := 0; t < n; t++ {
		pred := mean
		if t >= order {
			for i := 0; i < order; i++ {
				pred += m.Phi[i] * (y[t-i-1] - mean)
			}
		}
		m.fittedVals[t] = pred
		m.residuals[t] = y[t] - pred
	}

	// Innovation variance from the conditional residuals.
	sse := 0.0
	count := 0
	for t := order; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}
	k := order + 1 // AR coefficients plus the mean
	if count > k {
		m.Variance = sse / float64(count-k)
	} else if count > 0 {
		m.Variance = sse / float64(count)
	}

	// Gaussian log-likelihood and information criteria.
	if m.Variance > 0 {
		m.LogLik = -float64(n)/2*math.Log(2*math.Pi) -
			float64(n)/2*math.Log(m.Variance) - sse/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}
	ic := stats.CalculateIC(m.LogLik, n, k)
	m.AIC = ic.AIC
	m.AICc = ic.AICc
	m.BIC = ic.BIC

	return m, nil
}

// Config holds configuration for automatic order selection.
type Config struct {
	MaxOrder  int    // Maximum AR order to consider (default: floor(10*log10(n)))
	Criterion string // Information criterion: "aic", "aicc", or "bic" (default: "aic")
}

// DefaultConfig returns the default order selection configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxOrder:  0, // 0 selects floor(10*log10(n))
		Criterion: "aic",
	}
}

// Select fits AR models of order 0 through MaxOrder and returns the one
// minimizing the chosen information criterion.
func Select(series *timeseries.Series, config *Config) (*Model, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if series == nil || series.Len() < 10 {
		return nil, errors.New("insufficient data points for order selection")
	}

	n := series.Len()
	maxOrder := config.MaxOrder
	if maxOrder <= 0 {
		maxOrder = int(math.Floor(10 * math.Log10(float64(n))))
	}
	if maxOrder > n-10 {
		maxOrder = n - 10
	}

	getCriterion := func(m *Model) float64 {
		switch config.Criterion {
		case "bic":
			return m.BIC
		case "aicc":
			return m.AICc
		default:
			return m.AIC
		}
	}

	var best *Model
	bestCriterion := math.Inf(1)

	for p := 0; p <= maxOrder; p++ {
		model, err := Fit(series, p)
		if err != nil {
			continue
		}
		if c := getCriterion(model); c < bestCriterion {
			bestCriterion = c
			best = model
		}
	}

	if best == nil {
		return nil, errors.New("no model could be fitted")
	}
	return best, nil
}

// Residuals returns the one-step-ahead residuals.
func (m *Model) Residuals() []float64 {
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// FittedValues returns the fitted values.
func (m *Model) FittedValues() []float64 {
	result := make([]float64, len(m.fittedVals))
	copy(result, m.fittedVals)
	return result
}

// Summary describes a fitted model.
type Summary struct {
	Order    int
	Phi      []float64
	Mean     float64
	Variance float64
	AIC      float64
	AICc     float64
	BIC      float64
	LogLik   float64
	NObs     int
	LjungBox *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model, including a Ljung-Box
// whiteness check on the residuals.
func (m *Model) Summary() *Summary {
	residSeries := timeseries.New(m.residuals)
	lb := stats.LjungBox(residSeries, 10, m.Order)

	return &Summary{
		Order:    m.Order,
		Phi:      m.Phi,
		Mean:     m.Mean,
		Variance: m.Variance,
		AIC:      m.AIC,
		AICc:     m.AICc,
		BIC:      m.BIC,
		LogLik:   m.LogLik,
		NObs:     m.data.Len(),
		LjungBox: lb,
	}
}

// yuleWalker solves the Yule-Walker equations with the Levinson-Durbin
// recursion, returning the AR coefficients for the given order.
func yuleWalker(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)
	phi[0] = acf[1]
	if order == 1 {
		return phi
	}

	v := 1 - phi[0]*phi[0]

	for i := 1; i < order; i++ {
		lambda := acf[i+1]
		for j := 0; j < i; j++ {
			lambda -= phi[j] * acf[i-j]
		}
		lambda /= v

		newPhi := make([]float64, i+1)
		for j := 0; j < i; j++ {
			newPhi[j] = phi[j] - lambda*phi[i-1-j]
		}
		newPhi[i] = lambda
		copy(phi, newPhi)

		v *= 1 - lambda*lambda
		if v <= 0 {
			break
		}
	}

	return phi
}
