package ar

import (
	"math/rand"

	"github.com/sartorproj/gonorts/timeseries"
)

// burnIn is the number of leading observations discarded by the simulators
// so the reported sample starts near the stationary distribution.
const burnIn = 100

// Simulate generates n observations from an AR process with the given
// coefficients and Gaussian innovations of standard deviation sigma.
// The generator is seeded, so runs are reproducible. phi = [1] produces
// a random walk.
func Simulate(phi []float64, sigma float64, n int, seed int64) *timeseries.Series {
	if n <= 0 {
		return timeseries.New(nil)
	}

	rng := rand.New(rand.NewSource(seed))
	p := len(phi)
	total := n + burnIn

	y := make([]float64, total)
	for t := 0; t < total; t++ {
		v := rng.NormFloat64() * sigma
		for i := 0; i < p && t-i-1 >= 0; i++ {
			v += phi[i] * y[t-i-1]
		}
		y[t] = v
	}

	out := make([]float64, n)
	copy(out, y[burnIn:])
	return timeseries.New(out)
}

// SimulateWith generates n observations from an AR process whose
// innovations are drawn by the supplied function. Used to produce skewed
// or heavy-tailed driving noise.
func SimulateWith(phi []float64, n int, seed int64, innov func(*rand.Rand) float64) *timeseries.Series {
	if n <= 0 || innov == nil {
		return timeseries.New(nil)
	}

	rng := rand.New(rand.NewSource(seed))
	p := len(phi)
	total := n + burnIn

	y := make([]float64, total)
	for t := 0; t < total; t++ {
		v := innov(rng)
		for i := 0; i < p && t-i-1 >= 0; i++ {
			v += phi[i] * y[t-i-1]
		}
		y[t] = v
	}

	out := make([]float64, n)
	copy(out, y[burnIn:])
	return timeseries.New(out)
}

// SimulateSeasonal generates n observations from a multiplicative seasonal
// AR process with the given non-seasonal and seasonal coefficients:
//
//	(1 - phi(B)) (1 - seasonalPhi(B^period)) y_t = e_t
//
// The returned series carries the seasonal period as its frequency.
// seasonalPhi = [1] produces a seasonal random walk.
func SimulateSeasonal(phi, seasonalPhi []float64, period int, sigma float64, n int, seed int64) *timeseries.Series {
	if period <= 1 {
		return Simulate(phi, sigma, n, seed)
	}
	if n <= 0 {
		return timeseries.NewWithFrequency(nil, period)
	}

	rng := rand.New(rand.NewSource(seed))
	p := len(phi)
	sp := len(seasonalPhi)
	total := n + burnIn + sp*period

	y := make([]float64, total)
	for t := 0; t < total; t++ {
		v := rng.NormFloat64() * sigma

		// Non-seasonal polynomial
		for i := 0; i < p && t-i-1 >= 0; i++ {
			v += phi[i] * y[t-i-1]
		}

		// Seasonal polynomial
		for j := 0; j < sp && t-(j+1)*period >= 0; j++ {
			v += seasonalPhi[j] * y[t-(j+1)*period]
		}

		// Cross terms from expanding the product of the two polynomials
		for i := 0; i < p; i++ {
			for j := 0; j < sp; j++ {
				lag := (i + 1) + (j+1)*period
				if t-lag >= 0 {
					v -= phi[i] * seasonalPhi[j] * y[t-lag]
				}
			}
		}

		y[t] = v
	}

	out := make([]float64, n)
	copy(out, y[total-n:])
	return timeseries.NewWithFrequency(out, period)
}
