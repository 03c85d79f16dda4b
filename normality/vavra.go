package normality

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gonorts/ar"
	"github.com/sartorproj/gonorts/stats"
	"github.com/sartorproj/gonorts/timeseries"
)

// VavraConfig controls the sieve bootstrap behind the Psaradakis-Vavra test.
type VavraConfig struct {
	Reps     int   // Bootstrap replicates (default: 500)
	MaxOrder int   // Maximum sieve AR order (default: floor(10*log10(n)))
	BurnIn   int   // Leading observations discarded per replicate (default: 100)
	Seed     int64 // Base RNG seed; replicate b uses seed+b (default: 1)
	Workers  int   // Concurrent replicate workers (default: runtime.NumCPU())
}

// DefaultVavraConfig returns the default bootstrap configuration.
func DefaultVavraConfig() *VavraConfig {
	return &VavraConfig{
		Reps:    500,
		BurnIn:  100,
		Seed:    1,
		Workers: runtime.NumCPU(),
	}
}

// ADStatistic computes the Anderson-Darling distance of the sample from the
// standard normal after standardizing by the sample mean and sample (n-1)
// standard deviation. Probabilities are clamped away from 0 and 1 before
// taking logs.
func ADStatistic(values []float64) (float64, error) {
	n := len(values)
	if n < 2 {
		return 0, fmt.Errorf("%w: need at least 2 observations, have %d", ErrInvalidInput, n)
	}

	mean, mu2, _, _ := stats.CentralMoments(values)
	sd := math.Sqrt(mu2 * float64(n) / float64(n-1))
	if sd == 0 {
		return 0, fmt.Errorf("%w: zero variance", ErrNumericDomain)
	}

	z := make([]float64, n)
	for i, v := range values {
		z[i] = (v - mean) / sd
	}
	sort.Float64s(z)

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	const eps = 1e-15

	sum := 0.0
	for i := 0; i < n; i++ {
		cdf := norm.CDF(z[i])
		srv := norm.Survival(z[n-1-i])
		if cdf < eps {
			cdf = eps
		}
		if srv < eps {
			srv = eps
		}
		sum += float64(2*i+1) * (math.Log(cdf) + math.Log(srv))
	}

	return -float64(n) - sum/float64(n), nil
}

// Vavra runs the Psaradakis-Vavra test for Gaussianity of a stationary
// series: the Anderson-Darling distance of the data from normality, with
// its reference distribution approximated by a sieve bootstrap. An AR
// approximation is fitted by order selection, its centered residuals are
// resampled with replacement, and each replicate series is regenerated
// through the AR recursion.
//
// Replicate b draws from its own generator seeded with cfg.Seed+b, so the
// result is reproducible and independent of worker scheduling. The p-value
// uses the add-one convention p = (1 + #{A2_b >= A2}) / (1 + B) and is
// therefore never exactly zero. DF is 0: the reference distribution is
// empirical, not chi-squared.
func Vavra(y *timeseries.Series, cfg *VavraConfig) (*Result, error) {
	if err := validateSeries(y); err != nil {
		return nil, err
	}
	if y.Len() < 10 {
		return nil, fmt.Errorf("%w: need at least 10 observations for the sieve bootstrap", ErrInvalidInput)
	}
	if cfg == nil {
		cfg = DefaultVavraConfig()
	}

	reps := cfg.Reps
	if reps <= 0 {
		reps = 500
	}
	burnIn := cfg.BurnIn
	if burnIn <= 0 {
		burnIn = 100
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	warnings := advisories(y)

	observed, err := ADStatistic(y.Values)
	if err != nil {
		return nil, err
	}

	n := y.Len()
	maxOrder := cfg.MaxOrder
	if maxOrder <= 0 {
		maxOrder = int(math.Floor(10 * math.Log10(float64(n))))
	}

	model, err := ar.Select(y, &ar.Config{MaxOrder: maxOrder, Criterion: "aic"})
	if err != nil {
		return nil, fmt.Errorf("%w: sieve fit: %v", ErrNumericDomain, err)
	}

	// Centered one-step residuals drive the bootstrap innovations. The
	// first Order entries have no full AR history and are dropped.
	resid := model.Residuals()[model.Order:]
	centered := make([]float64, len(resid))
	rmean := 0.0
	for _, r := range resid {
		rmean += r
	}
	rmean /= float64(len(resid))
	for i, r := range resid {
		centered[i] = r - rmean
	}

	bootStats := make([]float64, reps)
	bootErrs := make([]error, reps)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for b := 0; b < reps; b++ {
		wg.Add(1)
		go func(b int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rng := rand.New(rand.NewSource(seed + int64(b)))
			replicate := sieveReplicate(rng, model.Phi, centered, n, burnIn)
			a2, err := ADStatistic(replicate)
			if err != nil {
				bootErrs[b] = err
				return
			}
			bootStats[b] = a2
		}(b)
	}
	wg.Wait()

	for _, err := range bootErrs {
		if err != nil {
			return nil, fmt.Errorf("bootstrap replicate: %w", err)
		}
	}

	count := 0
	for _, a2 := range bootStats {
		if a2 >= observed {
			count++
		}
	}
	p := float64(1+count) / float64(1+reps)

	name := dataName(y)
	return &Result{
		Statistic:   observed,
		DF:          0,
		PValue:      p,
		Method:      "Psaradakis-Vavra test",
		DataName:    name,
		Alternative: fmt.Sprintf("%s is not Gaussian", name),
		Warnings:    warnings,
	}, nil
}

// sieveReplicate regenerates a length-n series through the fitted AR
// recursion, driven by innovations resampled with replacement from the
// centered residuals. The first burnIn observations are discarded.
func sieveReplicate(rng *rand.Rand, phi []float64, innovations []float64, n, burnIn int) []float64 {
	p := len(phi)
	total := n + burnIn

	y := make([]float64, total)
	for t := 0; t < total; t++ {
		v := innovations[rng.Intn(len(innovations))]
		for i := 0; i < p && t-i-1 >= 0; i++ {
			v += phi[i] * y[t-i-1]
		}
		y[t] = v
	}

	return y[burnIn:]
}
