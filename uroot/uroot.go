package uroot

import (
	"github.com/sartorproj/gonorts/stats"
	"github.com/sartorproj/gonorts/timeseries"
)

// Report combines the ADF and KPSS verdicts on a series.
type Report struct {
	ADF        *ADFResult
	KPSS       *KPSSResult
	Stationary bool
}

// Test runs ADF and KPSS with default settings and combines their verdicts.
// Stationary is false only when both tests agree on non-stationarity (ADF
// fails to reject its unit-root null and KPSS rejects its stationarity
// null); requiring agreement keeps the false-alarm rate on genuinely
// stationary input well below either test's nominal level. Returns nil for
// series too short to test.
func Test(series *timeseries.Series) *Report {
	adf := ADF(series, 0)
	kpss := KPSS(series, "c", 0)
	if adf == nil || kpss == nil {
		return nil
	}

	return &Report{
		ADF:        adf,
		KPSS:       kpss,
		Stationary: adf.IsStationary || kpss.IsStationary,
	}
}

// SeasonalReport describes seasonal instability of a series.
type SeasonalReport struct {
	Period   int
	Strength float64 // seasonal strength F_S in [0, 1]
	SDiffs   int     // recommended number of seasonal differences
	Seasonal bool    // true when the seasonal pattern is strong enough to need differencing
}

// Seasonal checks a series for seasonal instability using its declared
// frequency. Returns nil when the series has no seasonal frequency or fewer
// than two full cycles.
func Seasonal(series *timeseries.Series) *SeasonalReport {
	period := series.Frequency
	if period <= 1 || series.Len() < 2*period {
		return nil
	}

	strength := stats.SeasonalStrength(series, period)
	sdiffs := stats.NSDiffs(series, period, 0)

	return &SeasonalReport{
		Period:   period,
		Strength: strength,
		SDiffs:   sdiffs,
		Seasonal: sdiffs > 0,
	}
}

// NDiffs determines the number of first differences required for stationarity.
// Uses the KPSS test by default. Returns 0, 1, or 2.
// maxD is the maximum number of differences to consider (default 2).
// testType can be "kpss" (default) or "adf".
func NDiffs(series *timeseries.Series, maxD int, testType string) int {
	if maxD <= 0 {
		maxD = 2
	}
	if testType == "" {
		testType = "kpss"
	}

	current := series
	for d := 0; d < maxD; d++ {
		isStationary := false

		if testType == "adf" {
			result := ADF(current, 0)
			if result != nil && result.IsStationary {
				isStationary = true
			}
		} else {
			// KPSS test (default)
			result := KPSS(current, "c", 0)
			if result != nil && result.IsStationary {
				isStationary = true
			}
		}

		if isStationary {
			return d
		}

		// Apply differencing
		current = current.Diff()
		if current.Len() < 10 {
			return d
		}
	}

	return maxD
}
