// Package stats provides statistical analysis functions for time series.
//
// This package includes autocovariance and autocorrelation functions,
// portmanteau whiteness tests, seasonal decomposition, differencing
// heuristics, information criteria, and descriptive summaries.
//
// # Autocorrelation Functions
//
// Analyze dependence structure:
//
//	// Sample autocovariance (biased, denominator n); index 0 is the variance
//	acov := stats.Autocovariance(series, 20)
//
//	// Autocorrelation Function
//	acf := stats.ACF(series, 20)
//
//	// Partial Autocorrelation Function
//	pacf := stats.PACF(series, 20)
//
//	// ACF with confidence bounds
//	acfResult := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(acfResult.Values, acfResult.ConfBounds)
//
// # Whiteness Tests
//
// Test a series or model residuals for autocorrelation:
//
//	// Ljung-Box test
//	lb := stats.LjungBox(residuals, 10, fitdf)
//	if lb.PValue > 0.05 {
//	    // Residuals are white noise (good)
//	}
//
//	// Box-Pierce test
//	bp := stats.BoxPierce(residuals, 10, fitdf)
//
//	// Durbin-Watson statistic
//	dw := stats.DurbinWatson(residuals.Values)
//
// # Time Series Decomposition
//
// Decompose time series into components:
//
//	// Classical decomposition
//	decomp := stats.Decompose(series, 12, "additive")
//	// decomp.Trend, decomp.Seasonal, decomp.Residual
//
//	// STL decomposition (more robust)
//	stl := stats.STL(series, 12, 2)
//
//	// Seasonal strength in [0, 1]
//	fs := stats.SeasonalStrength(series, 12)
//
// # Seasonal Differencing
//
// Determine the seasonal differencing order:
//
//	sd := stats.NSDiffs(series, 12, 1) // period=12 for monthly data
//
// (First-difference selection lives in the uroot package, next to the
// unit-root tests that drive it.)
//
// # Descriptive Summary
//
// Summarize a series:
//
//	summary, err := stats.Describe(series)
//	// summary.Mean, summary.StdDev, summary.Skewness, summary.Kurtosis, ...
package stats
