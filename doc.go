// Package gonorts provides Gaussianity tests for stationary time series.
//
// GoNorTS is a Go package for testing whether a stationary stochastic process
// is Gaussian. Classical normality tests assume independent observations and
// over-reject on dependent data; the tests here account for serial dependence,
// following the methodology of Lobato and Velasco (2004) and Psaradakis and
// Vavra (2017).
//
// # Features
//
//   - Lobato-Velasco test: studentized skewness and kurtosis with
//     autocorrelation-robust variance estimates
//   - Jarque-Bera test for the independent-observations baseline
//   - Psaradakis-Vavra test: Anderson-Darling statistic with a sieve
//     bootstrap null distribution
//   - Stationarity diagnostics (ADF, KPSS, Phillips-Perron) surfaced as
//     advisory warnings on every test result
//   - Seasonal instability diagnostics for series with a declared frequency
//   - Autocorrelation analysis (ACF, PACF, Ljung-Box, Box-Pierce)
//   - AR model fitting, order selection, and seeded simulation
//
// # Quick Start
//
// Run the default test on a series:
//
//	series := timeseries.New(values)
//	result, err := normality.Lobato(series, 0)
//	if err != nil {
//		// invalid input or degenerate data
//	}
//	fmt.Println(result)
//	if result.Reject(0.05) {
//		// the Gaussian null is rejected
//	}
//
// Run the whole battery concurrently:
//
//	results, _ := normality.RunAll(series)
//	for _, r := range results {
//		fmt.Printf("%s: p=%.4f\n", r.Method, r.PValue)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - normality: the Gaussianity tests and their shared result type
//   - uroot: stationarity and seasonal-instability diagnostics
//   - ar: autoregressive fitting, order selection, and simulation
//   - stats: autocorrelation, descriptive, and decomposition utilities
//   - timeseries: time series data structures and CSV I/O
//
// # References
//
//   - Lobato, I.N., & Velasco, C. (2004). A Simple Test of Normality for
//     Time Series. Econometric Theory, 20(4), 671-689
//   - Psaradakis, Z., & Vavra, M. (2017). A Distance Test of Normality for a
//     Wide Class of Stationary Processes. Econometrics and Statistics, 2, 50-60
//   - Kwiatkowski, D., Phillips, P.C.B., Schmidt, P., & Shin, Y. (1992).
//     Testing the Null Hypothesis of Stationarity Against the Alternative of
//     a Unit Root. Journal of Econometrics, 54, 159-178
package gonorts
