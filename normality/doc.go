// Package normality implements Gaussianity tests for stationary time series.
//
// Classical moment tests such as Jarque-Bera assume independent
// observations; applied to autocorrelated data they reject far too often.
// The tests here account for serial dependence:
//
//   - Lobato-Velasco: a studentized skewness-kurtosis statistic whose
//     variance is estimated from the sample autocovariances, chi-squared
//     with 2 degrees of freedom under the null.
//   - Jarque-Bera: the classical iid moment test, provided for comparison
//     and for series known to be white noise.
//   - Psaradakis-Vavra: an Anderson-Darling distance whose reference
//     distribution is approximated by an AR sieve bootstrap.
//
// # Basic Usage
//
// Run a single test or the whole battery:
//
//	series := timeseries.New(values)
//	result, err := normality.Lobato(series, 0) // 0 = default bandwidth
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result)
//	if result.Reject(0.05) {
//	    fmt.Println("not Gaussian at the 5% level")
//	}
//
//	results, err := normality.RunAll(series)
//
// # Warnings
//
// Every runner first checks the series for unit roots and, when the series
// carries a frequency > 1, for seasonal instability. Findings are attached
// to the result as warnings and never abort the test:
//
//	for _, w := range result.Warnings {
//	    fmt.Println("note:", w)
//	}
//
// # Errors
//
// Fatal conditions are sentinel errors: ErrInvalidInput (nil or too-short
// series, non-finite entries, unknown method), ErrMissingValue (NaN
// entries), and ErrNumericDomain (degenerate input such as a constant
// series, for which the statistic is undefined). Fatal errors abort before
// or at computation with no partial result.
//
// # Raw statistics
//
// LobatoStatistic, JarqueBeraStatistic and ADStatistic expose the bare
// statistic computations for callers composing their own procedures.
package normality
