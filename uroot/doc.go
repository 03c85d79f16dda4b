// Package uroot provides unit-root tests and stationarity diagnostics.
//
// The Gaussianity tests in this module assume a stationary input series;
// this package supplies the checks that back their advisory warnings, and
// the differencing heuristics used to prepare a series that fails them.
//
// # Unit-Root Tests
//
//	// Augmented Dickey-Fuller test
//	// H0: series has a unit root (non-stationary)
//	adf := uroot.ADF(series, 0)
//	fmt.Printf("ADF: stat=%.4f, p=%.4f, stationary=%v\n",
//	    adf.Statistic, adf.PValue, adf.IsStationary)
//
//	// KPSS test
//	// H0: series is stationary
//	kpss := uroot.KPSS(series, "c", 0)
//
//	// Phillips-Perron test
//	pp := uroot.PhillipsPerron(series, 0)
//
// # Combined Report
//
// Test runs ADF and KPSS together and flags non-stationarity only when both
// agree, which keeps advisory noise low on genuinely stationary series:
//
//	report := uroot.Test(series)
//	if report != nil && !report.Stationary {
//	    // unit root suspected
//	}
//
// # Seasonal Instability
//
// For series with a declared frequency > 1:
//
//	seasonal := uroot.Seasonal(series)
//	if seasonal != nil && seasonal.Seasonal {
//	    // strong seasonal pattern; seasonal differencing suggested
//	}
//
// # Differencing
//
//	d := uroot.NDiffs(series, 2, "kpss") // first differences to stationarity
package uroot
