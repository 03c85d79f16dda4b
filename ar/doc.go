// Package ar implements autoregressive models fitted by Yule-Walker.
//
// An AR(p) model explains each observation as a linear combination of its
// p predecessors plus white noise. The package fits models by solving the
// Yule-Walker equations with the Levinson-Durbin recursion, selects orders
// by information criteria, and simulates AR processes for experiments.
//
// # Fitting
//
// Fit a model of a known order, or let Select choose one:
//
//	model, err := ar.Fit(series, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("phi: %v, AIC: %.2f\n", model.Phi, model.AIC)
//
//	// Automatic order selection by AIC up to floor(10*log10(n))
//	best, err := ar.Select(series, nil)
//
// # Residual Analysis
//
// Residuals returns the one-step-ahead residuals; Summary bundles the
// coefficients with a Ljung-Box whiteness check:
//
//	summary := model.Summary()
//	fmt.Printf("Ljung-Box p = %.3f\n", summary.LjungBox.PValue)
//
// # Simulation
//
// Seeded simulators generate reproducible test fixtures:
//
//	// Stationary AR(1)
//	s := ar.Simulate([]float64{0.5}, 1.0, 500, 42)
//
//	// Random walk
//	rw := ar.Simulate([]float64{1}, 1.0, 500, 42)
//
//	// Monthly seasonal process (frequency recorded on the series)
//	m := ar.SimulateSeasonal([]float64{0.3}, []float64{0.8}, 12, 1.0, 240, 42)
package ar
