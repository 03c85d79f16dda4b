package ar

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sartorproj/gonorts/stats"
	"github.com/sartorproj/gonorts/timeseries"
)

func TestFitAR1(t *testing.T) {
	// Generate AR(1) data
	n := 200
	phi := 0.7
	values := make([]float64, n)
	values[0] = 100
	for i := 1; i < n; i++ {
		innovation := float64(i%7-3) / 3
		values[i] = phi*(values[i-1]-100) + 100 + innovation
	}

	series := timeseries.New(values)
	model, err := Fit(series, 1)
	if err != nil {
		t.Fatalf("Failed to fit AR(1) model: %v", err)
	}

	if model.Order != 1 {
		t.Errorf("Expected order 1, got %d", model.Order)
	}
	if len(model.Phi) != 1 {
		t.Fatalf("Expected 1 AR coefficient, got %d", len(model.Phi))
	}

	t.Logf("True AR coeff: %f, Estimated: %f", phi, model.Phi[0])

	if math.Abs(model.Phi[0]-phi) > 0.3 {
		t.Errorf("AR coefficient estimate off: true=%f, est=%f", phi, model.Phi[0])
	}

	if math.Abs(model.Mean-100) > 2 {
		t.Errorf("Mean estimate off: expected ~100, got %f", model.Mean)
	}

	residuals := model.Residuals()
	if len(residuals) != n {
		t.Errorf("Expected %d residuals, got %d", n, len(residuals))
	}

	// Fitted value plus residual reconstructs the observation
	fitted := model.FittedValues()
	if len(fitted) != n {
		t.Fatalf("Expected %d fitted values, got %d", n, len(fitted))
	}
	for i := range values {
		if math.Abs(fitted[i]+residuals[i]-values[i]) > 1e-9 {
			t.Errorf("fitted[%d]+residual[%d] = %f, expected %f",
				i, i, fitted[i]+residuals[i], values[i])
			break
		}
	}

	if model.Variance <= 0 {
		t.Errorf("Innovation variance should be positive, got %f", model.Variance)
	}
}

func TestFitWhiteNoise(t *testing.T) {
	// Order 0 is just the mean model
	n := 200
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = 100 + float64(i%7-3)/3
	}

	series := timeseries.New(values)
	model, err := Fit(series, 0)
	if err != nil {
		t.Fatalf("Failed to fit white noise: %v", err)
	}

	if len(model.Phi) != 0 {
		t.Errorf("Expected no AR coefficients, got %v", model.Phi)
	}

	actualMean := series.Mean()
	if math.Abs(model.Mean-actualMean) > 1e-10 {
		t.Errorf("Mean should equal sample mean: got %f, expected %f", model.Mean, actualMean)
	}
}

func TestFitInsufficientData(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3})

	if _, err := Fit(series, 5); err == nil {
		t.Error("Expected error for insufficient data")
	}
	if _, err := Fit(series, -1); err == nil {
		t.Error("Expected error for negative order")
	}
	if _, err := Fit(nil, 1); err == nil {
		t.Error("Expected error for nil series")
	}
}

func TestFitICOrdering(t *testing.T) {
	series := Simulate([]float64{0.6}, 1.0, 300, 11)

	model, err := Fit(series, 1)
	if err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	if model.AICc < model.AIC {
		t.Errorf("AICc should be >= AIC: AIC=%f, AICc=%f", model.AIC, model.AICc)
	}
	if math.IsNaN(model.BIC) || math.IsInf(model.BIC, 0) {
		t.Errorf("BIC should be finite, got %f", model.BIC)
	}

	t.Logf("AIC=%.2f, AICc=%.2f, BIC=%.2f, LogLik=%.2f",
		model.AIC, model.AICc, model.BIC, model.LogLik)
}

func TestSummary(t *testing.T) {
	n := 300
	series := Simulate([]float64{0.5}, 1.0, n, 3)

	model, err := Fit(series, 1)
	if err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	summary := model.Summary()
	if summary == nil {
		t.Fatal("Summary should not be nil")
	}
	if summary.NObs != n {
		t.Errorf("Expected NObs=%d, got %d", n, summary.NObs)
	}
	if summary.LjungBox == nil {
		t.Fatal("Summary should include a Ljung-Box result")
	}
	if summary.LjungBox.PValue < 0 || summary.LjungBox.PValue > 1 {
		t.Errorf("Ljung-Box p-value out of range: %f", summary.LjungBox.PValue)
	}

	t.Logf("Summary - AIC: %f, BIC: %f, Ljung-Box p: %f",
		summary.AIC, summary.BIC, summary.LjungBox.PValue)
}

func TestSelect(t *testing.T) {
	// AR(2) process: order selection should find some AR structure
	series := Simulate([]float64{0.6, -0.2}, 1.0, 400, 7)

	model, err := Select(series, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if model.Order < 1 {
		t.Errorf("Expected AR structure to be detected, got order %d", model.Order)
	}

	t.Logf("Selected order %d with AIC %.2f, phi=%v", model.Order, model.AIC, model.Phi)

	// BIC penalizes harder, so never selects a larger order than AIC
	bicModel, err := Select(series, &Config{Criterion: "bic"})
	if err != nil {
		t.Fatalf("Select with BIC failed: %v", err)
	}
	if bicModel.Order > model.Order {
		t.Errorf("BIC order %d exceeds AIC order %d", bicModel.Order, model.Order)
	}

	// Too-short series
	if _, err := Select(timeseries.New([]float64{1, 2, 3}), nil); err == nil {
		t.Error("Expected error for insufficient data")
	}
}

func TestYuleWalker(t *testing.T) {
	// ACF of an AR(1) process with phi=0.6
	acf := []float64{1.0, 0.6, 0.36, 0.216, 0.13}

	coeffs := yuleWalker(acf, 2)
	if coeffs == nil {
		t.Fatal("yuleWalker returned nil")
	}

	if len(coeffs) != 2 {
		t.Errorf("Expected 2 coefficients, got %d", len(coeffs))
	}

	t.Logf("Yule-Walker coefficients: %v", coeffs)

	for i, c := range coeffs {
		if c != c { // NaN check
			t.Errorf("Coefficient %d is NaN", i)
		}
	}

	// For a geometric ACF the order-1 solution is phi itself
	ar1 := yuleWalker(acf, 1)
	if math.Abs(ar1[0]-0.6) > 1e-10 {
		t.Errorf("Expected phi=0.6, got %f", ar1[0])
	}
}

func TestSimulate(t *testing.T) {
	n := 500

	s1 := Simulate([]float64{0.5}, 1.0, n, 42)
	if s1.Len() != n {
		t.Fatalf("Expected %d observations, got %d", n, s1.Len())
	}

	// Same seed reproduces the path, different seed does not
	s2 := Simulate([]float64{0.5}, 1.0, n, 42)
	for i := range s1.Values {
		if s1.Values[i] != s2.Values[i] {
			t.Fatalf("Same seed should reproduce values, differ at %d", i)
		}
	}

	s3 := Simulate([]float64{0.5}, 1.0, n, 43)
	same := true
	for i := range s1.Values {
		if s1.Values[i] != s3.Values[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds should produce different paths")
	}

	// Stationary AR(1) around zero
	if math.Abs(s1.Mean()) > 0.5 {
		t.Errorf("Stationary simulation should center near 0, mean=%f", s1.Mean())
	}

	// Random walk wanders much further than the stationary process
	rw := Simulate([]float64{1}, 1.0, n, 42)
	t.Logf("AR(0.5) std: %.2f, random walk std: %.2f", s1.Std(), rw.Std())
	if rw.Std() < s1.Std() {
		t.Errorf("Random walk should have larger spread: %.2f vs %.2f", rw.Std(), s1.Std())
	}
}

func TestSimulateWith(t *testing.T) {
	// Constant innovations of 1 through an AR(0.5) filter converge to 2
	s := SimulateWith([]float64{0.5}, 50, 1, func(*rand.Rand) float64 { return 1 })

	for i, v := range s.Values {
		if math.Abs(v-2.0) > 1e-6 {
			t.Fatalf("Expected convergence to 2 after burn-in, got %f at %d", v, i)
		}
	}

	if s := SimulateWith(nil, 10, 1, nil); s.Len() != 0 {
		t.Error("Expected empty series for nil innovation function")
	}
}

func TestSimulateSeasonal(t *testing.T) {
	n := 240
	period := 12

	s := SimulateSeasonal([]float64{0.3}, []float64{0.8}, period, 1.0, n, 42)
	if s.Len() != n {
		t.Fatalf("Expected %d observations, got %d", n, s.Len())
	}
	if s.Frequency != period {
		t.Errorf("Expected frequency %d, got %d", period, s.Frequency)
	}

	// Strong positive autocorrelation at the seasonal lag
	acf := stats.ACF(s, period)
	if acf == nil {
		t.Fatal("ACF returned nil")
	}
	t.Logf("Seasonal ACF at lag %d: %.3f", period, acf[period])
	if acf[period] < 0.2 {
		t.Errorf("Expected seasonal autocorrelation at lag %d, got %f", period, acf[period])
	}

	// Reproducible
	s2 := SimulateSeasonal([]float64{0.3}, []float64{0.8}, period, 1.0, n, 42)
	for i := range s.Values {
		if s.Values[i] != s2.Values[i] {
			t.Fatalf("Same seed should reproduce values, differ at %d", i)
		}
	}

	// Period 1 falls back to the plain simulator
	flat := SimulateSeasonal([]float64{0.5}, []float64{0.8}, 1, 1.0, n, 42)
	if flat.Frequency != 1 {
		t.Errorf("Expected frequency 1 for non-seasonal fallback, got %d", flat.Frequency)
	}
}
