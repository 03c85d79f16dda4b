package normality

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sartorproj/gonorts/ar"
	"github.com/sartorproj/gonorts/timeseries"
)

func TestTestDispatch(t *testing.T) {
	series := ar.Simulate([]float64{0.3}, 1.0, 120, 17)

	tests := []struct {
		method   string
		expected string
	}{
		{"", "Lobato and Velasco's test"},
		{"lobato", "Lobato and Velasco's test"},
		{"jb", "Jarque-Bera test"},
		{"jarque-bera", "Jarque-Bera test"},
		{"JB", "Jarque-Bera test"},
		{"vavra", "Psaradakis-Vavra test"},
	}

	for _, tt := range tests {
		result, err := Test(series, tt.method)
		if err != nil {
			t.Fatalf("Test(%q) failed: %v", tt.method, err)
		}
		if result.Method != tt.expected {
			t.Errorf("Test(%q) ran %q, expected %q", tt.method, result.Method, tt.expected)
		}
	}
}

func TestTestUnknownMethod(t *testing.T) {
	series := ar.Simulate([]float64{0.3}, 1.0, 50, 17)

	_, err := Test(series, "shapiro")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for unknown method, got %v", err)
	}
}

func TestRunAll(t *testing.T) {
	series := ar.Simulate([]float64{0.4}, 1.0, 150, 23)
	series.Name = "ar1"

	results, err := RunAll(series)
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	expectedOrder := []string{
		"Lobato and Velasco's test",
		"Jarque-Bera test",
		"Psaradakis-Vavra test",
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("Result %d is nil", i)
		}
		if r.Method != expectedOrder[i] {
			t.Errorf("Result %d is %q, expected %q", i, r.Method, expectedOrder[i])
		}
		if r.PValue < 0 || r.PValue > 1 {
			t.Errorf("%s p-value out of range: %f", r.Method, r.PValue)
		}
		if math.IsNaN(r.Statistic) {
			t.Errorf("%s statistic is NaN", r.Method)
		}
		if r.DataName != "ar1" {
			t.Errorf("%s data name %q, expected \"ar1\"", r.Method, r.DataName)
		}

		t.Logf("%s: stat=%.4f, p=%.4f", r.Method, r.Statistic, r.PValue)
	}
}

func TestRunAllInvalidInput(t *testing.T) {
	if _, err := RunAll(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil series, got %v", err)
	}

	values := []float64{1, 2, math.NaN(), 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if _, err := RunAll(timeseries.New(values)); !errors.Is(err, ErrMissingValue) {
		t.Errorf("Expected ErrMissingValue, got %v", err)
	}
}

func TestResultString(t *testing.T) {
	r := &Result{
		Statistic:   3.21,
		DF:          2,
		PValue:      0.2,
		Method:      "Lobato and Velasco's test",
		DataName:    "demo",
		Alternative: "demo is not Gaussian",
		Warnings:    []string{warnNonStationary},
	}

	s := r.String()
	for _, want := range []string{"Lobato", "demo", "p-value", "warning"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	// Bootstrap results omit the degrees of freedom
	r2 := &Result{Statistic: 1.0, DF: 0, PValue: 0.5, Method: "Psaradakis-Vavra test"}
	if strings.Contains(r2.String(), "df =") {
		t.Errorf("DF=0 result should not print df:\n%s", r2.String())
	}
}

func TestReject(t *testing.T) {
	r := &Result{PValue: 0.03}
	if !r.Reject(0.05) {
		t.Error("p=0.03 should reject at 5%")
	}
	if r.Reject(0.01) {
		t.Error("p=0.03 should not reject at 1%")
	}
}
