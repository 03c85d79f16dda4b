package stats

import (
	"errors"
	"math"

	mstats "github.com/montanaflynn/stats"

	"github.com/sartorproj/gonorts/timeseries"
)

// Summary holds descriptive statistics for a series.
type Summary struct {
	N        int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
	Median   float64
	Q1       float64
	Q3       float64
	Skewness float64 // moment skewness mu3 / mu2^(3/2)
	Kurtosis float64 // moment kurtosis mu4 / mu2^2 (3 for a normal)
}

// Describe computes a descriptive summary of the series.
func Describe(series *timeseries.Series) (*Summary, error) {
	if series == nil || series.Len() == 0 {
		return nil, errors.New("cannot describe an empty series")
	}

	data := series.Values

	mean, err := mstats.Mean(data)
	if err != nil {
		return nil, err
	}
	stdDev, err := mstats.StandardDeviationSample(data)
	if err != nil {
		return nil, err
	}
	min, err := mstats.Min(data)
	if err != nil {
		return nil, err
	}
	max, err := mstats.Max(data)
	if err != nil {
		return nil, err
	}
	median, err := mstats.Median(data)
	if err != nil {
		return nil, err
	}
	q1, err := mstats.Percentile(data, 25)
	if err != nil {
		q1 = median
	}
	q3, err := mstats.Percentile(data, 75)
	if err != nil {
		q3 = median
	}

	_, m2, m3, m4 := CentralMoments(data)
	skew := 0.0
	kurt := 0.0
	if m2 > 0 {
		skew = m3 / math.Pow(m2, 1.5)
		kurt = m4 / (m2 * m2)
	}

	return &Summary{
		N:        series.Len(),
		Mean:     mean,
		StdDev:   stdDev,
		Min:      min,
		Max:      max,
		Median:   median,
		Q1:       q1,
		Q3:       q3,
		Skewness: skew,
		Kurtosis: kurt,
	}, nil
}

// CentralMoments returns the mean and the biased (denominator n) central
// moments of orders 2 through 4.
func CentralMoments(values []float64) (mean, m2, m3, m4 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	for _, v := range values {
		d := v - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2 /= float64(n)
	m3 /= float64(n)
	m4 /= float64(n)

	return mean, m2, m3, m4
}
