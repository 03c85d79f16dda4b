// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with functions for data loading and transformation. A Series carries
// an optional seasonal frequency (observations per cycle) that downstream
// diagnostics use to decide whether seasonal checks apply.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
//	// Monthly data with a yearly cycle
//	monthly := timeseries.NewWithFrequency(values, 12)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
//	// Load with filtering
//	series, err := timeseries.LoadCSVFiltered(
//	    "data.csv",
//	    "country", "Australia",  // filter column and value
//	    "population",            // value column
//	)
//
// By default rows with NA/empty values are dropped; set
// CSVOptions.KeepMissing to preserve them as NaN so that downstream
// validation can report them.
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//
// # Transformations
//
// Transform the time series:
//
//	// Differencing
//	diff := series.Diff()            // First difference
//	diff2 := series.DiffN(2)         // Second difference
//	sdiff := series.SeasonalDiff(12) // Seasonal difference
//
//	// Variance stabilization
//	logged := series.Log()
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	// Get a slice
//	subset := series.Slice(10, 50)
//
//	// Copy the series
//	copy := series.Copy()
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "value",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	    Frequency:   12,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
