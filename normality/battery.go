package normality

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gonorts/timeseries"
)

// Test dispatches a Gaussianity test by name: "lobato" (the default when
// method is empty), "jb" or "jarque-bera", and "vavra". Each test runs with
// its default settings.
func Test(y *timeseries.Series, method string) (*Result, error) {
	switch strings.ToLower(method) {
	case "", "lobato":
		return Lobato(y, 0)
	case "jb", "jarque-bera", "jarquebera":
		return JarqueBera(y)
	case "vavra", "psaradakis-vavra":
		return Vavra(y, nil)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidInput, method)
	}
}

// RunAll runs the whole battery concurrently and returns the results in a
// fixed order: Lobato, Jarque-Bera, Vavra. The first failing test aborts
// the batch.
func RunAll(y *timeseries.Series) ([]*Result, error) {
	if err := validateSeries(y); err != nil {
		return nil, err
	}

	methods := []string{"lobato", "jb", "vavra"}
	results := make([]*Result, len(methods))

	var g errgroup.Group
	for i, method := range methods {
		i, method := i, method
		g.Go(func() error {
			r, err := Test(y, method)
			if err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
