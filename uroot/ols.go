package uroot

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// olsRegression performs ordinary least squares via the normal equations.
// Returns coefficients and their standard errors, or nil when the design
// matrix is rank deficient or the system is underdetermined.
func olsRegression(x [][]float64, y []float64) (coeffs, stdErrors []float64) {
	n := len(y)
	if n == 0 || len(x) != n {
		return nil, nil
	}

	k := len(x[0])
	if k == 0 || n <= k {
		return nil, nil
	}

	xm := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		if len(x[i]) != k {
			return nil, nil
		}
		xm.SetRow(i, x[i])
	}
	yv := mat.NewVecDense(n, y)

	var xtx mat.Dense
	xtx.Mul(xm.T(), xm)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, nil
	}

	var xty mat.VecDense
	xty.MulVec(xm.T(), yv)

	var beta mat.VecDense
	beta.MulVec(&xtxInv, &xty)

	coeffs = make([]float64, k)
	for i := 0; i < k; i++ {
		coeffs[i] = beta.AtVec(i)
	}

	// Residual variance
	var fitted mat.VecDense
	fitted.MulVec(xm, &beta)
	sse := 0.0
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		sse += r * r
	}
	s2 := sse / float64(n-k)

	stdErrors = make([]float64, k)
	for i := 0; i < k; i++ {
		stdErrors[i] = math.Sqrt(s2 * xtxInv.At(i, i))
	}

	return coeffs, stdErrors
}
