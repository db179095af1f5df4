// README: Linear regression fit and inference.
package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Linear is a fitted linear regression model.
type Linear struct {
	Intercept float64
	Coef      []float64
}

// FitLinear solves the least-squares fit of y against X with an intercept
// term, via QR decomposition. Requires at least dims+1 observations.
func FitLinear(X [][]float64, y []float64) (*Linear, error) {
	n := len(X)
	if n == 0 {
		return nil, ErrInsufficientData
	}
	if len(y) != n {
		return nil, fmt.Errorf("feature rows %d do not match targets %d", n, len(y))
	}
	dims := len(X[0])
	if n < dims+1 {
		return nil, fmt.Errorf("%w: %d observations for %d coefficients", ErrInsufficientData, n, dims+1)
	}

	a := mat.NewDense(n, dims+1, nil)
	for i, row := range X {
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return nil, fmt.Errorf("least squares solve: %w", err)
	}

	m := &Linear{
		Intercept: sol.AtVec(0),
		Coef:      make([]float64, dims),
	}
	for j := 0; j < dims; j++ {
		m.Coef[j] = sol.AtVec(j + 1)
	}
	return m, nil
}

// Predict evaluates the model on a single feature vector.
func (m *Linear) Predict(x []float64) float64 {
	out := m.Intercept
	for j, c := range m.Coef {
		out += c * x[j]
	}
	return out
}
