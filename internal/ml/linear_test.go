package ml

import (
	"errors"
	"math"
	"testing"
)

func TestFitLinear_ExactPlane(t *testing.T) {
	// y = 1 + 2*x1 + 3*x2, noiseless: the fit must recover it.
	X := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 3}}
	y := make([]float64, len(X))
	for i, x := range X {
		y[i] = 1 + 2*x[0] + 3*x[1]
	}
	m, err := FitLinear(X, y)
	if err != nil {
		t.Fatalf("FitLinear() error = %v", err)
	}
	if math.Abs(m.Intercept-1) > 1e-9 {
		t.Errorf("Intercept = %f, want 1", m.Intercept)
	}
	if math.Abs(m.Coef[0]-2) > 1e-9 || math.Abs(m.Coef[1]-3) > 1e-9 {
		t.Errorf("Coef = %v, want [2 3]", m.Coef)
	}
	if got := m.Predict([]float64{4, 5}); math.Abs(got-24) > 1e-9 {
		t.Errorf("Predict(4, 5) = %f, want 24", got)
	}
}

func TestFitLinear_InsufficientData(t *testing.T) {
	if _, err := FitLinear(nil, nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("FitLinear(nil) error = %v, want ErrInsufficientData", err)
	}
	// Two observations cannot pin down three coefficients.
	if _, err := FitLinear([][]float64{{1, 2}, {3, 4}}, []float64{1, 2}); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("underdetermined fit error = %v, want ErrInsufficientData", err)
	}
}

func TestFitLinear_LengthMismatch(t *testing.T) {
	if _, err := FitLinear([][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{1}); err == nil {
		t.Error("expected error for mismatched rows and targets")
	}
}
