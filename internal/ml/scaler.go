// README: Feature standardization with stored statistics.
package ml

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData is returned when a model is fit on zero observations.
var ErrInsufficientData = errors.New("insufficient data")

// Scaler standardizes feature vectors to zero mean and unit variance using
// statistics captured at fit time. Query points must go through the same
// fitted instance as the training data, never a refit.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// FitScaler computes per-feature mean and population standard deviation.
// A constant feature gets standard deviation 1 so it maps to zero instead
// of dividing by zero.
func FitScaler(points [][]float64) (*Scaler, error) {
	if len(points) == 0 {
		return nil, ErrInsufficientData
	}
	dims := len(points[0])
	col := make([]float64, len(points))
	s := &Scaler{
		Mean: make([]float64, dims),
		Std:  make([]float64, dims),
	}
	for j := 0; j < dims; j++ {
		for i, p := range points {
			col[i] = p[j]
		}
		m := stat.Mean(col, nil)
		var ss float64
		for _, v := range col {
			ss += (v - m) * (v - m)
		}
		sd := math.Sqrt(ss / float64(len(col)))
		if sd == 0 {
			sd = 1
		}
		s.Mean[j] = m
		s.Std[j] = sd
	}
	return s, nil
}

// Transform standardizes a single point with the fitted statistics.
func (s *Scaler) Transform(point []float64) []float64 {
	out := make([]float64, len(point))
	for j, v := range point {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out
}

// TransformAll standardizes every point, returning fresh slices.
func (s *Scaler) TransformAll(points [][]float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = s.Transform(p)
	}
	return out
}
