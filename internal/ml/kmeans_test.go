package ml

import (
	"errors"
	"reflect"
	"testing"
)

func TestFitKMeans_Empty(t *testing.T) {
	if _, err := FitKMeans(nil, 4, 42); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("FitKMeans(nil) error = %v, want ErrInsufficientData", err)
	}
}

func TestFitKMeans_CohortCountBounds(t *testing.T) {
	tests := []struct {
		name   string
		points [][]float64
		maxK   int
		wantK  int
	}{
		{"single observation", [][]float64{{5, 2}}, 4, 1},
		{"fewer observations than maxK", [][]float64{{1, 1}, {2, 2}, {9, 9}}, 4, 3},
		{"observations above maxK", [][]float64{{1, 1}, {2, 2}, {9, 9}, {10, 10}, {20, 20}}, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FitKMeans(tt.points, tt.maxK, 42)
			if err != nil {
				t.Fatalf("FitKMeans() error = %v", err)
			}
			if m.K() != tt.wantK {
				t.Errorf("K() = %d, want %d", m.K(), tt.wantK)
			}
		})
	}
}

func TestFitKMeans_Deterministic(t *testing.T) {
	points := [][]float64{{10, 5}, {12, 6}, {50, 40}, {48, 38}, {11, 5}, {52, 41}}
	a, err := FitKMeans(points, 4, 42)
	if err != nil {
		t.Fatalf("FitKMeans() error = %v", err)
	}
	b, err := FitKMeans(points, 4, 42)
	if err != nil {
		t.Fatalf("FitKMeans() error = %v", err)
	}
	if !reflect.DeepEqual(a.Centroids, b.Centroids) {
		t.Errorf("repeated fits over identical data diverged:\n%v\n%v", a.Centroids, b.Centroids)
	}
}

func TestKMeans_PredictGroupsSimilarCapacity(t *testing.T) {
	// Two small trucks and one large one: the query (11, 5.5) must land in
	// the cohort holding the small trucks.
	points := [][]float64{{10, 5}, {12, 6}, {50, 40}}
	m, err := FitKMeans(points, 2, 42)
	if err != nil {
		t.Fatalf("FitKMeans() error = %v", err)
	}
	small := m.Predict([]float64{10, 5})
	if got := m.Predict([]float64{12, 6}); got != small {
		t.Fatalf("small trucks split across cohorts: %d vs %d", small, got)
	}
	large := m.Predict([]float64{50, 40})
	if large == small {
		t.Fatalf("large truck ended up in the small cohort %d", small)
	}
	if got := m.Predict([]float64{11, 5.5}); got != small {
		t.Errorf("Predict(11, 5.5) = %d, want small cohort %d", got, small)
	}
}

func TestKMeans_PredictUsesStoredStats(t *testing.T) {
	points := [][]float64{{10, 5}, {12, 6}, {50, 40}}
	m, err := FitKMeans(points, 2, 42)
	if err != nil {
		t.Fatalf("FitKMeans() error = %v", err)
	}
	// Training points classify into their own cohorts.
	for i, p := range points {
		c := m.Predict(p)
		if c < 0 || c >= m.K() {
			t.Errorf("point %d assigned out-of-range cohort %d", i, c)
		}
	}
}
