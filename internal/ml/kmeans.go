// README: Seeded deterministic k-means for capacity cohorts.
package ml

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const maxIterations = 100

// KMeans is a fitted centroid model over standardized points. The scaler
// that standardized the training data travels with the centroids so query
// points are scaled with the same statistics.
type KMeans struct {
	Centroids [][]float64
	Scaler    *Scaler
}

// FitKMeans standardizes the points and partitions them into at most maxK
// cohorts. Fewer observations than maxK reduce the cohort count to the
// observation count; a single observation yields a single cohort. The fit is
// deterministic for a fixed seed.
func FitKMeans(points [][]float64, maxK int, seed int64) (*KMeans, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrInsufficientData
	}

	scaler, err := FitScaler(points)
	if err != nil {
		return nil, err
	}
	scaled := scaler.TransformAll(points)

	k := 1
	if n > 1 && maxK > 1 {
		k = maxK
		if n < k {
			k = n
		}
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := seedCentroids(scaled, k, rng)

	assign := make([]int, n)
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, p := range scaled {
			c := nearest(centroids, p)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}
		recompute(centroids, scaled, assign)
	}

	return &KMeans{Centroids: centroids, Scaler: scaler}, nil
}

// K returns the cohort count.
func (m *KMeans) K() int {
	return len(m.Centroids)
}

// Predict standardizes the query point with the stored statistics and
// returns the index of the nearest centroid.
func (m *KMeans) Predict(point []float64) int {
	return nearest(m.Centroids, m.Scaler.Transform(point))
}

// seedCentroids picks k initial centroids with k-means++ weighting. Ties and
// sampling are driven entirely by rng, so a fixed seed fixes the outcome.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := points[rng.Intn(len(points))]
	centroids = append(centroids, clone(first))

	dist := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centroids {
				if v := floats.Distance(p, c, 2); v < d {
					d = v
				}
			}
			dist[i] = d * d
			total += dist[i]
		}
		if total == 0 {
			// All remaining points coincide with a centroid; pick any.
			centroids = append(centroids, clone(points[rng.Intn(len(points))]))
			continue
		}
		target := rng.Float64() * total
		var acc float64
		chosen := len(points) - 1
		for i, w := range dist {
			acc += w
			if acc >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, clone(points[chosen]))
	}
	return centroids
}

// nearest returns the index of the closest centroid, lowest index on ties.
func nearest(centroids [][]float64, p []float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, c := range centroids {
		if d := floats.Distance(p, c, 2); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// recompute moves each centroid to the mean of its assigned points. A cohort
// that lost all members keeps its previous centroid.
func recompute(centroids [][]float64, points [][]float64, assign []int) {
	dims := len(points[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for i := range sums {
		sums[i] = make([]float64, dims)
	}
	for i, p := range points {
		c := assign[i]
		floats.Add(sums[c], p)
		counts[c]++
	}
	for i := range centroids {
		if counts[i] == 0 {
			continue
		}
		for j := range centroids[i] {
			centroids[i][j] = sums[i][j] / float64(counts[i])
		}
	}
}

func clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}
