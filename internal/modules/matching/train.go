// README: Offline fit of the capacity clusterer.
package matching

import "karvon/internal/ml"

// FitClusterer fits the capacity cohort model over the drivers' (weight,
// volume) profiles. Deterministic for a fixed seed; cohort indices are only
// meaningful within the returned instance.
func FitClusterer(profiles []DriverProfile, maxCohorts int, seed int64) (*ml.KMeans, error) {
	points := make([][]float64, len(profiles))
	for i, p := range profiles {
		points[i] = []float64{p.Weight, p.Volume}
	}
	return ml.FitKMeans(points, maxCohorts, seed)
}
