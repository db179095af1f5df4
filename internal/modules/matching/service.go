// README: Capacity cohort classification and driver ranking.
package matching

import (
	"context"
	"math"
	"sort"

	"karvon/internal/config"
	"karvon/internal/ml"
	"karvon/internal/modelstore"
	"karvon/internal/types"
)

// ModelSource serves the current persisted model artifacts.
type ModelSource interface {
	Get(name string) (any, error)
}

type Service struct {
	store  *Store
	models ModelSource
	cfg    config.MatchingConfig
}

func NewService(store *Store, models ModelSource, cfg config.MatchingConfig) *Service {
	return &Service{store: store, models: models, cfg: cfg}
}

// BestDrivers returns the top candidates for a cargo request. The request
// is classified into a capacity cohort by the loaded clusterer; only that
// cohort's drivers are ranked. No drivers available is an empty result, not
// an error.
func (s *Service) BestDrivers(ctx context.Context, weight, volume float64, pos types.Point, hasPos bool) ([]RankedCandidate, error) {
	profiles, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return []RankedCandidate{}, nil
	}

	kmv, err := s.models.Get(modelstore.ModelKMeans)
	if err != nil {
		return nil, err
	}
	clusterer := kmv.(*ml.KMeans)

	limit := s.cfg.RankLimit
	if limit <= 0 {
		limit = defaultRankLimit
	}
	cohort := clusterer.Predict([]float64{weight, volume})
	return Rank(profiles, clusterer, cohort, weight, volume, pos, hasPos, limit), nil
}

// UpdateLocation records a driver's live position.
func (s *Service) UpdateLocation(ctx context.Context, id types.ID, pos types.Point) error {
	return s.store.UpdateLocation(ctx, id, pos)
}

// Rank filters profiles to the requested cohort, scores each by raw
// capacity distance and approximate geo distance, and returns at most limit
// candidates ordered by (capacity distance, geo distance). The sort is
// stable, so exact ties keep their input order. Pure over its inputs and
// the given clusterer.
func Rank(profiles []DriverProfile, clusterer *ml.KMeans, cohort int, weight, volume float64, pos types.Point, hasPos bool, limit int) []RankedCandidate {
	candidates := make([]RankedCandidate, 0, len(profiles))
	for _, p := range profiles {
		if clusterer.Predict([]float64{p.Weight, p.Volume}) != cohort {
			continue
		}
		geo := math.Inf(1)
		if hasPos && p.HasPosition {
			geo = math.Hypot(p.Position.Lat-pos.Lat, p.Position.Lng-pos.Lng) * geoKmPerDegree
		}
		candidates = append(candidates, RankedCandidate{
			DriverProfile:    p,
			CapacityDistance: math.Hypot(p.Weight-weight, p.Volume-volume),
			GeoDistanceKm:    geo,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].CapacityDistance != candidates[j].CapacityDistance {
			return candidates[i].CapacityDistance < candidates[j].CapacityDistance
		}
		return candidates[i].GeoDistanceKm < candidates[j].GeoDistanceKm
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
