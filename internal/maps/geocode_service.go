package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"karvon/internal/types"
)

// GeocodeService resolves place names to coordinates via the Google Maps
// API. Geocoding is a best-effort collaborator: every failure mode reports
// ok=false and the request proceeds with unknown coordinates.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a GeocodeService with the given API key. An
// empty key returns a disabled service whose lookups always miss.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	if apiKey == "" {
		return &GeocodeService{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode returns the coordinates of a place name, or ok=false when the
// lookup fails or yields no result.
func (s *GeocodeService) Geocode(ctx context.Context, place string) (types.Point, bool) {
	if s == nil || s.client == nil || place == "" {
		return types.Point{}, false
	}
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: place})
	if err != nil || len(results) == 0 {
		return types.Point{}, false
	}
	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, true
}
