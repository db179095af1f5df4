package pricing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"karvon/internal/modelstore"
	"karvon/internal/modules/region"
)

type fakeModels map[string]any

func (f fakeModels) Get(name string) (any, error) {
	v, ok := f[name]
	if !ok {
		return nil, modelstore.ErrArtifactMissing
	}
	return v, nil
}

// fitFixture trains the price pipeline on an exactly planar price table so
// estimates are predictable: price (thousands) = 100 + 10*from + 5*to over
// the sorted vocabulary андижон=0, самарқанд=1, тошкент=2.
func fitFixture(t *testing.T) fakeModels {
	t.Helper()
	regions := []string{"андижон", "самарқанд", "тошкент"}
	ids := map[string]float64{"андижон": 0, "самарқанд": 1, "тошкент": 2}
	var routes []Route
	for _, from := range regions {
		for _, to := range regions {
			if from == to {
				continue
			}
			routes = append(routes, Route{
				From:  from,
				To:    to,
				Price: 100 + 10*ids[from] + 5*ids[to],
			})
		}
	}
	cb, sc, lm, err := Fit(routes)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return fakeModels{
		modelstore.ModelCodebook: cb,
		modelstore.ModelScaler:   sc,
		modelstore.ModelPrice:    lm,
	}
}

func TestService_Estimate(t *testing.T) {
	svc := NewService(fitFixture(t))

	price, err := svc.Estimate(context.Background(), "Toshkent,Chorsu", "Samarqand,Bozor")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if price <= 0 {
		t.Errorf("Estimate() = %d, want positive", price)
	}
	if price%1000 != 0 {
		t.Errorf("Estimate() = %d, want a multiple of 1000", price)
	}
	// Planar table: тошкент(2) → самарқанд(1) costs 100+20+5 = 125 thousand.
	if price < 124000 || price > 125000 {
		t.Errorf("Estimate() = %d, want ~125000", price)
	}
}

func TestService_Estimate_SpellingVariantsAgree(t *testing.T) {
	svc := NewService(fitFixture(t))

	a, err := svc.Estimate(context.Background(), "Toshkent", "Samarqand")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	b, err := svc.Estimate(context.Background(), "TOSHKENT", "Samarkand")
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if a != b {
		t.Errorf("spelling variants priced differently: %d vs %d", a, b)
	}
}

func TestService_Estimate_UnknownRegion(t *testing.T) {
	svc := NewService(fitFixture(t))

	_, err := svc.Estimate(context.Background(), "UnknownPlaceXYZ", "Toshkent")
	if !errors.Is(err, region.ErrUnknownRegion) {
		t.Fatalf("Estimate() error = %v, want ErrUnknownRegion", err)
	}
	if !strings.Contains(err.Error(), "origin") {
		t.Errorf("error %q does not name the failing side", err)
	}

	_, err = svc.Estimate(context.Background(), "Toshkent", "UnknownPlaceXYZ")
	if !errors.Is(err, region.ErrUnknownRegion) {
		t.Fatalf("Estimate() error = %v, want ErrUnknownRegion", err)
	}
	if !strings.Contains(err.Error(), "destination") {
		t.Errorf("error %q does not name the failing side", err)
	}
}

func TestService_Estimate_MissingArtifact(t *testing.T) {
	svc := NewService(fakeModels{})
	if _, err := svc.Estimate(context.Background(), "Toshkent", "Samarqand"); !errors.Is(err, modelstore.ErrArtifactMissing) {
		t.Errorf("Estimate() error = %v, want ErrArtifactMissing", err)
	}
}
