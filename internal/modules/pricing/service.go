// README: Price estimation through the persisted codebook, scaler, and model.
package pricing

import (
	"context"
	"fmt"

	"karvon/internal/ml"
	"karvon/internal/modelstore"
	"karvon/internal/modules/region"
)

// priceScale expands the model's output, trained on prices in thousands,
// to a full currency amount.
const priceScale = 1000

// ModelSource serves the current persisted model artifacts.
type ModelSource interface {
	Get(name string) (any, error)
}

type Service struct {
	models ModelSource
}

func NewService(models ModelSource) *Service {
	return &Service{models: models}
}

// Estimate prices a shipment between two free-text place names. Both names
// are canonicalized and encoded with the codebook the price model was
// trained with; an unknown name fails with ErrUnknownRegion naming the side.
func (s *Service) Estimate(ctx context.Context, originRaw, destRaw string) (int64, error) {
	cbv, err := s.models.Get(modelstore.ModelCodebook)
	if err != nil {
		return 0, err
	}
	codebook := cbv.(*region.Codebook)

	origin, err := codebook.Encode(region.Canonical(originRaw))
	if err != nil {
		return 0, fmt.Errorf("origin %q: %w", originRaw, err)
	}
	dest, err := codebook.Encode(region.Canonical(destRaw))
	if err != nil {
		return 0, fmt.Errorf("destination %q: %w", destRaw, err)
	}

	scv, err := s.models.Get(modelstore.ModelScaler)
	if err != nil {
		return 0, err
	}
	scaler := scv.(*ml.Scaler)

	lmv, err := s.models.Get(modelstore.ModelPrice)
	if err != nil {
		return 0, err
	}
	model := lmv.(*ml.Linear)

	raw := model.Predict(scaler.Transform([]float64{float64(origin), float64(dest)}))
	return int64(raw) * priceScale, nil
}
