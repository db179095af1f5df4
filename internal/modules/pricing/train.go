// README: Offline fit of the codebook, feature scaler, and price model.
package pricing

import (
	"fmt"

	"karvon/internal/ml"
	"karvon/internal/modules/region"
)

// Fit builds the region codebook from the route vocabulary and fits the
// price scaler and regression model over the encoded (origin, destination)
// pairs. The three artifacts must be persisted together: the model is only
// meaningful against the codebook and scaler it was fit with.
func Fit(routes []Route) (*region.Codebook, *ml.Scaler, *ml.Linear, error) {
	if len(routes) == 0 {
		return nil, nil, nil, fmt.Errorf("fit price model: %w", ml.ErrInsufficientData)
	}

	names := make([]string, 0, 2*len(routes))
	for _, r := range routes {
		names = append(names, region.Canonical(r.From), region.Canonical(r.To))
	}
	codebook := region.BuildCodebook(names)

	X := make([][]float64, len(routes))
	y := make([]float64, len(routes))
	for i, r := range routes {
		from, err := codebook.Encode(region.Canonical(r.From))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("fit price model: %w", err)
		}
		to, err := codebook.Encode(region.Canonical(r.To))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("fit price model: %w", err)
		}
		X[i] = []float64{float64(from), float64(to)}
		y[i] = r.Price
	}

	scaler, err := ml.FitScaler(X)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fit price scaler: %w", err)
	}
	model, err := ml.FitLinear(scaler.TransformAll(X), y)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fit price model: %w", err)
	}
	return codebook, scaler, model, nil
}
