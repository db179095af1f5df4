// README: Price and driver matching endpoint.
package handlers

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"karvon/internal/modules/matching"
	"karvon/internal/types"
)

type PriceEstimator interface {
	Estimate(ctx context.Context, originRaw, destRaw string) (int64, error)
}

type DriverMatcher interface {
	BestDrivers(ctx context.Context, weight, volume float64, pos types.Point, hasPos bool) ([]matching.RankedCandidate, error)
}

type Geocoder interface {
	Geocode(ctx context.Context, place string) (types.Point, bool)
}

type PredictHandler struct {
	pricing  PriceEstimator
	matching DriverMatcher
	geo      Geocoder
}

func NewPredictHandler(pricing PriceEstimator, matching DriverMatcher, geo Geocoder) *PredictHandler {
	return &PredictHandler{pricing: pricing, matching: matching, geo: geo}
}

type predictRequest struct {
	From   string  `form:"from" json:"from"`
	To     string  `form:"to" json:"to"`
	Weight float64 `form:"weight" json:"weight"`
	Volume float64 `form:"volume" json:"volume"`
}

type driverResponse struct {
	FullName        string   `json:"fullname"`
	Phone           string   `json:"phone"`
	TransportModel  string   `json:"transport_model"`
	TransportWeight float64  `json:"transport_weight"`
	TransportVolume float64  `json:"transport_volume"`
	DistanceKm      *float64 `json:"distance_km"`
}

type predictResponse struct {
	Price   int64            `json:"price"`
	Drivers []driverResponse `json:"drivers"`
}

// Predict answers "what should this shipment cost and who should carry it".
// Accepts query params on GET and a JSON body on POST.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req predictRequest
	var err error
	if c.Request.Method == http.MethodPost {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	if req.From == "" || req.To == "" {
		writeError(c, http.StatusBadRequest, "from and to are required")
		return
	}

	ctx := c.Request.Context()

	price, err := h.pricing.Estimate(ctx, req.From, req.To)
	if err != nil {
		writePredictError(c, err)
		return
	}

	// Geocoding is best effort; ranking proceeds with unknown coordinates.
	pos, hasPos := h.geo.Geocode(ctx, regionPart(req.From))

	candidates, err := h.matching.BestDrivers(ctx, req.Weight, req.Volume, pos, hasPos)
	if err != nil {
		writePredictError(c, err)
		return
	}

	drivers := make([]driverResponse, 0, len(candidates))
	for _, cand := range candidates {
		d := driverResponse{
			FullName:        cand.FullName,
			Phone:           cand.Phone,
			TransportModel:  cand.TransportModel,
			TransportWeight: cand.Weight,
			TransportVolume: cand.Volume,
		}
		// JSON has no Inf; unknown distance is null.
		if !math.IsInf(cand.GeoDistanceKm, 1) {
			km := cand.GeoDistanceKm
			d.DistanceKm = &km
		}
		drivers = append(drivers, d)
	}

	c.JSON(http.StatusOK, predictResponse{Price: price, Drivers: drivers})
}

// regionPart cuts the "region,district" input down to the region.
func regionPart(raw string) string {
	if i := strings.Index(raw, ","); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}
