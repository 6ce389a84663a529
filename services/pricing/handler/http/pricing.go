package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/oktaviandi/ridepulse/internal/pkg/logger"
	"github.com/oktaviandi/ridepulse/internal/pkg/models"
	nrpkg "github.com/oktaviandi/ridepulse/internal/pkg/newrelic"
	"github.com/oktaviandi/ridepulse/internal/utils"
	"github.com/oktaviandi/ridepulse/services/pricing"
)

// PricingHandler handles HTTP requests for fare and surge estimation
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates a new pricing HTTP handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{
		pricingUC: pricingUC,
	}
}

// RegisterRoutes registers pricing endpoints on the given group
func (h *PricingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/pricing/surge", h.GetSurge)
	g.POST("/pricing/estimate", h.EstimateFare)
}

// estimateRequest is the request body for fare estimation
type estimateRequest struct {
	Pickup  models.Location `json:"pickup"`
	Dropoff models.Location `json:"dropoff"`
}

// surgeCellPrecision is the geohash length used to label the area a
// surge multiplier applies to. Six characters is roughly a 1.2km cell.
const surgeCellPrecision = 6

// surgeResponse carries the surge multiplier for a location along with
// the geohash cell it was computed for, so clients can cache per area
type surgeResponse struct {
	Cell            string  `json:"cell"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
}

// GetSurge returns the current surge multiplier around a coordinate
// passed as lat/lng query parameters
func (h *PricingHandler) GetSurge(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.GetSurge")

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lat parameter")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid lng parameter")
	}

	loc := models.Location{Latitude: lat, Longitude: lng}
	if err := loc.Validate(); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	surge, err := h.pricingUC.SurgeForLocation(c.Request().Context(), loc)
	if err != nil {
		logger.Error("Failed to compute surge multiplier",
			logger.Float64("lat", lat),
			logger.Float64("lng", lng),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to compute surge multiplier")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Surge multiplier retrieved", surgeResponse{
		Cell:            utils.EncodeLocation(loc, surgeCellPrecision),
		SurgeMultiplier: surge,
	})
}

// EstimateFare prices a pickup-to-dropoff route without creating a ride
func (h *PricingHandler) EstimateFare(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Pricing.EstimateFare")

	var req estimateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := req.Pickup.Validate(); err != nil {
		return utils.BadRequestResponse(c, "Invalid pickup: "+err.Error())
	}
	if err := req.Dropoff.Validate(); err != nil {
		return utils.BadRequestResponse(c, "Invalid dropoff: "+err.Error())
	}

	estimate, err := h.pricingUC.EstimateForRoute(c.Request().Context(), req.Pickup, req.Dropoff)
	if err != nil {
		logger.Error("Failed to estimate fare", logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to estimate fare")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fare estimated", estimate)
}
