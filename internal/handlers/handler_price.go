package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
	"github.com/stabilis-labs/tes_engine/internal/dto"
	"github.com/stabilis-labs/tes_engine/internal/middleware"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// priceHandler handles HTTP requests related to price observations.
type priceHandler struct {
	priceService ports.PriceSvcFacade
}

func newPriceHandler(ps ports.PriceSvcFacade) *priceHandler {
	return &priceHandler{
		priceService: ps,
	}
}

// registerPriceRoutes registers routes related to price observations. The
// submission endpoint is rate limited per client IP since it is the engine's
// only external write surface.
func registerPriceRoutes(rg *gin.RouterGroup, priceService ports.PriceSvcFacade, rateLimit string) {
	h := newPriceHandler(priceService)

	rate, err := limiter.NewRateFromFormatted(rateLimit)
	if err != nil {
		// Fall back to a sane default rather than refusing to register routes.
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	prices := rg.Group("/prices")
	{
		prices.POST("", middleware.RateLimit(ipLimiter), h.submitPrice)
		prices.GET("/:code", h.getLatestPrice)
	}
}

// submitPrice godoc
// @Summary Submit a price observation
// @Description Records a market price observation for a tracked currency; the latest observation per currency feeds the adjustment cycle
// @Tags prices
// @Accept json
// @Produce json
// @Param observation body dto.SubmitPriceRequest true "Price observation"
// @Success 201 {object} dto.PriceObservationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not tracked"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to record observation"
// @Router /prices [post]
func (h *priceHandler) submitPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SubmitPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency_id", req.CurrencyID), slog.String("source", req.Source))

	obs, err := h.priceService.SubmitObservation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error submitting price", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Price submitted for untracked currency")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not tracked"})
		} else {
			logger.Error("Failed to record price observation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record observation"})
		}
		return
	}

	logger.Info("Price observation recorded", slog.String("observation_id", obs.ObservationID))
	c.JSON(http.StatusCreated, dto.ToPriceObservationResponse(obs))
}

// getLatestPrice godoc
// @Summary Get the latest price observation
// @Description Retrieves the most recent price observation for a tracked currency
// @Tags prices
// @Produce json
// @Param code path string true "Currency code" MinLength(3) MaxLength(8)
// @Success 200 {object} dto.PriceObservationResponse
// @Failure 404 {object} map[string]string "No observation recorded"
// @Failure 500 {object} map[string]string "Failed to retrieve observation"
// @Router /prices/{code} [get]
func (h *priceHandler) getLatestPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	code := strings.ToUpper(c.Param("code"))
	logger = logger.With(slog.String("currency_id", code))

	obs, err := h.priceService.GetLatestObservation(c.Request.Context(), domain.CurrencyID(code))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No price observation recorded")
			c.JSON(http.StatusNotFound, gin.H{"error": "No observation recorded for currency"})
		} else {
			logger.Error("Failed to get latest observation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve observation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceObservationResponse(obs))
}
