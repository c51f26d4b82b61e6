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
)

// currencyHandler handles HTTP requests related to tracked currencies.
type currencyHandler struct {
	currencyService ports.CurrencySvcFacade
}

func newCurrencyHandler(cs ports.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to tracked currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService ports.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// listCurrencies godoc
// @Summary List tracked currencies
// @Description Retrieves all currencies the engine stabilizes, with their base units and current total issuance
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to retrieve currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currencies"})
		return
	}

	issuance := make(map[domain.CurrencyID]uint64, len(currencies))
	for _, currency := range currencies {
		_, total, err := h.currencyService.GetCurrency(c.Request.Context(), currency.ID)
		if err != nil {
			logger.Error("Failed to read issuance", slog.String("currency_id", string(currency.ID)), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currencies"})
			return
		}
		issuance[currency.ID] = total
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies, issuance))
}

// getCurrencyByCode godoc
// @Summary Get a tracked currency by code
// @Description Retrieves one tracked currency with its base unit and current total issuance
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code" MinLength(3) MaxLength(8)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	code := strings.ToUpper(c.Param("code"))
	logger = logger.With(slog.String("currency_id", code))

	currency, totalIssuance, err := h.currencyService.GetCurrency(c.Request.Context(), domain.CurrencyID(code))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency, totalIssuance))
}
