package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
	"github.com/stabilis-labs/tes_engine/internal/core/services"
	"github.com/stabilis-labs/tes_engine/internal/dto"
	"github.com/stabilis-labs/tes_engine/internal/middleware"
)

// adjustmentHandler handles HTTP requests related to adjustment history and
// scheduler status.
type adjustmentHandler struct {
	adjustmentService ports.AdjustmentSvcFacade
	scheduler         *services.AdjustmentScheduler
}

func newAdjustmentHandler(as ports.AdjustmentSvcFacade, scheduler *services.AdjustmentScheduler) *adjustmentHandler {
	return &adjustmentHandler{
		adjustmentService: as,
		scheduler:         scheduler,
	}
}

// registerAdjustmentRoutes registers routes related to adjustments.
func registerAdjustmentRoutes(rg *gin.RouterGroup, adjustmentService ports.AdjustmentSvcFacade, scheduler *services.AdjustmentScheduler) {
	h := newAdjustmentHandler(adjustmentService, scheduler)

	adjustments := rg.Group("/adjustments")
	{
		adjustments.GET("", h.listAdjustments)
		adjustments.GET("/status", h.getStatus)
	}
}

// listAdjustments godoc
// @Summary List adjustment records
// @Description Retrieves persisted adjustment records, newest first, optionally filtered by currency
// @Tags adjustments
// @Produce json
// @Param currency query string false "Currency code filter"
// @Param limit query int false "Maximum records to return (default 100, max 500)"
// @Success 200 {array} dto.AdjustmentResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to retrieve adjustments"
// @Router /adjustments [get]
func (h *adjustmentHandler) listAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	currencyID := domain.CurrencyID(strings.ToUpper(c.Query("currency")))

	records, err := h.adjustmentService.ListAdjustments(c.Request.Context(), currencyID, limit)
	if err != nil {
		logger.Error("Failed to list adjustments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve adjustments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAdjustmentResponse(records))
}

// getStatus godoc
// @Summary Get scheduler status
// @Description Retrieves the adjustment scheduler's current state and tick progress
// @Tags adjustments
// @Produce json
// @Success 200 {object} services.SchedulerStatus
// @Router /adjustments/status [get]
func (h *adjustmentHandler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduler.Status())
}
