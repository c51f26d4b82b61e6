package handlers

import (
	"context"
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

// accountHandler handles HTTP requests related to protocol account balances.
type accountHandler struct {
	accountService ports.AccountSvcFacade
}

func newAccountHandler(as ports.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to protocol accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService ports.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/:accountID/balances/:code", h.getBalance)
		accounts.POST("/:accountID/reserve", h.reserve)
		accounts.POST("/:accountID/unreserve", h.unreserve)
	}
}

// getBalance godoc
// @Summary Get an account balance
// @Description Retrieves the free and reserved balance of an account in one currency
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Param code path string true "Currency code"
// @Success 200 {object} dto.BalanceResponse
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /accounts/{accountID}/balances/{code} [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	accountID := c.Param("accountID")
	code := strings.ToUpper(c.Param("code"))

	free, reserved, err := h.accountService.GetBalance(c.Request.Context(), domain.CurrencyID(code), domain.AccountID(accountID))
	if err != nil {
		logger.Error("Failed to get balance", slog.String("account_id", accountID), slog.String("currency_id", code), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID:  accountID,
		CurrencyID: code,
		Free:       free,
		Reserved:   reserved,
	})
}

// reserve godoc
// @Summary Reserve account funds
// @Description Moves part of an account's free balance into its reserved balance, where contractions draw from
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body dto.ReserveRequest true "Reserve details"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Insufficient free balance"
// @Failure 500 {object} map[string]string "Failed to reserve funds"
// @Router /accounts/{accountID}/reserve [post]
func (h *accountHandler) reserve(c *gin.Context) {
	h.moveBalance(c, h.accountService.Reserve, "reserve")
}

// unreserve godoc
// @Summary Unreserve account funds
// @Description Moves part of an account's reserved balance back to its free balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body dto.ReserveRequest true "Unreserve details"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Insufficient reserved balance"
// @Failure 500 {object} map[string]string "Failed to unreserve funds"
// @Router /accounts/{accountID}/unreserve [post]
func (h *accountHandler) unreserve(c *gin.Context) {
	h.moveBalance(c, h.accountService.Unreserve, "unreserve")
}

type balanceMoveFunc func(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error

func (h *accountHandler) moveBalance(c *gin.Context, move balanceMoveFunc, op string) {
	logger := middleware.GetLoggerFromContext(c)
	accountID := c.Param("accountID")

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for balance move", slog.String("op", op), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("op", op), slog.String("account_id", accountID), slog.String("currency_id", req.CurrencyID))

	currencyID := domain.CurrencyID(req.CurrencyID)
	if err := move(c.Request.Context(), currencyID, domain.AccountID(accountID), req.Amount); err != nil {
		if errors.Is(err, apperrors.ErrLedgerRejected) {
			logger.Warn("Balance move rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error moving balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to move balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op + " funds"})
		}
		return
	}

	free, reserved, err := h.accountService.GetBalance(c.Request.Context(), currencyID, domain.AccountID(accountID))
	if err != nil {
		logger.Error("Failed to read balance after move", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		return
	}

	logger.Info("Balance move applied", slog.Uint64("amount", req.Amount))
	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID:  accountID,
		CurrencyID: req.CurrencyID,
		Free:       free,
		Reserved:   reserved,
	})
}
