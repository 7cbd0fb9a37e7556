package handler

import (
	"errors"
	"net/http"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/devikapo/budget-server/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BalanceHandler handles balance HTTP requests
type BalanceHandler struct {
	accountService *service.AccountService
}

// NewBalanceHandler creates a new BalanceHandler
func NewBalanceHandler(accountService *service.AccountService) *BalanceHandler {
	return &BalanceHandler{accountService: accountService}
}

// BalancePointResponse is one day of a balance history series
type BalancePointResponse struct {
	Date    string `json:"date"`
	Balance string `json:"balance"`
}

// GetBalances handles GET /api/balances
func (h *BalanceHandler) GetBalances(c echo.Context) error {
	balances, err := h.accountService.Balances(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get balances")
		return NewUpstreamError(c, "Failed to get balances")
	}
	return c.JSON(http.StatusOK, balances)
}

// GetBalanceHistory handles GET /api/balance-history/:account_id
func (h *BalanceHandler) GetBalanceHistory(c echo.Context) error {
	accountID := c.Param("account_id")

	start, err := parseDateQuery(c, "start")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}
	end, err := parseDateQuery(c, "end")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	history, err := h.accountService.BalanceHistory(c.Request().Context(), accountID, start, end)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return NewNotFoundError(c, "Account not found or no balance info")
		}
		log.Error().Err(err).Str("account_id", accountID).Msg("Failed to build balance history")
		return NewUpstreamError(c, "Failed to build balance history")
	}

	response := make([]BalancePointResponse, len(history))
	for i, point := range history {
		response[i] = BalancePointResponse{
			Date:    formatDate(point.Date),
			Balance: point.Balance.String(),
		}
	}
	return c.JSON(http.StatusOK, response)
}
