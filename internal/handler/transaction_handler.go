package handler

import (
	"net/http"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/devikapo/budget-server/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles transaction-feed HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                      string                          `json:"transaction_id"`
	ItemID                  string                          `json:"item_id"`
	AccountID               string                          `json:"account_id"`
	Name                    string                          `json:"name"`
	MerchantName            *string                         `json:"merchant_name,omitempty"`
	Amount                  string                          `json:"amount"`
	Date                    string                          `json:"date"`
	Pending                 bool                            `json:"pending"`
	Category                []string                        `json:"category,omitempty"`
	PersonalFinanceCategory *domain.PersonalFinanceCategory `json:"personal_finance_category,omitempty"`
}

func toTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                      tx.ID,
		ItemID:                  tx.ItemID,
		AccountID:               tx.AccountID,
		Name:                    tx.Name,
		MerchantName:            tx.MerchantName,
		Amount:                  tx.Amount.String(),
		Date:                    formatDate(tx.Date),
		Pending:                 tx.Pending,
		Category:                tx.Categories,
		PersonalFinanceCategory: tx.PersonalFinanceCategory,
	}
}

// GetTransactions handles GET /api/transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	start, err := parseDateQuery(c, "start")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}
	end, err := parseDateQuery(c, "end")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	transactions, err := h.transactionService.FetchTransactions(c.Request().Context(), start, end)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch transactions")
		return NewUpstreamError(c, "Failed to fetch transactions")
	}

	response := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		response[i] = toTransactionResponse(tx)
	}
	return c.JSON(http.StatusOK, response)
}
