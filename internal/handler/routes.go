package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, linkHandler *LinkHandler, itemHandler *ItemHandler, transactionHandler *TransactionHandler, balanceHandler *BalanceHandler, viewHandler *ViewHandler) {
	// Provider OAuth redirect lands at the root, outside /api
	e.GET("/callback", linkHandler.Callback)

	api := e.Group("/api")

	// Account linking
	api.POST("/link-token", linkHandler.CreateLinkToken)
	api.POST("/exchange-token", linkHandler.ExchangeToken)

	// Linked items and their accounts
	api.GET("/items-with-accounts", itemHandler.GetItemsWithAccounts)
	api.DELETE("/items/:item_id", itemHandler.DeleteItem)

	// Transaction feed and balances
	api.GET("/transactions", transactionHandler.GetTransactions)
	api.GET("/balances", balanceHandler.GetBalances)
	api.GET("/balance-history/:account_id", balanceHandler.GetBalanceHistory)

	// Dashboard views
	api.POST("/views", viewHandler.CreateView)
	api.GET("/views", viewHandler.GetViews)
	api.PUT("/views/:id", viewHandler.UpdateView)
	api.DELETE("/views/:id", viewHandler.DeleteView)
	api.GET("/views/:id/summary", viewHandler.GetViewSummary)
}
