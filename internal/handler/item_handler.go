package handler

import (
	"errors"
	"net/http"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/devikapo/budget-server/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ItemHandler handles linked-item HTTP requests
type ItemHandler struct {
	linkService    *service.LinkService
	accountService *service.AccountService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(linkService *service.LinkService, accountService *service.AccountService) *ItemHandler {
	return &ItemHandler{linkService: linkService, accountService: accountService}
}

// GetItemsWithAccounts handles GET /api/items-with-accounts
func (h *ItemHandler) GetItemsWithAccounts(c echo.Context) error {
	items, err := h.accountService.ItemsWithAccounts(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get items with accounts")
		return NewUpstreamError(c, "Failed to get accounts")
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteItem handles DELETE /api/items/:item_id
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	itemID := c.Param("item_id")

	if err := h.linkService.UnlinkItem(c.Request().Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return NewNotFoundError(c, "Item not found")
		}
		log.Error().Err(err).Str("item_id", itemID).Msg("Failed to unlink item")
		return NewUpstreamError(c, "Failed to remove item")
	}

	log.Info().Str("item_id", itemID).Msg("Item unlinked")
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
