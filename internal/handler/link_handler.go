package handler

import (
	"errors"
	"net/http"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/devikapo/budget-server/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// LinkHandler handles account-linking HTTP requests
type LinkHandler struct {
	linkService *service.LinkService
	// redirectURI is the mobile deep link used after an OAuth callback
	redirectURI string
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(linkService *service.LinkService, redirectURI string) *LinkHandler {
	return &LinkHandler{linkService: linkService, redirectURI: redirectURI}
}

// ExchangeTokenRequest represents the exchange-token request body
type ExchangeTokenRequest struct {
	PublicToken string `json:"public_token"`
}

// ExchangeTokenResponse represents the exchange-token response
type ExchangeTokenResponse struct {
	Success bool `json:"success"`
}

// CreateLinkToken handles POST /api/link-token
func (h *LinkHandler) CreateLinkToken(c echo.Context) error {
	token, err := h.linkService.CreateLinkToken(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create link token")
		return NewUpstreamError(c, "Failed to create link token")
	}
	return c.JSON(http.StatusOK, token)
}

// ExchangeToken handles POST /api/exchange-token
func (h *LinkHandler) ExchangeToken(c echo.Context) error {
	var req ExchangeTokenRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	item, err := h.linkService.LinkItem(c.Request().Context(), req.PublicToken)
	if err != nil {
		if errors.Is(err, domain.ErrPublicTokenRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "public_token", Message: "Public token is required"},
			})
		}
		log.Error().Err(err).Msg("Failed to exchange public token")
		return NewUpstreamError(c, "Failed to exchange public token")
	}

	log.Info().Str("item_id", item.ItemID).Msg("Item linked via token exchange")
	return c.JSON(http.StatusOK, ExchangeTokenResponse{Success: true})
}

// Callback handles GET /callback, the provider's OAuth redirect. When the
// redirect carries a public token it is exchanged immediately and the user
// is bounced back into the mobile app.
func (h *LinkHandler) Callback(c echo.Context) error {
	publicToken := c.QueryParam("public_token")
	if publicToken == "" {
		log.Info().Msg("OAuth callback received without public token")
		return c.String(http.StatusOK, "OAuth callback received. No public token found.")
	}

	item, err := h.linkService.LinkItem(c.Request().Context(), publicToken)
	if err != nil {
		log.Error().Err(err).Msg("Failed to link item from OAuth callback")
		return NewUpstreamError(c, "Failed to complete OAuth link")
	}

	log.Info().Str("item_id", item.ItemID).Msg("Item linked via OAuth callback")
	return c.Redirect(http.StatusFound, h.redirectURI)
}
