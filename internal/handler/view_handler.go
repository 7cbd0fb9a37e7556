package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/devikapo/budget-server/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ViewHandler handles saved-view HTTP requests, including the per-view
// category summary.
type ViewHandler struct {
	viewService        *service.ViewService
	transactionService *service.TransactionService
	summaryService     *service.SummaryService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(viewService *service.ViewService, transactionService *service.TransactionService, summaryService *service.SummaryService) *ViewHandler {
	return &ViewHandler{
		viewService:        viewService,
		transactionService: transactionService,
		summaryService:     summaryService,
	}
}

// DateRangeRequest represents an optional date range in view requests
type DateRangeRequest struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// ViewRequest represents the create/update view request body
type ViewRequest struct {
	Name            string            `json:"name"`
	DateRange       *DateRangeRequest `json:"dateRange,omitempty"`
	Categories      []string          `json:"categories"`
	TransactionType string            `json:"transactionType"`
}

// DateRangeResponse represents a date range in API responses
type DateRangeResponse struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// ViewResponse represents a saved view in API responses
type ViewResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	DateRange       DateRangeResponse `json:"dateRange"`
	Categories      []string          `json:"categories"`
	TransactionType string            `json:"transactionType"`
}

// SummarySliceResponse is one category of a view summary
type SummarySliceResponse struct {
	Label      string `json:"label"`
	Total      string `json:"total"`
	ColorIndex int    `json:"colorIndex"`
	Color      string `json:"color"`
}

// SummaryResponse is the categorized breakdown for a view
type SummaryResponse struct {
	ViewID string                 `json:"viewId"`
	Name   string                 `json:"name"`
	Slices []SummarySliceResponse `json:"slices"`
	Total  string                 `json:"total"`
}

func (r *ViewRequest) toDraft() (*domain.ViewFilterDraft, error) {
	draft := &domain.ViewFilterDraft{
		Name:            r.Name,
		Categories:      r.Categories,
		TransactionType: domain.TransactionType(r.TransactionType),
	}
	if r.DateRange != nil {
		if r.DateRange.Start != nil && *r.DateRange.Start != "" {
			start, err := time.ParseInLocation(dateLayout, *r.DateRange.Start, time.UTC)
			if err != nil {
				return nil, errors.New("dateRange.start must be in YYYY-MM-DD format")
			}
			draft.DateRange.Start = &start
		}
		if r.DateRange.End != nil && *r.DateRange.End != "" {
			end, err := time.ParseInLocation(dateLayout, *r.DateRange.End, time.UTC)
			if err != nil {
				return nil, errors.New("dateRange.end must be in YYYY-MM-DD format")
			}
			draft.DateRange.End = &end
		}
	}
	return draft, nil
}

func toViewResponse(view *domain.ViewFilter) ViewResponse {
	resp := ViewResponse{
		ID:              view.ID,
		Name:            view.Name,
		Categories:      view.Categories,
		TransactionType: string(view.TransactionType),
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if view.DateRange.Start != nil {
		start := formatDate(*view.DateRange.Start)
		resp.DateRange.Start = &start
	}
	if view.DateRange.End != nil {
		end := formatDate(*view.DateRange.End)
		resp.DateRange.End = &end
	}
	return resp
}

func viewValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name cannot be empty"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "transactionType", Message: "Must be one of: spending, income"},
		})
	}
	return nil
}

// CreateView handles POST /api/views
func (h *ViewHandler) CreateView(c echo.Context) error {
	var req ViewRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	draft, err := req.toDraft()
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	view, err := h.viewService.CreateView(draft)
	if err != nil {
		if resp := viewValidationError(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Msg("Failed to create view")
		return NewInternalError(c, "Failed to create view")
	}

	log.Info().Str("view_id", view.ID).Str("name", view.Name).Msg("View created")
	return c.JSON(http.StatusCreated, toViewResponse(view))
}

// GetViews handles GET /api/views
func (h *ViewHandler) GetViews(c echo.Context) error {
	views := h.viewService.ListViews()
	response := make([]ViewResponse, len(views))
	for i, view := range views {
		response[i] = toViewResponse(view)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateView handles PUT /api/views/:id
func (h *ViewHandler) UpdateView(c echo.Context) error {
	id := c.Param("id")

	var req ViewRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	draft, err := req.toDraft()
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	view, err := h.viewService.UpdateView(id, draft)
	if err != nil {
		if errors.Is(err, domain.ErrViewNotFound) {
			return NewNotFoundError(c, "View not found")
		}
		if resp := viewValidationError(c, err); resp != nil {
			return resp
		}
		log.Error().Err(err).Str("view_id", id).Msg("Failed to update view")
		return NewInternalError(c, "Failed to update view")
	}

	return c.JSON(http.StatusOK, toViewResponse(view))
}

// DeleteView handles DELETE /api/views/:id. Deleting an unknown view is a
// no-op by design.
func (h *ViewHandler) DeleteView(c echo.Context) error {
	h.viewService.DeleteView(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// GetViewSummary handles GET /api/views/:id/summary. The transaction window
// defaults to the view's own date range; explicit start/end query parameters
// override it.
func (h *ViewHandler) GetViewSummary(c echo.Context) error {
	id := c.Param("id")

	view, err := h.viewService.GetView(id)
	if err != nil {
		if errors.Is(err, domain.ErrViewNotFound) {
			return NewNotFoundError(c, "View not found")
		}
		log.Error().Err(err).Str("view_id", id).Msg("Failed to load view")
		return NewInternalError(c, "Failed to load view")
	}

	start, err := parseDateQuery(c, "start")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}
	end, err := parseDateQuery(c, "end")
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}
	if start == nil {
		start = view.DateRange.Start
	}
	if end == nil {
		end = view.DateRange.End
	}

	transactions, err := h.transactionService.FetchTransactions(c.Request().Context(), start, end)
	if err != nil {
		log.Error().Err(err).Str("view_id", id).Msg("Failed to fetch transactions for summary")
		return NewUpstreamError(c, "Failed to fetch transactions")
	}

	summary := h.summaryService.Summarize(view, transactions)

	response := SummaryResponse{
		ViewID: view.ID,
		Name:   view.Name,
		Slices: make([]SummarySliceResponse, len(summary.Slices)),
		Total:  summary.Total.String(),
	}
	for i, slice := range summary.Slices {
		response.Slices[i] = SummarySliceResponse{
			Label:      slice.Label,
			Total:      slice.Total.String(),
			ColorIndex: slice.ColorIndex,
			Color:      slice.Color,
		}
	}
	return c.JSON(http.StatusOK, response)
}
