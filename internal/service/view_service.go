package service

import (
	"strings"

	"github.com/devikapo/budget-server/internal/domain"
)

// ViewService handles saved-view business logic.
type ViewService struct {
	viewRepo domain.ViewRepository
}

// NewViewService creates a new ViewService.
func NewViewService(viewRepo domain.ViewRepository) *ViewService {
	return &ViewService{viewRepo: viewRepo}
}

func validateDraft(draft *domain.ViewFilterDraft) error {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return domain.ErrNameRequired
	}
	if len(draft.Name) > domain.MaxViewNameLength {
		return domain.ErrNameTooLong
	}
	switch draft.TransactionType {
	case domain.TransactionTypeSpending, domain.TransactionTypeIncome:
	default:
		return domain.ErrInvalidTransactionType
	}
	// An empty category set is allowed; it saves fine and just aggregates
	// to an empty summary.
	return nil
}

// CreateView validates the draft and stores it as the newest view.
func (s *ViewService) CreateView(draft *domain.ViewFilterDraft) (*domain.ViewFilter, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	return s.viewRepo.Create(draft)
}

// UpdateView replaces all fields of an existing view.
func (s *ViewService) UpdateView(id string, draft *domain.ViewFilterDraft) (*domain.ViewFilter, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	return s.viewRepo.Update(id, draft)
}

// DeleteView removes a view. Unknown ids are ignored.
func (s *ViewService) DeleteView(id string) {
	s.viewRepo.Delete(id)
}

// ListViews returns all saved views, newest first.
func (s *ViewService) ListViews() []*domain.ViewFilter {
	return s.viewRepo.List()
}

// GetView returns a single view by id.
func (s *ViewService) GetView(id string) (*domain.ViewFilter, error) {
	for _, view := range s.viewRepo.List() {
		if view.ID == id {
			return view, nil
		}
	}
	return nil, domain.ErrViewNotFound
}
