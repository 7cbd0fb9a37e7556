// Package memory holds the session-scoped in-memory stores. Linked items and
// saved views are both ephemeral; nothing here survives a restart.
package memory

import (
	"sync"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/google/uuid"
)

// ViewRepository is the in-memory implementation of domain.ViewRepository.
// The slice is ordered newest-first; Create prepends, Update keeps position.
type ViewRepository struct {
	mu    sync.RWMutex
	views []*domain.ViewFilter
}

// NewViewRepository creates an empty ViewRepository.
func NewViewRepository() *ViewRepository {
	return &ViewRepository{}
}

// Create assigns a fresh id to the draft and prepends the stored view.
// UUIDs keep ids unique even under concurrent creates.
func (r *ViewRepository) Create(draft *domain.ViewFilterDraft) (*domain.ViewFilter, error) {
	view := &domain.ViewFilter{
		ID:              uuid.NewString(),
		Name:            draft.Name,
		DateRange:       cloneDateRange(draft.DateRange),
		Categories:      cloneCategories(draft.Categories),
		TransactionType: draft.TransactionType,
	}

	r.mu.Lock()
	r.views = append([]*domain.ViewFilter{view}, r.views...)
	r.mu.Unlock()

	return cloneView(view), nil
}

// Update replaces every field of the view except its id. Position in the
// ordered collection is unchanged.
func (r *ViewRepository) Update(id string, draft *domain.ViewFilterDraft) (*domain.ViewFilter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, view := range r.views {
		if view.ID != id {
			continue
		}
		view.Name = draft.Name
		view.DateRange = cloneDateRange(draft.DateRange)
		view.Categories = cloneCategories(draft.Categories)
		view.TransactionType = draft.TransactionType
		return cloneView(view), nil
	}
	return nil, domain.ErrViewNotFound
}

// Delete removes the view if present. Deleting an unknown or already-deleted
// id is a no-op.
func (r *ViewRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, view := range r.views {
		if view.ID == id {
			r.views = append(r.views[:i], r.views[i+1:]...)
			return
		}
	}
}

// List returns a newest-first snapshot. Mutating the result does not affect
// the stored views.
func (r *ViewRepository) List() []*domain.ViewFilter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ViewFilter, len(r.views))
	for i, view := range r.views {
		out[i] = cloneView(view)
	}
	return out
}

func cloneView(v *domain.ViewFilter) *domain.ViewFilter {
	return &domain.ViewFilter{
		ID:              v.ID,
		Name:            v.Name,
		DateRange:       cloneDateRange(v.DateRange),
		Categories:      cloneCategories(v.Categories),
		TransactionType: v.TransactionType,
	}
}

func cloneDateRange(r domain.DateRange) domain.DateRange {
	var out domain.DateRange
	if r.Start != nil {
		start := *r.Start
		out.Start = &start
	}
	if r.End != nil {
		end := *r.End
		out.End = &end
	}
	return out
}

func cloneCategories(categories []string) []string {
	if categories == nil {
		return nil
	}
	return append([]string(nil), categories...)
}
