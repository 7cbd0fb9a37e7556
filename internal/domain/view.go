package domain

import "time"

type TransactionType string

const (
	TransactionTypeSpending TransactionType = "spending"
	TransactionTypeIncome   TransactionType = "income"
)

// DateRange bounds a view's transaction window. A nil bound means unbounded
// on that side. Bounds are calendar dates at UTC midnight and comparisons
// are inclusive on both ends.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Contains reports whether the given date falls within the range.
// An inverted range (start after end) contains nothing.
func (r DateRange) Contains(date time.Time) bool {
	if r.Start != nil && date.Before(*r.Start) {
		return false
	}
	if r.End != nil && date.After(*r.End) {
		return false
	}
	return true
}

// ViewFilter is a user-saved named filter over the transaction feed.
// Categories has set semantics; the engine only checks membership.
type ViewFilter struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	DateRange       DateRange       `json:"dateRange"`
	Categories      []string        `json:"categories"`
	TransactionType TransactionType `json:"transactionType"`
}

// ViewFilterDraft carries the user-editable fields of a ViewFilter.
// Create and Update always replace every field at once.
type ViewFilterDraft struct {
	Name            string
	DateRange       DateRange
	Categories      []string
	TransactionType TransactionType
}

// MaxViewNameLength caps view display names.
const MaxViewNameLength = 255

// ViewRepository owns the ordered, newest-first collection of saved views
// for the session.
type ViewRepository interface {
	Create(draft *ViewFilterDraft) (*ViewFilter, error)
	Update(id string, draft *ViewFilterDraft) (*ViewFilter, error)
	Delete(id string)
	List() []*ViewFilter
}
