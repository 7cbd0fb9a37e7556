package service

import (
	"sort"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/devikapo/budget-server/internal/util"
	"github.com/shopspring/decimal"
)

// SummaryService computes categorized breakdowns for dashboard views.
// It is stateless: every call works on its own snapshot of the view and the
// transaction list, so summaries may run concurrently without coordination.
type SummaryService struct{}

// NewSummaryService creates a new SummaryService.
func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

type categoryBucket struct {
	raw   string
	total decimal.Decimal
}

// Summarize filters the transactions through the view and groups the
// survivors into a sorted, colored category breakdown.
//
// A transaction is included when its date falls inside the view's range
// (inclusive bounds, absent bound means unbounded), its resolved category is
// one of the view's categories, and its amount sign matches the view's
// transaction type. Zero-amount transactions are neither spending nor income
// and never match. Totals sum absolute amounts; the sign only drives
// classification.
//
// Malformed transactions are never an error: a missing category resolves to
// the fallback label and the entry competes for inclusion like any other.
// Empty inputs yield an empty summary.
func (s *SummaryService) Summarize(view *domain.ViewFilter, transactions []*domain.Transaction) *domain.CategorySummary {
	include := make(map[string]struct{}, len(view.Categories))
	for _, c := range view.Categories {
		include[c] = struct{}{}
	}

	// Buckets keep first-encountered order so the descending stable sort
	// breaks ties by earliest qualifying transaction.
	indexByCategory := make(map[string]int)
	var buckets []*categoryBucket

	for _, tx := range transactions {
		if view.TransactionType == domain.TransactionTypeSpending {
			if !tx.IsSpending() {
				continue
			}
		} else if !tx.IsIncome() {
			continue
		}
		if !view.DateRange.Contains(tx.Date) {
			continue
		}
		category := tx.ResolvedCategory()
		if _, ok := include[category]; !ok {
			continue
		}

		idx, ok := indexByCategory[category]
		if !ok {
			idx = len(buckets)
			indexByCategory[category] = idx
			buckets = append(buckets, &categoryBucket{raw: category})
		}
		buckets[idx].total = buckets[idx].total.Add(tx.Amount.Abs())
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].total.GreaterThan(buckets[j].total)
	})

	summary := &domain.CategorySummary{
		Slices: make([]domain.CategorySlice, len(buckets)),
		Total:  decimal.Zero,
	}
	for i, bucket := range buckets {
		colorIndex := i % len(domain.ChartPalette)
		summary.Slices[i] = domain.CategorySlice{
			Label:      util.FormatCategory(bucket.raw),
			Total:      bucket.total,
			ColorIndex: colorIndex,
			Color:      domain.ChartPalette[colorIndex],
		}
		summary.Total = summary.Total.Add(bucket.total)
	}
	return summary
}
