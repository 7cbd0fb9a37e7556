package service

import (
	"context"
	"sort"
	"time"

	"github.com/devikapo/budget-server/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultWindowDays is the transaction window used when the caller
	// supplies no start date.
	DefaultWindowDays = 30
	// maxConcurrentItemFetches bounds the provider fan-out.
	maxConcurrentItemFetches = 4
)

// TransactionService merges the transaction feeds of all linked items.
type TransactionService struct {
	provider domain.ProviderClient
	itemRepo domain.ItemRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(provider domain.ProviderClient, itemRepo domain.ItemRepository) *TransactionService {
	return &TransactionService{provider: provider, itemRepo: itemRepo}
}

// resolveWindow fills absent bounds: the end defaults to today and the start
// to DefaultWindowDays before the end. Dates are truncated to UTC midnight.
func resolveWindow(start, end *time.Time) (time.Time, time.Time) {
	resolvedEnd := time.Now().UTC()
	if end != nil {
		resolvedEnd = *end
	}
	resolvedEnd = truncateToDay(resolvedEnd)

	resolvedStart := resolvedEnd.AddDate(0, 0, -DefaultWindowDays)
	if start != nil {
		resolvedStart = truncateToDay(*start)
	}
	return resolvedStart, resolvedEnd
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FetchTransactions fetches the window from every linked item, tags each
// transaction with its item id, and returns the merged feed sorted by date
// descending. With no linked items the feed is empty, not an error.
func (s *TransactionService) FetchTransactions(ctx context.Context, start, end *time.Time) ([]*domain.Transaction, error) {
	items := s.itemRepo.List()
	if len(items) == 0 {
		return []*domain.Transaction{}, nil
	}

	resolvedStart, resolvedEnd := resolveWindow(start, end)

	// One result slot per item keeps the merge order deterministic
	// regardless of which fetch finishes first.
	perItem := make([][]*domain.Transaction, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentItemFetches)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			transactions, err := s.provider.GetTransactions(ctx, item.AccessToken, domain.TransactionQuery{
				StartDate: resolvedStart,
				EndDate:   resolvedEnd,
			})
			if err != nil {
				return err
			}
			for _, tx := range transactions {
				tx.ItemID = item.ItemID
			}
			perItem[i] = transactions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []*domain.Transaction
	for _, transactions := range perItem {
		merged = append(merged, transactions...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	if merged == nil {
		merged = []*domain.Transaction{}
	}
	return merged, nil
}
