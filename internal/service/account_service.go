package service

import (
	"context"
	"sort"
	"time"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/shopspring/decimal"
)

// historyFloor bounds the balance-history lookback when no start is given.
var historyFloor = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// AccountService serves account listings, balances, and reconstructed
// balance history across all linked items.
type AccountService struct {
	provider domain.ProviderClient
	itemRepo domain.ItemRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(provider domain.ProviderClient, itemRepo domain.ItemRepository) *AccountService {
	return &AccountService{provider: provider, itemRepo: itemRepo}
}

// ItemsWithAccounts returns every linked item with its accounts.
func (s *AccountService) ItemsWithAccounts(ctx context.Context) ([]*domain.ItemAccounts, error) {
	items := s.itemRepo.List()
	result := make([]*domain.ItemAccounts, 0, len(items))
	for _, item := range items {
		accounts, err := s.provider.GetAccounts(ctx, item.AccessToken)
		if err != nil {
			return nil, err
		}
		result = append(result, &domain.ItemAccounts{
			ItemID:          item.ItemID,
			InstitutionID:   item.InstitutionID,
			InstitutionName: item.InstitutionName,
			Accounts:        accounts,
		})
	}
	return result, nil
}

// Balances returns every account across all items, flattened and tagged with
// item and institution metadata.
func (s *AccountService) Balances(ctx context.Context) ([]*domain.AccountBalance, error) {
	items := s.itemRepo.List()
	balances := make([]*domain.AccountBalance, 0)
	for _, item := range items {
		accounts, err := s.provider.GetAccounts(ctx, item.AccessToken)
		if err != nil {
			return nil, err
		}
		for _, account := range accounts {
			balances = append(balances, &domain.AccountBalance{
				Account:         *account,
				ItemID:          item.ItemID,
				InstitutionID:   item.InstitutionID,
				InstitutionName: item.InstitutionName,
			})
		}
	}
	return balances, nil
}

// BalanceHistory reconstructs a daily balance series for one account by
// walking backwards from the account's current balance: each day's point
// carries the balance at end of day, and moving to the previous day
// subtracts that day's net transaction amount. Days without transactions
// still get a point. The series is returned oldest first.
func (s *AccountService) BalanceHistory(ctx context.Context, accountID string, start, end *time.Time) ([]domain.BalancePoint, error) {
	items := s.itemRepo.List()
	if len(items) == 0 {
		return []domain.BalancePoint{}, nil
	}

	fetchStart := historyFloor
	if start != nil {
		fetchStart = truncateToDay(*start)
	}
	fetchEnd := truncateToDay(time.Now().UTC())
	if end != nil {
		fetchEnd = truncateToDay(*end)
	}

	var transactions []*domain.Transaction
	for _, item := range items {
		fetched, err := s.provider.GetTransactions(ctx, item.AccessToken, domain.TransactionQuery{
			StartDate:  fetchStart,
			EndDate:    fetchEnd,
			AccountIDs: []string{accountID},
		})
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, fetched...)
	}
	if len(transactions) == 0 {
		return []domain.BalancePoint{}, nil
	}

	current, err := s.currentBalance(ctx, items, accountID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	// Net amount and count per day, so the walk can tell when every
	// transaction has been consumed.
	type dayTotal struct {
		net   decimal.Decimal
		count int
	}
	byDay := make(map[time.Time]dayTotal)
	for _, tx := range transactions {
		day := truncateToDay(tx.Date)
		entry := byDay[day]
		entry.net = entry.net.Add(tx.Amount)
		entry.count++
		byDay[day] = entry
	}

	var history []domain.BalancePoint
	running := current
	day := truncateToDay(transactions[0].Date)
	consumed := 0
	for consumed < len(transactions) {
		entry := byDay[day]
		history = append(history, domain.BalancePoint{Date: day, Balance: running})
		running = running.Sub(entry.net)
		consumed += entry.count
		day = day.AddDate(0, 0, -1)
	}

	// Walk produced newest first; callers want oldest first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

// currentBalance finds the account's current balance across all items.
func (s *AccountService) currentBalance(ctx context.Context, items []*domain.Item, accountID string) (decimal.Decimal, error) {
	for _, item := range items {
		accounts, err := s.provider.GetAccounts(ctx, item.AccessToken)
		if err != nil {
			return decimal.Zero, err
		}
		for _, account := range accounts {
			if account.AccountID == accountID && account.Balances.Current != nil {
				return *account.Balances.Current, nil
			}
		}
	}
	return decimal.Zero, domain.ErrAccountNotFound
}
