package testutil

import (
	"context"
	"fmt"

	"github.com/devikapo/budget-server/internal/domain"
)

// MockProviderClient is a mock implementation of domain.ProviderClient.
// Fixtures are keyed by access token; every method can be overridden with a
// Fn field for error-path tests.
type MockProviderClient struct {
	Transactions map[string][]*domain.Transaction
	Accounts     map[string][]*domain.Account
	Items        map[string]*domain.ItemInfo
	Institutions map[string]string
	Removed      []string

	CreateLinkTokenFn     func(ctx context.Context) (*domain.LinkToken, error)
	ExchangePublicTokenFn func(ctx context.Context, publicToken string) (*domain.ExchangeResult, error)
	GetTransactionsFn     func(ctx context.Context, accessToken string, query domain.TransactionQuery) ([]*domain.Transaction, error)
	GetAccountsFn         func(ctx context.Context, accessToken string) ([]*domain.Account, error)
	RemoveItemFn          func(ctx context.Context, accessToken string) error

	// TransactionQueries records every query passed to GetTransactions.
	TransactionQueries []domain.TransactionQuery
}

// NewMockProviderClient creates a new MockProviderClient.
func NewMockProviderClient() *MockProviderClient {
	return &MockProviderClient{
		Transactions: make(map[string][]*domain.Transaction),
		Accounts:     make(map[string][]*domain.Account),
		Items:        make(map[string]*domain.ItemInfo),
		Institutions: make(map[string]string),
	}
}

// CreateLinkToken returns a canned link token.
func (m *MockProviderClient) CreateLinkToken(ctx context.Context) (*domain.LinkToken, error) {
	if m.CreateLinkTokenFn != nil {
		return m.CreateLinkTokenFn(ctx)
	}
	return &domain.LinkToken{LinkToken: "link-sandbox-token", Expiration: "2024-01-01T00:30:00Z"}, nil
}

// ExchangePublicToken maps public-token-N to access-token-N / item-N.
func (m *MockProviderClient) ExchangePublicToken(ctx context.Context, publicToken string) (*domain.ExchangeResult, error) {
	if m.ExchangePublicTokenFn != nil {
		return m.ExchangePublicTokenFn(ctx, publicToken)
	}
	return &domain.ExchangeResult{
		AccessToken: "access-" + publicToken,
		ItemID:      "item-" + publicToken,
	}, nil
}

// GetItem returns the fixture for the access token.
func (m *MockProviderClient) GetItem(ctx context.Context, accessToken string) (*domain.ItemInfo, error) {
	if info, ok := m.Items[accessToken]; ok {
		return info, nil
	}
	return &domain.ItemInfo{ItemID: "item-unknown"}, nil
}

// GetInstitutionName returns the fixture for the institution id.
func (m *MockProviderClient) GetInstitutionName(ctx context.Context, institutionID string) (string, error) {
	if name, ok := m.Institutions[institutionID]; ok {
		return name, nil
	}
	return "", fmt.Errorf("unknown institution %q", institutionID)
}

// GetAccounts returns the fixture for the access token.
func (m *MockProviderClient) GetAccounts(ctx context.Context, accessToken string) ([]*domain.Account, error) {
	if m.GetAccountsFn != nil {
		return m.GetAccountsFn(ctx, accessToken)
	}
	return m.Accounts[accessToken], nil
}

// GetTransactions returns the fixture for the access token, filtered by the
// query's account ids when set.
func (m *MockProviderClient) GetTransactions(ctx context.Context, accessToken string, query domain.TransactionQuery) ([]*domain.Transaction, error) {
	m.TransactionQueries = append(m.TransactionQueries, query)
	if m.GetTransactionsFn != nil {
		return m.GetTransactionsFn(ctx, accessToken, query)
	}

	fixtures := m.Transactions[accessToken]
	if len(query.AccountIDs) == 0 {
		return cloneTransactions(fixtures), nil
	}
	wanted := make(map[string]struct{}, len(query.AccountIDs))
	for _, id := range query.AccountIDs {
		wanted[id] = struct{}{}
	}
	var out []*domain.Transaction
	for _, tx := range fixtures {
		if _, ok := wanted[tx.AccountID]; ok {
			out = append(out, tx)
		}
	}
	return cloneTransactions(out), nil
}

// RemoveItem records the removal.
func (m *MockProviderClient) RemoveItem(ctx context.Context, accessToken string) error {
	if m.RemoveItemFn != nil {
		return m.RemoveItemFn(ctx, accessToken)
	}
	m.Removed = append(m.Removed, accessToken)
	return nil
}

// AddTransaction adds a transaction fixture under the given access token.
func (m *MockProviderClient) AddTransaction(accessToken string, tx *domain.Transaction) {
	m.Transactions[accessToken] = append(m.Transactions[accessToken], tx)
}

// AddAccount adds an account fixture under the given access token.
func (m *MockProviderClient) AddAccount(accessToken string, account *domain.Account) {
	m.Accounts[accessToken] = append(m.Accounts[accessToken], account)
}

func cloneTransactions(in []*domain.Transaction) []*domain.Transaction {
	out := make([]*domain.Transaction, len(in))
	for i, tx := range in {
		copied := *tx
		out[i] = &copied
	}
	return out
}
