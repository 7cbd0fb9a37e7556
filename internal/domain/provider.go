package domain

import "context"

// LinkToken is a short-lived token the mobile client uses to open the
// provider's link flow.
type LinkToken struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// ExchangeResult is the outcome of swapping a public token for item
// credentials.
type ExchangeResult struct {
	AccessToken string
	ItemID      string
}

// ItemInfo is the provider's metadata for a linked item.
type ItemInfo struct {
	ItemID        string
	InstitutionID *string
}

// ProviderClient is the boundary to the bank-aggregation provider. All real
// bank-protocol handling lives behind it.
type ProviderClient interface {
	CreateLinkToken(ctx context.Context) (*LinkToken, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*ExchangeResult, error)
	GetItem(ctx context.Context, accessToken string) (*ItemInfo, error)
	GetInstitutionName(ctx context.Context, institutionID string) (string, error)
	GetAccounts(ctx context.Context, accessToken string) ([]*Account, error)
	GetTransactions(ctx context.Context, accessToken string, query TransactionQuery) ([]*Transaction, error)
	RemoveItem(ctx context.Context, accessToken string) error
}
