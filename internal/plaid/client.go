// Package plaid implements the aggregation-provider boundary against Plaid's
// REST API.
package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/devikapo/budget-server/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// Environments maps a configured environment name to its API base URL.
var Environments = map[string]string{
	"sandbox":     "https://sandbox.plaid.com",
	"development": "https://development.plaid.com",
	"production":  "https://production.plaid.com",
}

const (
	dateLayout     = "2006-01-02"
	requestTimeout = 30 * time.Second

	// transactionsPageSize matches the page size the mobile client was
	// tuned for; paging beyond the first page is not implemented.
	transactionsPageSize = 500

	// Outbound requests per second; Plaid's development tier throttles
	// well below this.
	outboundRateLimit = 10
	outboundBurst     = 10
)

// Client calls the provider API. It implements domain.ProviderClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	secret     string
	clientName string
	limiter    *rate.Limiter
}

// Config carries the provider credentials and environment.
type Config struct {
	ClientID    string
	Secret      string
	Environment string
	ClientName  string
	// BaseURL overrides the environment lookup; used by tests.
	BaseURL string
}

// NewClient creates a provider client for the configured environment.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		var ok bool
		baseURL, ok = Environments[cfg.Environment]
		if !ok {
			return nil, fmt.Errorf("unknown provider environment %q", cfg.Environment)
		}
	}
	clientName := cfg.ClientName
	if clientName == "" {
		clientName = "Budget App"
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		clientID:   cfg.ClientID,
		secret:     cfg.Secret,
		clientName: clientName,
		limiter:    rate.NewLimiter(rate.Limit(outboundRateLimit), outboundBurst),
	}, nil
}

// APIError is a non-2xx response from the provider.
type APIError struct {
	StatusCode   int    `json:"-"`
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	RequestID    string `json:"request_id"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider error %s (%s): %s", e.ErrorCode, e.ErrorType, e.ErrorMessage)
}

// post sends a JSON body to the given path with the credential headers and
// decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("PLAID-CLIENT-ID", c.clientID)
	req.Header.Set("PLAID-SECRET", c.secret)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("provider request")

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil || json.Unmarshal(data, apiErr) != nil || apiErr.ErrorCode == "" {
			return fmt.Errorf("provider returned status %d", resp.StatusCode)
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateLinkToken requests a link token for the single-user client.
func (c *Client) CreateLinkToken(ctx context.Context) (*domain.LinkToken, error) {
	body := map[string]interface{}{
		"user":          map[string]string{"client_user_id": "user-123"},
		"client_name":   c.clientName,
		"products":      []string{"transactions"},
		"country_codes": []string{"US"},
		"language":      "en",
	}
	var out domain.LinkToken
	if err := c.post(ctx, "/link/token/create", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExchangePublicToken swaps a public token for item credentials.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*domain.ExchangeResult, error) {
	body := map[string]string{"public_token": publicToken}
	var out struct {
		AccessToken string `json:"access_token"`
		ItemID      string `json:"item_id"`
	}
	if err := c.post(ctx, "/item/public_token/exchange", body, &out); err != nil {
		return nil, err
	}
	return &domain.ExchangeResult{AccessToken: out.AccessToken, ItemID: out.ItemID}, nil
}

// GetItem fetches the item metadata for an access token.
func (c *Client) GetItem(ctx context.Context, accessToken string) (*domain.ItemInfo, error) {
	body := map[string]string{"access_token": accessToken}
	var out struct {
		Item struct {
			ItemID        string  `json:"item_id"`
			InstitutionID *string `json:"institution_id"`
		} `json:"item"`
	}
	if err := c.post(ctx, "/item/get", body, &out); err != nil {
		return nil, err
	}
	return &domain.ItemInfo{ItemID: out.Item.ItemID, InstitutionID: out.Item.InstitutionID}, nil
}

// GetInstitutionName resolves an institution id to its display name.
func (c *Client) GetInstitutionName(ctx context.Context, institutionID string) (string, error) {
	body := map[string]interface{}{
		"institution_id": institutionID,
		"country_codes":  []string{"US"},
	}
	var out struct {
		Institution struct {
			Name string `json:"name"`
		} `json:"institution"`
	}
	if err := c.post(ctx, "/institutions/get_by_id", body, &out); err != nil {
		return "", err
	}
	return out.Institution.Name, nil
}

type wireAccount struct {
	AccountID    string  `json:"account_id"`
	Name         string  `json:"name"`
	OfficialName *string `json:"official_name"`
	Mask         *string `json:"mask"`
	Type         string  `json:"type"`
	Subtype      *string `json:"subtype"`
	Balances     struct {
		Available       *decimal.Decimal `json:"available"`
		Current         *decimal.Decimal `json:"current"`
		Limit           *decimal.Decimal `json:"limit"`
		ISOCurrencyCode *string          `json:"iso_currency_code"`
	} `json:"balances"`
}

func (w *wireAccount) toDomain() *domain.Account {
	return &domain.Account{
		AccountID:    w.AccountID,
		Name:         w.Name,
		OfficialName: w.OfficialName,
		Mask:         w.Mask,
		Type:         w.Type,
		Subtype:      w.Subtype,
		Balances: domain.AccountBalances{
			Available:       w.Balances.Available,
			Current:         w.Balances.Current,
			Limit:           w.Balances.Limit,
			ISOCurrencyCode: w.Balances.ISOCurrencyCode,
		},
	}
}

// GetAccounts fetches all accounts under an access token.
func (c *Client) GetAccounts(ctx context.Context, accessToken string) ([]*domain.Account, error) {
	body := map[string]string{"access_token": accessToken}
	var out struct {
		Accounts []wireAccount `json:"accounts"`
	}
	if err := c.post(ctx, "/accounts/get", body, &out); err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, len(out.Accounts))
	for i := range out.Accounts {
		accounts[i] = out.Accounts[i].toDomain()
	}
	return accounts, nil
}

type wireTransaction struct {
	TransactionID           string                          `json:"transaction_id"`
	AccountID               string                          `json:"account_id"`
	Name                    string                          `json:"name"`
	MerchantName            *string                         `json:"merchant_name"`
	Amount                  decimal.Decimal                 `json:"amount"`
	Date                    string                          `json:"date"`
	Pending                 bool                            `json:"pending"`
	Category                []string                        `json:"category"`
	PersonalFinanceCategory *domain.PersonalFinanceCategory `json:"personal_finance_category"`
}

func (w *wireTransaction) toDomain() (*domain.Transaction, error) {
	// Calendar dates only; parsed at UTC midnight so range checks never
	// depend on the host timezone.
	date, err := time.ParseInLocation(dateLayout, w.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: bad date %q: %w", w.TransactionID, w.Date, err)
	}
	return &domain.Transaction{
		ID:                      w.TransactionID,
		AccountID:               w.AccountID,
		Name:                    w.Name,
		MerchantName:            w.MerchantName,
		Amount:                  w.Amount,
		Date:                    date,
		Pending:                 w.Pending,
		Categories:              w.Category,
		PersonalFinanceCategory: w.PersonalFinanceCategory,
	}, nil
}

// GetTransactions fetches the first page of transactions for the query
// window, optionally restricted to specific accounts.
func (c *Client) GetTransactions(ctx context.Context, accessToken string, query domain.TransactionQuery) ([]*domain.Transaction, error) {
	options := map[string]interface{}{
		"count":  transactionsPageSize,
		"offset": 0,
	}
	if len(query.AccountIDs) > 0 {
		options["account_ids"] = query.AccountIDs
	}
	body := map[string]interface{}{
		"access_token": accessToken,
		"start_date":   query.StartDate.Format(dateLayout),
		"end_date":     query.EndDate.Format(dateLayout),
		"options":      options,
	}
	var out struct {
		Transactions []wireTransaction `json:"transactions"`
	}
	if err := c.post(ctx, "/transactions/get", body, &out); err != nil {
		return nil, err
	}
	transactions := make([]*domain.Transaction, 0, len(out.Transactions))
	for i := range out.Transactions {
		tx, err := out.Transactions[i].toDomain()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// RemoveItem revokes an item's access token at the provider.
func (c *Client) RemoveItem(ctx context.Context, accessToken string) error {
	body := map[string]string{"access_token": accessToken}
	var out struct {
		RequestID string `json:"request_id"`
	}
	return c.post(ctx, "/item/remove", body, &out)
}

var _ domain.ProviderClient = (*Client)(nil)
