package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FallbackCategory is assigned to transactions that carry no category
// information at all.
const FallbackCategory = "Other"

// PersonalFinanceCategory is the provider's finer-grained taxonomy entry.
type PersonalFinanceCategory struct {
	Primary  string `json:"primary"`
	Detailed string `json:"detailed,omitempty"`
}

// Transaction is a single entry from the aggregation provider's feed.
//
// Sign convention: a negative amount is money leaving the account (spending),
// a positive amount is money entering it (income). Classification depends on
// this, so amounts must be preserved exactly as received from the provider.
type Transaction struct {
	ID                      string                   `json:"transaction_id"`
	ItemID                  string                   `json:"item_id,omitempty"`
	AccountID               string                   `json:"account_id"`
	Name                    string                   `json:"name"`
	MerchantName            *string                  `json:"merchant_name,omitempty"`
	Amount                  decimal.Decimal          `json:"amount"`
	Date                    time.Time                `json:"date"`
	Pending                 bool                     `json:"pending"`
	Categories              []string                 `json:"category,omitempty"`
	PersonalFinanceCategory *PersonalFinanceCategory `json:"personal_finance_category,omitempty"`
}

// ResolvedCategory returns the single category label for the transaction:
// the personal-finance primary when non-empty, else the first legacy
// category, else FallbackCategory.
func (t *Transaction) ResolvedCategory() string {
	if t.PersonalFinanceCategory != nil && t.PersonalFinanceCategory.Primary != "" {
		return t.PersonalFinanceCategory.Primary
	}
	if len(t.Categories) > 0 && t.Categories[0] != "" {
		return t.Categories[0]
	}
	return FallbackCategory
}

// IsSpending reports whether the transaction counts as spending.
// A zero amount is neither spending nor income.
func (t *Transaction) IsSpending() bool {
	return t.Amount.Sign() < 0
}

// IsIncome reports whether the transaction counts as income.
func (t *Transaction) IsIncome() bool {
	return t.Amount.Sign() > 0
}

// TransactionQuery describes a provider transaction fetch.
type TransactionQuery struct {
	StartDate  time.Time
	EndDate    time.Time
	AccountIDs []string
}
