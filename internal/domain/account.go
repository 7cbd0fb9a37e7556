package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalances mirrors the provider's balance object for an account.
type AccountBalances struct {
	Available       *decimal.Decimal `json:"available"`
	Current         *decimal.Decimal `json:"current"`
	Limit           *decimal.Decimal `json:"limit,omitempty"`
	ISOCurrencyCode *string          `json:"iso_currency_code,omitempty"`
}

// Account is a bank account under a linked item.
type Account struct {
	AccountID    string          `json:"account_id"`
	Name         string          `json:"name"`
	OfficialName *string         `json:"official_name,omitempty"`
	Mask         *string         `json:"mask,omitempty"`
	Type         string          `json:"type"`
	Subtype      *string         `json:"subtype,omitempty"`
	Balances     AccountBalances `json:"balances"`
}

// ItemAccounts groups an item's accounts with its institution metadata.
type ItemAccounts struct {
	ItemID          string     `json:"item_id"`
	InstitutionID   *string    `json:"institution_id"`
	InstitutionName *string    `json:"institution_name"`
	Accounts        []*Account `json:"accounts"`
}

// AccountBalance is a flattened account entry tagged with its item.
type AccountBalance struct {
	Account
	ItemID          string  `json:"item_id"`
	InstitutionID   *string `json:"institution_id"`
	InstitutionName *string `json:"institution_name"`
}

// BalancePoint is one day of a reconstructed balance series.
type BalancePoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}
