package domain

import "errors"

// Domain errors
var (
	ErrViewNotFound           = errors.New("view not found")
	ErrItemNotFound           = errors.New("item not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrPublicTokenRequired    = errors.New("public token is required")
)
