package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/tallybook/backend/internal/types"
)

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

var (
	ErrAmountNegative      = errors.New("the amount must not be negative")
	ErrCategoryRequired    = errors.New("the category must be set")
	ErrDescriptionRequired = errors.New("the description must be set")
	ErrTypeInvalid         = errors.New("the type must be \"income\" or \"expense\"")
)

// Transaction represents a single income or expense record.
//
// ID and Date are assigned by the ledger on append and are never
// modified afterwards.
type Transaction struct {
	ID          uint64          `json:"id"`
	Date        types.Date      `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
}

// validate checks the user-settable fields.
func (t Transaction) validate() error {
	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if t.Category == "" {
		return ErrCategoryRequired
	}

	if t.Description == "" {
		return ErrDescriptionRequired
	}

	if t.Type != TypeIncome && t.Type != TypeExpense {
		return ErrTypeInvalid
	}

	return nil
}
