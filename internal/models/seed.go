package models

import (
	"github.com/shopspring/decimal"
)

// seedTransactions are the starter records for a first run.
var seedTransactions = []Transaction{
	{Amount: decimal.NewFromInt(2500), Category: "Salary", Description: "Monthly salary", Type: TypeIncome},
	{Amount: decimal.NewFromInt(300), Category: "Freelance", Description: "Web project", Type: TypeIncome},
	{Amount: decimal.NewFromInt(800), Category: "Rent", Description: "Monthly rent", Type: TypeExpense},
	{Amount: decimal.NewFromInt(150), Category: "Groceries", Description: "Food shopping", Type: TypeExpense},
	{Amount: decimal.NewFromInt(60), Category: "Utilities", Description: "Electric bill", Type: TypeExpense},
}

// Seed appends the starter records so that the dashboard has something to
// show on the first run. A ledger that already has transactions is left
// untouched.
func (l *Ledger) Seed() error {
	if l.Summary().Count > 0 {
		return nil
	}

	for _, t := range seedTransactions {
		if _, err := l.Append(t); err != nil {
			return err
		}
	}

	return nil
}
