package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tallybook/backend/internal/types"
)

// Ledger is the transaction store. It keeps the full transaction sequence
// in memory and mirrors it to a single JSON file on every append.
type Ledger struct {
	path string

	mu           sync.RWMutex
	transactions []Transaction
}

// Summary are the headline figures computed over the full ledger.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	Count        int             `json:"count"`
}

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Path returns the location of the backing file.
func (l *Ledger) Path() string {
	return l.path
}

// Append validates the user-settable fields of t, assigns its ID and Date
// and writes the updated sequence to the ledger file.
//
// IDs count up from 1 in insertion order. The date is the insertion date,
// taken from the system clock. Any ID or Date already set on t is ignored.
func (l *Ledger) Append(t Transaction) (Transaction, error) {
	if err := t.validate(); err != nil {
		return Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	t.ID = uint64(len(l.transactions)) + 1
	t.Date = types.DateOf(time.Now())

	l.transactions = append(l.transactions, t)
	if err := l.persist(); err != nil {
		// The in-memory sequence must keep matching the file
		l.transactions = l.transactions[:len(l.transactions)-1]

		log.Error().Msgf("%T: %v", err, err.Error())
		return Transaction{}, ErrGeneral
	}

	return t, nil
}

// persist writes the full transaction sequence to the ledger file,
// replacing its previous content. Callers must hold the write lock.
func (l *Ledger) persist() error {
	data, err := json.MarshalIndent(l.transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}

	return nil
}

// Summary recomputes the headline figures from the full sequence.
func (l *Ledger) Summary() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var s Summary
	for _, t := range l.transactions {
		switch t.Type {
		case TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case TypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	s.Count = len(l.transactions)

	return s
}

// CategoryTotals sums expense amounts per category. Categories appear in
// the order of their first expense transaction. Categories that only have
// income transactions do not appear at all.
func (l *Ledger) CategoryTotals() []CategoryTotal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	totals := []CategoryTotal{}
	index := map[string]int{}

	for _, t := range l.transactions {
		if t.Type != TypeExpense {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryTotal{Category: t.Category})
		}

		totals[i].Total = totals[i].Total.Add(t.Amount)
	}

	return totals
}

// Transaction returns the transaction with the given ID.
func (l *Ledger) Transaction(id uint64) (Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, t := range l.transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return Transaction{}, fmt.Errorf("%w transaction matching your query", ErrResourceNotFound)
}

// Last returns the most recent n transactions in insertion order.
func (l *Ledger) Last(n int) []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.transactions) {
		n = len(l.transactions)
	}

	if n <= 0 {
		return []Transaction{}
	}

	return append([]Transaction{}, l.transactions[len(l.transactions)-n:]...)
}

// All returns a copy of the full transaction sequence in insertion order.
func (l *Ledger) All() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]Transaction{}, l.transactions...)
}

// Ping verifies that the location of the backing file is still reachable.
// The file itself may not exist yet.
func (l *Ledger) Ping() error {
	_, err := os.Stat(filepath.Dir(l.path))
	return err
}
