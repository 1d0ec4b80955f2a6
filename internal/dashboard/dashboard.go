// Package dashboard assembles the data for the rendered dashboard page.
//
// All formatting happens here so that the template only places values into
// markup.
package dashboard

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tallybook/backend/internal/chart"
	"github.com/tallybook/backend/internal/models"
)

// recentLimit is the number of transactions shown on the dashboard.
const recentLimit = 10

// RefreshSeconds is the auto-refresh interval of the rendered page.
const RefreshSeconds = 5

var printer = message.NewPrinter(language.AmericanEnglish)

// CategoryOption is one entry of the fixed suggestion list in the entry
// form. The list is a convenience, the ledger accepts any category.
type CategoryOption struct {
	Name  string
	Emoji string
}

// CategoryOptions is the fixed suggestion list for the category field.
var CategoryOptions = []CategoryOption{
	{"Salary", "💼"},
	{"Freelance", "💻"},
	{"Investment", "📈"},
	{"Rent", "🏠"},
	{"Groceries", "🛒"},
	{"Utilities", "⚡"},
	{"Transportation", "🚗"},
	{"Entertainment", "🎬"},
	{"Healthcare", "🏥"},
	{"Other", "📌"},
}

// Page is one complete snapshot for the dashboard template.
type Page struct {
	Summary        Summary
	Slices         []Slice
	Recent         []Transaction
	Categories     []CategoryOption
	RefreshSeconds int
}

// Summary holds the formatted headline figures for the four stat tiles.
type Summary struct {
	TotalIncome  string
	TotalExpense string
	Balance      string
	BalanceClass string
	Count        int
}

// Slice is a pie slice together with its formatted legend amount.
type Slice struct {
	chart.Slice
	Total string
}

// Transaction is one row of the recent transaction list.
type Transaction struct {
	Category    string
	Description string
	Amount      string
	Date        string
	Income      bool
}

// Build assembles the page from the current ledger state. The recent
// transaction list is newest first and capped at ten entries.
func Build(ledger *models.Ledger) Page {
	summary := ledger.Summary()

	balanceClass := "positive"
	if summary.Balance.IsNegative() {
		balanceClass = "negative"
	}

	page := Page{
		Summary: Summary{
			TotalIncome:  Amount(summary.TotalIncome),
			TotalExpense: Amount(summary.TotalExpense),
			Balance:      Amount(summary.Balance),
			BalanceClass: balanceClass,
			Count:        summary.Count,
		},
		Categories:     CategoryOptions,
		RefreshSeconds: RefreshSeconds,
	}

	for _, slice := range chart.Pie(ledger.CategoryTotals()) {
		page.Slices = append(page.Slices, Slice{Slice: slice, Total: Amount(slice.Value)})
	}

	recent := ledger.Last(recentLimit)
	for i := len(recent) - 1; i >= 0; i-- {
		t := recent[i]
		page.Recent = append(page.Recent, Transaction{
			Category:    t.Category,
			Description: t.Description,
			Amount:      Amount(t.Amount),
			Date:        t.Date.String(),
			Income:      t.Type == models.TypeIncome,
		})
	}

	return page
}

// Amount formats a decimal as a dollar amount with two decimal places and
// English digit grouping.
func Amount(amount decimal.Decimal) string {
	return printer.Sprintf("$%.2f", amount.InexactFloat64())
}
