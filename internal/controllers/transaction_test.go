package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tallybook/backend/internal/controllers"
	"github.com/tallybook/backend/internal/models"
	"github.com/tallybook/backend/test"
)

// seedTestTransactions appends a fixed set of transactions for the list tests.
func (suite *TestSuiteStandard) seedTestTransactions() {
	for _, transaction := range []models.Transaction{
		{Amount: decimal.NewFromInt(2500), Category: "Salary", Description: "Monthly salary", Type: models.TypeIncome},
		{Amount: decimal.NewFromInt(800), Category: "Rent", Description: "Monthly rent", Type: models.TypeExpense},
		{Amount: decimal.NewFromInt(150), Category: "Groceries", Description: "Weekly shopping", Type: models.TypeExpense},
		{Amount: decimal.NewFromInt(300), Category: "Freelance", Description: "Website project", Type: models.TypeIncome},
		{Amount: decimal.NewFromInt(60), Category: "Utilities", Description: "Electricity bill", Type: models.TypeExpense},
	} {
		suite.appendTestTransaction(transaction)
	}
}

func (suite *TestSuiteStandard) TestTransactions() {
	suite.seedTestTransactions()

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 5)

	// The list is sorted newest first
	assert.Equal(suite.T(), "Utilities", response.Data[0].Category)
	assert.Equal(suite.T(), "Salary", response.Data[4].Category)

	assert.Equal(suite.T(), 5, response.Pagination.Count)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
	assert.Equal(suite.T(), uint(0), response.Pagination.Offset)
	assert.Equal(suite.T(), 50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestTransactionsEmpty() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data, 0)
	assert.Equal(suite.T(), int64(0), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsFilterCategory() {
	suite.seedTestTransactions()

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"Exact match", "category=Rent", 1},
		{"Glob suffix", "category=Gro*", 1},
		{"Glob middle", "category=*e*", 4},
		{"No match", "category=Vacation", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/api/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data, tt.expected)
			assert.Equal(t, int64(tt.expected), response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsFilterType() {
	suite.seedTestTransactions()

	tests := []struct {
		name     string
		query    string
		expected int
		theType  models.TransactionType
	}{
		{"Income", "type=income", 2, models.TypeIncome},
		{"Expense", "type=expense", 3, models.TypeExpense},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/api/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data, tt.expected)
			for _, transaction := range response.Data {
				assert.Equal(t, tt.theType, transaction.Type)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsFilterTypeInvalid() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/v1/transactions?type=transfer", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "the specified transaction type is invalid", *response.Error)
}

func (suite *TestSuiteStandard) TestTransactionsInvalidQuery() {
	tests := []string{
		"offset=-1",
		"offset=printer",
		"limit=eleven",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/api/v1/transactions?%s", tt), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response controllers.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "the query string contains unparseable data. Please check the values", *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	for i := 1; i <= 12; i++ {
		suite.appendTestTransaction(models.Transaction{
			Amount:      decimal.NewFromInt(int64(i)),
			Category:    "Groceries",
			Description: fmt.Sprintf("Purchase %d", i),
			Type:        models.TypeExpense,
		})
	}

	tests := []struct {
		name          string
		query         string
		expectedCount int
		firstID       uint64
	}{
		{"Default limit", "", 12, 12},
		{"All", "limit=-1", 12, 12},
		{"Limit", "limit=5", 5, 12},
		{"Limit 0", "limit=0", 0, 0},
		{"Offset", "offset=10", 2, 2},
		{"Offset beyond end", "offset=30", 0, 0},
		{"Offset and limit", "offset=4&limit=4", 4, 8},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/api/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data, tt.expectedCount)
			assert.Equal(t, tt.expectedCount, response.Pagination.Count)
			assert.Equal(t, int64(12), response.Pagination.Total)

			if tt.expectedCount > 0 {
				assert.Equal(t, tt.firstID, response.Data[0].ID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	created := suite.appendTestTransaction(models.Transaction{Amount: decimal.NewFromInt(800), Category: "Rent", Description: "Monthly rent", Type: models.TypeExpense})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/v1/transactions/%d", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), created.ID, response.Data.ID)
	assert.Equal(suite.T(), "Rent", response.Data.Category)
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/v1/transactions/4711", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "there is no transaction matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestGetTransactionInvalidID() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/v1/transactions/picturesque", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "the specified transaction ID is not a valid number", *response.Error)
}

func (suite *TestSuiteStandard) TestOptionsTransactions() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/api/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))

	recorder = test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/api/v1/transactions/1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
}
