package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallybook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestLedgerSeed() {
	require.Nil(suite.T(), suite.ledger.Seed())

	summary := suite.ledger.Summary()
	assert.Equal(suite.T(), 5, summary.Count)
	assert.True(suite.T(), summary.TotalIncome.Equal(decimal.NewFromInt(2800)), "Total income is %s", summary.TotalIncome)
	assert.True(suite.T(), summary.TotalExpense.Equal(decimal.NewFromInt(1010)), "Total expense is %s", summary.TotalExpense)

	// Seeding is idempotent
	require.Nil(suite.T(), suite.ledger.Seed())
	assert.Equal(suite.T(), 5, suite.ledger.Summary().Count)
}

func (suite *TestSuiteStandard) TestLedgerSeedSkipsNonEmpty() {
	suite.appendTestTransaction(models.Transaction{
		Amount:      decimal.NewFromInt(42),
		Category:    "Groceries",
		Description: "Food shopping",
		Type:        models.TypeExpense,
	})

	require.Nil(suite.T(), suite.ledger.Seed())

	assert.Equal(suite.T(), 1, suite.ledger.Summary().Count)
}
