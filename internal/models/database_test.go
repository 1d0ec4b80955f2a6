package models_test

import (
	"os"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallybook/backend/internal/models"
	"github.com/tallybook/backend/test"
)

func (suite *TestSuiteStandard) TestConnectMissingFile() {
	assert.Equal(suite.T(), 0, suite.ledger.Summary().Count)
	assert.Empty(suite.T(), suite.ledger.All())
}

func (suite *TestSuiteStandard) TestConnectEmptyFile() {
	path := test.TmpFile(suite.T())
	require.Nil(suite.T(), os.WriteFile(path, []byte("  \n"), 0o644))

	ledger, err := models.Connect(path)

	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 0, ledger.Summary().Count)
}

func (suite *TestSuiteStandard) TestConnectCorruptFile() {
	path := test.TmpFile(suite.T())
	require.Nil(suite.T(), os.WriteFile(path, []byte(`{"this is": "not a transaction list"`), 0o644))

	_, err := models.Connect(path)

	assert.ErrorIs(suite.T(), err, models.ErrLedgerCorrupt, "Error is: %s", err)
}
