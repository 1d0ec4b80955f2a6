package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrLedgerCorrupt is returned by Connect when the ledger file exists
	// but cannot be parsed as a transaction list. A missing file is not an
	// error.
	ErrLedgerCorrupt = errors.New("the ledger file could not be parsed")
)
