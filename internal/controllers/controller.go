package controllers

import (
	"github.com/tallybook/backend/internal/models"
)

// Controller holds the ledger that the request handlers operate on.
type Controller struct {
	Ledger *models.Ledger
}
