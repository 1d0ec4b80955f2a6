package controllers

import (
	"github.com/tallybook/backend/internal/models"
)

// TransactionQueryFilter contains the fields that transactions can be filtered with.
type TransactionQueryFilter struct {
	Category string                 `form:"category"`         // Category of the transaction, glob patterns are supported
	Type     models.TransactionType `form:"type"`             // Type of the transaction, "income" or "expense"
	Offset   uint                   `form:"offset"`           // The offset of the first Transaction returned. Defaults to 0.
	Limit    int                    `form:"limit,default=50"` // Maximum number of Transactions to return. Defaults to 50. Set to -1 to return all.
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// TransactionListResponse is the response for a list of transactions.
type TransactionListResponse struct {
	Data       []models.Transaction `json:"data"`                                                      // List of transactions
	Error      *string              `json:"error" example:"the specified transaction type is invalid"` // The error, if any occurred
	Pagination *Pagination          `json:"pagination"`                                                // Pagination information
}

// TransactionResponse is the response for a single transaction.
type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`                                                        // The transaction
	Error *string             `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
}
