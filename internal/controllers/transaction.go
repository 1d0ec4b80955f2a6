package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/tallybook/backend/internal/httperror"
	"github.com/tallybook/backend/internal/httputil"
	"github.com/tallybook/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
	}
}

// OptionsTransactionList returns the allowed HTTP methods
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsTransactionDetail returns the allowed HTTP methods
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetTransactions returns transactions, newest first, filtered by the
// query string.
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	if filter.Type != "" {
		if !slices.Contains([]models.TransactionType{models.TypeIncome, models.TypeExpense}, filter.Type) {
			s := errTransactionTypeInvalid.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{
				Error: &s,
			})
			return
		}
	}

	all := co.Ledger.All()

	transactions := make([]models.Transaction, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		transaction := all[i]

		if filter.Category != "" && !glob.Glob(filter.Category, transaction.Category) {
			continue
		}

		if filter.Type != "" && transaction.Type != filter.Type {
			continue
		}

		transactions = append(transactions, transaction)
	}

	// The total has to be counted before pagination is applied
	total := int64(len(transactions))

	if filter.Offset > uint(len(transactions)) {
		filter.Offset = uint(len(transactions))
	}
	transactions = transactions[filter.Offset:]

	if filter.Limit >= 0 && filter.Limit < len(transactions) {
		transactions = transactions[:filter.Limit]
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: transactions,
		Pagination: &Pagination{
			Count:  len(transactions),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// GetTransaction returns a specific transaction by its ID.
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := errTransactionIDInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &s,
		})
		return
	}

	transaction, err := co.Ledger.Transaction(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{
		Data: &transaction,
	})
}
