package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tallybook/backend/internal/dashboard"
	"github.com/tallybook/backend/internal/httperror"
	"github.com/tallybook/backend/internal/httputil"
	"github.com/tallybook/backend/internal/models"
)

// TransactionForm is the data the dashboard form submits.
//
// The amount is bound as a string so that its validation error can name
// the field. Parsing happens in AddTransaction.
type TransactionForm struct {
	Amount      string `form:"amount" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Description string `form:"description" binding:"required"`
	Type        string `form:"type" binding:"required,oneof=income expense"`
}

// AddTransactionResponse is the acknowledgment that the dashboard
// JavaScript evaluates after submitting the form.
type AddTransactionResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty" example:"the amount must be a number"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
}

// GetDashboard renders the dashboard for the current ledger state.
func (co Controller) GetDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", dashboard.Build(co.Ledger))
}

// OptionsDashboard returns the allowed HTTP methods
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// AddTransaction appends a transaction submitted via the dashboard form.
func (co Controller) AddTransaction(c *gin.Context) {
	var form TransactionForm
	if err := httputil.BindForm(c, &form); err != nil {
		c.JSON(http.StatusBadRequest, AddTransactionResponse{Message: err.Error()})
		return
	}

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, AddTransactionResponse{Message: errAmountInvalid.Error()})
		return
	}

	transaction, err := co.Ledger.Append(models.Transaction{
		Amount:      amount,
		Category:    form.Category,
		Description: form.Description,
		Type:        models.TransactionType(form.Type),
	})
	if err != nil {
		c.JSON(httperror.Status(err), AddTransactionResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AddTransactionResponse{Success: true, Transaction: &transaction})
}

// OptionsAddTransaction returns the allowed HTTP methods
func (co Controller) OptionsAddTransaction(c *gin.Context) {
	httputil.OptionsPost(c)
}
