package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tallybook/backend/internal/httputil"
	"github.com/tallybook/backend/internal/models"
)

// RegisterSummaryRoutes registers the routes for the ledger summary with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSummary)
	r.GET("", co.GetSummary)
}

// SummaryResponse is the response for the ledger summary.
type SummaryResponse struct {
	Data models.Summary `json:"data"` // Headline figures for the full ledger
}

// OptionsSummary returns the allowed HTTP methods
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetSummary returns the income, expense and balance totals over all
// transactions.
func (co Controller) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, SummaryResponse{Data: co.Ledger.Summary()})
}
