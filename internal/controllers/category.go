package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tallybook/backend/internal/httputil"
	"github.com/tallybook/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategoryList)
	r.GET("", co.GetCategories)
}

// CategoryListResponse is the response for the category breakdown.
type CategoryListResponse struct {
	Data []models.CategoryTotal `json:"data"` // Expense totals per category
}

// OptionsCategoryList returns the allowed HTTP methods
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetCategories returns the expense total for every category, in the
// order the categories first appeared in the ledger.
func (co Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: co.Ledger.CategoryTotals()})
}
