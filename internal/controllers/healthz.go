package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tallybook/backend/internal/httperror"
	"github.com/tallybook/backend/internal/httputil"
	"github.com/tallybook/backend/internal/models"
)

// RegisterHealthzRoutes registers the routes for the health endpoint with
// the RouterGroup that is passed.
func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsHealthz)
	r.GET("", co.GetHealthz)
}

// OptionsHealthz returns the allowed HTTP methods
func (co Controller) OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetHealthz returns the health of the application. The application is
// healthy as long as the directory holding the ledger file is reachable.
func (co Controller) GetHealthz(c *gin.Context) {
	if err := co.Ledger.Ping(); err != nil {
		log.Error().Msgf("%T: %v", err, err.Error())
		c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
		return
	}

	c.Status(http.StatusOK)
}
