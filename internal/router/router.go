package router

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tallybook/backend/internal/controllers"
	"github.com/tallybook/backend/internal/httputil"
	"github.com/tallybook/backend/web"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router, the middlewares and the HTML templates.
//
// The teardown function releases the Prometheus collectors. It has to be
// called before Config is called again in the same process.
func Config() (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, teardown, err
	}
	r.Use(MetricsMiddleware())

	templates, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, teardown, fmt.Errorf("could not parse the dashboard templates: %w", err)
	}
	r.SetHTMLTemplate(templates)

	log.Info().Str("version", version).Msg("Router")

	return r, teardown, nil
}

// AttachRoutes attaches the routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	group.GET("", co.GetDashboard)
	group.OPTIONS("", co.OptionsDashboard)
	group.POST("/add_transaction", co.AddTransaction)
	group.OPTIONS("/add_transaction", co.OptionsAddTransaction)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	co.RegisterHealthzRoutes(group.Group("/healthz"))

	// Prometheus metrics
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// API v1 setup
	v1 := group.Group("/api/v1")
	{
		v1.GET("", GetV1)
		v1.OPTIONS("", OptionsV1)
	}

	co.RegisterTransactionRoutes(v1.Group("/transactions"))
	co.RegisterSummaryRoutes(v1.Group("/summary"))
	co.RegisterCategoryRoutes(v1.Group("/categories"))
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsVersion returns the allowed HTTP methods
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of transaction list endpoint
	Summary      string `json:"summary" example:"https://example.com/api/v1/summary"`           // URL of the ledger summary endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of category list endpoint
}

// GetV1 returns the link list for v1
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Transactions: httputil.RequestPathAPI(c) + "/transactions",
			Summary:      httputil.RequestPathAPI(c) + "/summary",
			Categories:   httputil.RequestPathAPI(c) + "/categories",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
