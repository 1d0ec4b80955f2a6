package httputil

import (
	"github.com/gin-gonic/gin"
)

// RequestHost returns the base URL for links in API responses.
//
// The scheme defaults to http and only changes to https if the
// x-forwarded-proto header is set to "https".
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	// We can reasonably expect a reverse proxy to set x-forwarded-host
	// as it is a de-facto standard. If it is set, it is used together
	// with the x-forwarded-prefix header to construct the links.
	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathAPI returns the URL with the prefix for the JSON API.
func RequestPathAPI(c *gin.Context) string {
	return RequestHost(c) + "/api/v1"
}
