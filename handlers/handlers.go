package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdullah3034/portfolio-api/pkg/logger"
	"github.com/abdullah3034/portfolio-api/pkg/validation"
)

// Shared response helpers. Server errors are logged with full detail but the
// body stays generic: internals never leak to the client.

func serverError(c *gin.Context, err error) {
	logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"message": msg})
}

func validationFailed(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}

// RegisterHealth mounts the health check endpoint.
func RegisterHealth(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Portfolio API is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

// RegisterNoRoute mounts the 404 fallback.
func RegisterNoRoute(r *gin.Engine) {
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
}
