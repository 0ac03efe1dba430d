// Package handlers implements the HTTP request handlers of the public API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/youcisla/streamsub/internal/constants"
	"github.com/youcisla/streamsub/internal/services"
)

// Handler handles HTTP requests for the streamsub API.
type Handler struct {
	services *services.Container
}

// New creates a new Handler over the service container.
func New(container *services.Container) *Handler {
	return &Handler{services: container}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public discovery feed, no authentication.
	r.GET("/streams/trending", h.handleTrending)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": constants.ServiceName,
		"version": constants.ServiceVersion,
	})
}
