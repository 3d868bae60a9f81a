// Package handlers wires the HTTP layer to the hub services.
package handlers

import (
	"net/http"

	"github.com/fgeck/pihub/internal/config"
	"github.com/fgeck/pihub/internal/models"
	"github.com/fgeck/pihub/internal/services/cec"
	"github.com/fgeck/pihub/internal/services/history"
	"github.com/fgeck/pihub/internal/services/wol"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler holds the service context every route handler works against:
// the two action services, the read-only target registry, and the wake
// history.
type Handler struct {
	cfg      models.HubConfig
	cec      cec.Service
	wol      wol.Service
	history  *history.Service
	registry *config.Registry
	logger   zerolog.Logger
}

// NewHandler constructs the HTTP handler with its dependencies.
func NewHandler(
	cfg models.HubConfig,
	cecSvc cec.Service,
	wolSvc wol.Service,
	hist *history.Service,
	registry *config.Registry,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		cfg:      cfg,
		cec:      cecSvc,
		wol:      wolSvc,
		history:  hist,
		registry: registry,
		logger:   logger,
	}
}

// InitRoutes builds the Gin router. The two feature groups register
// independently; anything unmatched gets the uniform 404 envelope.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if h.cfg.TVEnabled {
		tv := router.Group("/tv")
		{
			tv.GET("/status", h.tvStatus)
			tv.POST("/on", h.tvOn)
			tv.POST("/off", h.tvOff)
		}
	}

	if h.cfg.WOLEnabled {
		router.GET("/wol", h.health)
		router.POST("/wol", h.identityGate, h.wake)
		router.GET("/wol/last-wake/:name", h.lastWake)
	}

	router.NoRoute(h.notFound)

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
}
