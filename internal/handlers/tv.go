package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgTVOn  = "TV turned on"
	msgTVOff = "TV turned off"
)

func (h *Handler) tvStatus(c *gin.Context) {
	result, err := h.cec.QueryPower(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("power query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "status": string(result.State)})
}

func (h *Handler) tvOn(c *gin.Context) {
	result, err := h.cec.TurnOn(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("tv on failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": msgTVOn})
}

func (h *Handler) tvOff(c *gin.Context) {
	result, err := h.cec.TurnOff(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("tv off failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": msgTVOff})
}
