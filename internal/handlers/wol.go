package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fgeck/pihub/internal/services/wol"
	"github.com/gin-gonic/gin"
)

const noTargets = "(none)"

// wakeRequest is the POST /wol body: a named target takes precedence over
// a raw MAC address.
type wakeRequest struct {
	Target string `json:"target"`
	MAC    string `json:"mac"`
}

func (h *Handler) wake(c *gin.Context) {
	var req wakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body: " + err.Error()})
		return
	}

	mac := req.MAC
	targetName := ""

	switch {
	case req.Target != "":
		target, ok := h.registry.Resolve(req.Target)
		if !ok {
			available := noTargets
			if names := h.registry.Names(); len(names) > 0 {
				available = strings.Join(names, ", ")
			}
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":        false,
				"error":     fmt.Sprintf("unknown target: '%s'", req.Target),
				"available": available,
			})
			return
		}
		mac = target.MAC
		targetName = target.Name
	case req.MAC != "":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "request must include 'target' or 'mac'"})
		return
	}

	result, err := h.wol.Wake(c.Request.Context(), mac)
	if err != nil {
		h.logger.Error().Err(err).Msg("wake failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if result.Error != nil {
		status := http.StatusInternalServerError
		if errors.Is(result.Error, wol.ErrInvalidAddress) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"ok": false, "error": result.Error.Error()})
		return
	}

	resp := gin.H{"ok": true, "message": "WoL packet sent to " + result.MAC}
	if targetName != "" {
		h.history.Record(targetName, time.Now())
		resp["target"] = targetName
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) lastWake(c *gin.Context) {
	name := c.Param("name")

	at, ok := h.history.Lookup(strings.ToLower(name))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"ok":    false,
			"error": fmt.Sprintf("no wake recorded for '%s'", name),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"target":    strings.ToLower(name),
		"last_wake": at.Format(time.RFC3339),
	})
}
