package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// identityGate rejects wake requests that lack the upstream-asserted
// identity header. The header value is trusted verbatim: the reverse
// proxy in front of pihub has already authenticated the caller.
func (h *Handler) identityGate(c *gin.Context) {
	if !h.cfg.Identity.Required {
		c.Next()
		return
	}

	identity := strings.TrimSpace(c.GetHeader(h.cfg.Identity.Header))
	if identity == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"ok":    false,
			"error": "forbidden",
		})
		return
	}

	h.logger.Debug().Str("identity", identity).Msg("wake request authorized")
	c.Next()
}
