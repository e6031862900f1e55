package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardrequest-backend/internal/shared/server/respond"
)

// AdminView hides the administrator routes when the view is switched off.
// It is a visibility toggle, not an access control.
func AdminView(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			respond.Error(c, http.StatusNotFound, "not_found", "not found", nil)
			return
		}
		c.Next()
	}
}
