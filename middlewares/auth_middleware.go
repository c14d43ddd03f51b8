package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/THORzero9/FWR-sub000/apperrors"
	"github.com/THORzero9/FWR-sub000/models"
	"github.com/THORzero9/FWR-sub000/services"
	"github.com/THORzero9/FWR-sub000/utils"
)

const currentUserKey = "currentUser"

// RequestTrace assigns every request a trace id, attached to the request
// context for server-side logging and echoed in the X-Request-ID header.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.NewString()
		c.Request = c.Request.WithContext(utils.WithTraceID(c.Request.Context(), traceID))
		c.Header("X-Request-ID", traceID)
		c.Next()
	}
}

// Identity resolves the session cookie to a sanitized user and attaches it to
// the gin context. A missing, expired or dangling session just leaves the
// request anonymous; RequireAuth decides whether that is acceptable.
func Identity(auth *services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err == nil && sessionID != "" {
			user, err := auth.ResolveIdentity(c.Request.Context(), sessionID)
			if err == nil {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}

// RequireAuth short-circuits protected routes before any handler logic runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperrors.MsgNotAuthenticated})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity resolved for this request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
