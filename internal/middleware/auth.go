package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"changaya_backend/internal/auth"
	"changaya_backend/internal/logger"
	"changaya_backend/pkg/apperrors"
	"changaya_backend/pkg/contextkeys"
)

// AuthMiddleware validates the Bearer session token and attaches the
// decoded identity to the request. Downstream code reads it with
// GetIdentity.
func AuthMiddleware(sessions *auth.SessionCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrMissingCredentials)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrMissingCredentials)
			c.Abort()
			return
		}

		identity, err := sessions.Decode(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrSessionExpired)
			} else {
				apperrors.HandleError(c, apperrors.ErrSessionInvalid)
			}
			c.Abort()
			return
		}

		c.Set(string(contextkeys.IdentityContextKey), identity)

		ctx := logger.WithUserID(c.Request.Context(), identity.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetIdentity returns the identity stored by AuthMiddleware, or nil on
// unauthenticated requests.
func GetIdentity(c *gin.Context) *auth.Identity {
	val, exists := c.Get(string(contextkeys.IdentityContextKey))
	if !exists {
		return nil
	}
	identity, ok := val.(*auth.Identity)
	if !ok {
		return nil
	}
	return identity
}

// RequireRoles rejects callers whose role is not in the allowed set. It
// must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			apperrors.HandleError(c, apperrors.ErrMissingCredentials)
			c.Abort()
			return
		}

		if _, ok := allowed[string(identity.Role)]; !ok {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}
