package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobsterhq/jobster-api/internal/apperrors"
	"github.com/jobsterhq/jobster-api/internal/auth"
)

const identityKey = "identity"

// Authenticate resolves the Bearer token into the requester identity and
// puts it on the context for everything downstream.
func Authenticate(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		const bearerPrefix = "Bearer "
		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			abort(c, apperrors.Unauthenticated("Authentication invalid"))
			return
		}

		claims, err := issuer.Parse(strings.TrimSpace(tokenString))
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RequireWritable rejects mutations from read-only demo identities before
// any store access happens. Reads are never gated by it.
func RequireWritable() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Identity(c).ReadOnly {
			abort(c, apperrors.BadRequest("Demo account, read only!"))
			return
		}
		c.Next()
	}
}

// Identity returns the claims set by Authenticate. Only call it on routes
// behind that middleware.
func Identity(c *gin.Context) *auth.Claims {
	return c.MustGet(identityKey).(*auth.Claims)
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
