package middleware

import (
	"net/http"
	"strings"

	"brandmatch_backend/internal/auth"
	"brandmatch_backend/pkg/apperrors"
	"brandmatch_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the identity-provider bearer token and stores the
// subject and claims in the request context. It says nothing about roles;
// the caller's role lives in the local user row and is checked by services
// after the subject is resolved.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header missing or invalid")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(string(contextkeys.ExternalIDContextKey), claims.Subject)
		c.Set(string(contextkeys.ClaimsContextKey), claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: apperrors.NewUnauthorizedError(message),
	})
}

// GetExternalID returns the verified identity-provider subject for the
// request, or "" when the auth middleware did not run.
func GetExternalID(c *gin.Context) string {
	val, exists := c.Get(string(contextkeys.ExternalIDContextKey))
	if !exists {
		return ""
	}
	externalID, _ := val.(string)
	return externalID
}

// GetClaims returns the full verified token claims, or nil.
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(string(contextkeys.ClaimsContextKey))
	if !exists {
		return nil
	}
	claims, _ := val.(*auth.Claims)
	return claims
}
