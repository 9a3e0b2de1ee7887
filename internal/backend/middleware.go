package backend

import (
	"errors"
	"net/http"
	"strings"

	"fittracker/fitness-app/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const ContextIdentityKey = "identity"

// AuthMiddleware requires a valid bearer token and stores its identity in
// the gin context.
func AuthMiddleware(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		identity, err := auth.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

func identityFromContext(c *gin.Context) (domain.Identity, bool) {
	raw, exists := c.Get(ContextIdentityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := raw.(domain.Identity)
	return identity, ok
}

// abortWithError answers in the shape the app expects: {"mensagem": ...}.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"mensagem": message})
}
