package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/careslot/clinic-scheduler/internal/config"
	"github.com/careslot/clinic-scheduler/internal/domain/identity"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserType  = "userType"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok1 := claims["sub"].(float64)
		email, _ := claims["email"].(string)
		userType, ok2 := claims["userType"].(string)
		if !ok1 || !ok2 || !identity.UserType(userType).Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserEmail, email)
		c.Set(ContextUserType, userType)

		c.Next()
	}
}

// IdentityFromContext rebuilds the caller identity placed in the gin
// context by AuthMiddleware. Must only be called behind it.
func IdentityFromContext(c *gin.Context) identity.Identity {
	return identity.Identity{
		UserID:   c.MustGet(ContextUserID).(uint),
		Email:    c.GetString(ContextUserEmail),
		UserType: identity.UserType(c.MustGet(ContextUserType).(string)),
	}
}

// RequireAdmin gates admin-only routes. Runs behind AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, _ := c.Get(ContextUserType)
		if t, ok := userType.(string); !ok || identity.UserType(t) != identity.TypeAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_access_required"})
			return
		}

		c.Next()
	}
}
