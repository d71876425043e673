package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"animehub-backend/config"
	"animehub-backend/internal/domain/users"
)

// AuthMiddleware validates the bearer token and puts the caller's profile
// fields on the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.JWT_SECRET)
		if len(jwtKey) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, okClaims := token.Claims.(jwt.MapClaims)
		if !okClaims {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		for _, key := range []string{"user_id", "name", "email", "avatar", "role"} {
			if v, okStr := claims[key].(string); okStr {
				c.Set(key, v)
			}
		}
		c.Next()
	}
}

// RequireRole guards a route group behind one token role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}
		if value != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser rebuilds the caller's profile from the token claims. ok is
// false when the request never went through AuthMiddleware.
func CurrentUser(c *gin.Context) (users.User, bool) {
	id := c.GetString("user_id")
	if id == "" {
		return users.User{}, false
	}
	return users.User{
		ID:     id,
		Name:   c.GetString("name"),
		Email:  c.GetString("email"),
		Avatar: c.GetString("avatar"),
		Role:   c.GetString("role"),
	}, true
}
