package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"animehub-backend/config"
	"animehub-backend/internal/app/http/middleware"
	"animehub-backend/internal/domain/users"
	"animehub-backend/internal/usecase"
)

const tokenTTL = 7 * 24 * time.Hour

// Handler serves the session endpoints. Login takes a resolved profile and
// issues the API token; the identity-provider side of authentication lives
// outside this service.
type Handler struct {
	Login  *usecase.Login
	Logout *usecase.Logout
}

func (h *Handler) PostLogin(c *gin.Context) {
	var input struct {
		ID     string `json:"id" binding:"required"`
		Name   string `json:"name" binding:"required"`
		Email  string `json:"email"`
		Avatar string `json:"avatar"`
		Role   string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u := users.User{ID: input.ID, Name: input.Name, Email: input.Email, Avatar: input.Avatar, Role: input.Role}
	res, err := h.Login.Execute(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	if !res.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": res.Error})
		return
	}
	if u.Role == "" {
		u.Role = users.RoleUser
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"name":    u.Name,
		"email":   u.Email,
		"avatar":  u.Avatar,
		"role":    u.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed, "user": u})
}

func (h *Handler) PostLogout(c *gin.Context) {
	if err := h.Logout.Execute(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetMe serves the caller's profile from the token claims. The stored
// session record is a single-tenant compatibility record and must never
// answer for another caller's token.
func (h *Handler) GetMe(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, u)
}
