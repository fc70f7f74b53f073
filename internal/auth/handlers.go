package auth

import (
	"errors"
	"net/http"

	apperrors "team-schedule-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for session management
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest is the login body for either tier
type LoginRequest struct {
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
// @Summary Log in to a tier
// @Description Exchange a tier password for a bearer session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Tier and password"
// @Success 200 {object} LoginResponse "Session issued"
// @Failure 400 {object} map[string]interface{} "Malformed body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role and password are required"})
		return
	}

	resp, err := h.service.Login(req.Role, req.Password)
	if err != nil {
		var authErr *apperrors.AuthenticationError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Session handles GET /auth/session
// @Summary Inspect the current session
// @Description Validate the bearer token and report its tier
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Session state"
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	claims, err := h.service.ValidateJWT(authHeader[len(prefix):])
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "role": claims.Role})
}
