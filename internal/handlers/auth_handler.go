package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "cfcs/internal/errors"
	"cfcs/internal/middleware"
	"cfcs/internal/models"
	"cfcs/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService  services.AuthServicer
	auditService services.AuditServicer
	tokens       *middleware.TokenManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer, auditService services.AuditServicer, tokens *middleware.TokenManager) *AuthHandler {
	return &AuthHandler{authService: authService, auditService: auditService, tokens: tokens}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	Username string          `json:"username"`
	Role     models.Role     `json:"role"`
	View     models.ViewMode `json:"view"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{Username: u.Username, Role: u.Role, View: u.Role.LandingView()}
}

// Login handles user login
// @Summary     Login
// @Description Authenticate with a configured username and password. The response names the view the client should open.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Credentials"
// @Success     200 {object} AuthResponse "Authenticated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		h.auditService.Log(models.User{Username: req.Username}, services.ActionLoginFailed, "session", 0, c.ClientIP(), nil)
		respondWithError(c, err)
		return
	}

	token, expires, err := h.tokens.GenerateToken(*user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(*user, services.ActionLogin, "session", 0, c.ClientIP(), nil)

	c.JSON(http.StatusOK, AuthResponse{
		Token:     token,
		ExpiresAt: expires,
		User:      toUserResponse(*user),
	})
}

// GetProfile returns the current user
// @Summary     Get profile
// @Description Get the authenticated user's name, role and landing view
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "Current user"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
