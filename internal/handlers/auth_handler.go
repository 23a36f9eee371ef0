package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// CredentialsRequest represents the registration and login payload.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// Register handles user registration.
// The success body is the raw bearer token, no JSON wrapper.
// @Summary     Register a new user
// @Description Register a new user with email and password and receive a bearer token
// @Tags        auth
// @Accept      json
// @Produce     plain
// @Param       request body CredentialsRequest true "User credentials"
// @Success     201 {string} string "Bearer token"
// @Failure     400 {string} string "Invalid input or duplicate email"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, err.Error()))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.Email)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternal, err))
		return
	}

	c.String(http.StatusCreated, token)
}

// Login handles user login.
// The success body is the raw bearer token, no JSON wrapper.
// @Summary     Login
// @Description Authenticate with email and password and receive a bearer token
// @Tags        auth
// @Accept      json
// @Produce     plain
// @Param       request body CredentialsRequest true "User credentials"
// @Success     200 {string} string "Bearer token"
// @Failure     400 {string} string "Invalid credentials"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, err.Error()))
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	if !h.userService.VerifyPassword(user, req.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateToken(user.Email)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternal, err))
		return
	}

	c.String(http.StatusOK, token)
}
