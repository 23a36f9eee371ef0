package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// UserHandler handles user lookups.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUserByEmail returns a user by email. Only the principal's own record
// resolves; any other email reads as absent.
// @Summary     Get user by email
// @Description Get the user record for the given email
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       email path string true "User email"
// @Success     200 {object} models.User "User"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {object} map[string]string "User not found"
// @Router      /users/{email} [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	principalEmail, err := getUserEmail(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	email := services.NormalizeEmail(c.Param("email"))
	if email != principalEmail {
		c.JSON(http.StatusNotFound, gin.H{"message": "user with email " + email + " does not exist"})
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user with email " + email + " does not exist"})
		return
	}

	c.JSON(http.StatusOK, user)
}
