package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the payload for creating or updating a category.
type CategoryRequest struct {
	Name string              `json:"name" binding:"required"`
	Type models.CategoryType `json:"type" binding:"required,category_type"`
}

// GetCategoriesByType lists the principal's categories of the given type.
// @Summary     Get categories by type
// @Description Get the authenticated user's categories of a given type
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       type query string true "Category type (income or expense)"
// @Success     200 {array} models.Category "Categories"
// @Failure     400 {string} string "Invalid type"
// @Failure     401 {string} string "Unauthenticated"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategoriesByType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryType := models.CategoryType(c.Query("type"))
	categories, err := h.categoryService.GetUserCategoriesByType(c.Request.Context(), userID, categoryType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetAllCategories lists all of the principal's categories.
// @Summary     Get all categories
// @Description Get all of the authenticated user's categories
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Category "Categories"
// @Failure     401 {string} string "Unauthenticated"
// @Router      /categories/all [get]
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.GetUserCategories(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// SearchCategory finds one of the principal's categories by name.
// @Summary     Search category by name
// @Description Find one of the authenticated user's categories by name
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       name query string true "Category name"
// @Success     200 {object} models.Category "Category"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {string} string "Category not found"
// @Router      /categories/search [get]
func (h *CategoryHandler) SearchCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	name := c.Query("name")
	if name == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, "name query parameter is required"))
		return
	}

	category, err := h.categoryService.GetCategoryByName(c.Request.Context(), userID, name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory creates a category for the principal.
// @Summary     Create a category
// @Description Create a new category for the authenticated user
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {string} string "Invalid input or duplicate name"
// @Failure     401 {string} string "Unauthenticated"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, req.Name, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory renames or retypes one of the principal's categories.
// @Summary     Update a category
// @Description Update the name and type of one of the authenticated user's categories
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Param       request body CategoryRequest true "Category details"
// @Success     200 {object} models.Category "Category updated"
// @Failure     400 {string} string "Invalid input or duplicate name"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {string} string "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), userID, categoryID, req.Name, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes one of the principal's categories.
// @Summary     Delete a category
// @Description Delete one of the authenticated user's categories if nothing references it
// @Tags        categories
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     204 "Category deleted"
// @Failure     400 {string} string "Category has dependencies"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {string} string "Category not found"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), userID, categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
