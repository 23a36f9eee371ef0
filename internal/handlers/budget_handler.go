package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// BudgetHandler handles budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetCategoryRef references a category by id inside a budget payload.
type BudgetCategoryRef struct {
	ID uint `json:"id" binding:"required"`
}

// BudgetRequest represents the payload for creating or updating a budget.
type BudgetRequest struct {
	Category  BudgetCategoryRef `json:"category" binding:"required"`
	Limit     decimal.Decimal   `json:"limit"`
	StartDate models.Date       `json:"startDate"`
	EndDate   models.Date       `json:"endDate"`
}

// GetBudgets lists all of the principal's budgets.
// @Summary     Get budgets
// @Description Get all of the authenticated user's budgets
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Budget "Budgets"
// @Failure     401 {string} string "Unauthenticated"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// UpsertBudget creates or updates a budget for a category window.
// @Summary     Create or update a budget
// @Description Create a spending cap for a category window, or update the budget with the identical window
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created or updated"
// @Failure     400 {string} string "Invalid input or overlapping window"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {string} string "Category not found"
// @Router      /budgets [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, err.Error()))
		return
	}

	budget, err := h.budgetService.UpsertBudget(c.Request.Context(), userID, req.Category.ID, req.Limit, req.StartDate, req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// GetBudgetCompletion returns the consumed share of a budget's limit as a
// bare percentage. Values above 100 mean over-budget.
// @Summary     Get budget completion
// @Description Get the percentage of a budget consumed by transactions inside its window
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path int true "Budget ID"
// @Success     200 {number} number "Completion percentage"
// @Failure     400 {string} string "Invalid budget id"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {string} string "Budget not found"
// @Router      /budgets/completion/{budgetId} [get]
func (h *BudgetHandler) GetBudgetCompletion(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "budgetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	percentage, err := h.budgetService.GetBudgetCompletion(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, percentage)
}
