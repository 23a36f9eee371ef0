package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// TransactionHandler handles ledger requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionCategoryRef references a category by name inside a
// transaction payload.
type TransactionCategoryRef struct {
	Name string `json:"name" binding:"required"`
}

// TransactionRequest represents the payload for creating or updating a
// transaction. The date is optional on update and required on create.
type TransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount"`
	Date        *models.Date           `json:"date"`
	Description string                 `json:"description"`
	Category    TransactionCategoryRef `json:"category" binding:"required"`
}

// GetTransactions lists all of the principal's transactions.
// @Summary     Get all transactions
// @Description Get all of the authenticated user's transactions ordered by date
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     401 {string} string "Unauthenticated"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransactionByID retrieves one of the principal's transactions.
// @Summary     Get transaction by ID
// @Description Get one of the authenticated user's transactions
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {string} string "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// CreateTransaction records a new ledger entry for the principal.
// @Summary     Create a transaction
// @Description Record a dated monetary entry under one of the user's categories, referenced by name
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {string} string "Invalid input or unknown category"
// @Failure     401 {string} string "Unauthenticated"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, err.Error()))
		return
	}

	var date models.Date
	if req.Date != nil {
		date = *req.Date
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req.Category.Name, req.Amount, date, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction replaces one of the principal's transactions.
// @Summary     Update a transaction
// @Description Replace amount, description, and category of a transaction; the date is replaced when supplied
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Transaction updated"
// @Failure     400 {string} string "Invalid input or unknown category"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {string} string "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req.Category.Name, req.Amount, req.Date, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes one of the principal's transactions.
// @Summary     Delete a transaction
// @Description Delete one of the authenticated user's transactions
// @Tags        transactions
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     401 {string} string "Unauthenticated"
// @Failure     404 {string} string "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FilterTransactions lists the principal's transactions matching the
// conjunction of the supplied query parameters.
// @Summary     Filter transactions
// @Description Filter the authenticated user's transactions by category and inclusive date range
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       categoryId query int    false "Category ID"
// @Param       startDate  query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param       endDate    query string false "End date (YYYY-MM-DD, inclusive)"
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     400 {string} string "Invalid filter parameter"
// @Failure     401 {string} string "Unauthenticated"
// @Router      /transactions/filter [get]
func (h *TransactionHandler) FilterTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var filter services.TransactionFilter

	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, "categoryId must be a positive integer"))
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if v := c.Query("startDate"); v != "" {
		date, err := models.ParseDate(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, "startDate must be YYYY-MM-DD"))
			return
		}
		filter.StartDate = &date
	}
	if v := c.Query("endDate"); v != "" {
		date, err := models.ParseDate(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalid, "endDate must be YYYY-MM-DD"))
			return
		}
		filter.EndDate = &date
	}

	transactions, err := h.transactionService.FilterTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
