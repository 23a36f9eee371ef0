package services

import (
	"context"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// UserServicer defines the contract for identity and credential logic.
type UserServicer interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for the per-user category registry.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, userID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	GetUserCategories(ctx context.Context, userID uint) ([]models.Category, error)
	GetUserCategoriesByType(ctx context.Context, userID uint, categoryType models.CategoryType) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID uint) (*models.Category, error)
	GetCategoryByName(ctx context.Context, userID uint, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uint) error
}

// TransactionFilter holds optional filter parameters for listing
// transactions. Absent fields do not constrain the result.
type TransactionFilter struct {
	StartDate  *models.Date
	EndDate    *models.Date
	CategoryID *uint
}

// TransactionServicer defines the contract for the per-user ledger.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID uint, categoryName string, amount decimal.Decimal, date models.Date, description string) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID uint) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uint, categoryName string, amount decimal.Decimal, date *models.Date, description string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uint) error
	FilterTransactions(ctx context.Context, userID uint, filter TransactionFilter) ([]models.Transaction, error)
}

// BudgetServicer defines the contract for spending caps and their
// consumption computation.
type BudgetServicer interface {
	GetUserBudgets(ctx context.Context, userID uint) ([]models.Budget, error)
	GetBudgetByID(ctx context.Context, userID, budgetID uint) (*models.Budget, error)
	UpsertBudget(ctx context.Context, userID, categoryID uint, limit decimal.Decimal, startDate, endDate models.Date) (*models.Budget, error)
	GetBudgetCompletion(ctx context.Context, userID, budgetID uint) (float64, error)
}
