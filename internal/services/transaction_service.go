package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// transactionService handles the per-user ledger.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// resolveCategory maps an embedded category name to the owner's category.
// An unknown name is INVALID_CATEGORY, never a foreign user's match.
func (s *transactionService) resolveCategory(ctx context.Context, userID uint, name string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory, "transaction has no category assigned")
	}
	category, err := s.categoryService.GetCategoryByName(ctx, userID, name)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrNotFound.Code {
			return nil, apperrors.ErrInvalidCategory
		}
		return nil, err
	}
	return category, nil
}

// CreateTransaction records a dated monetary entry under a category owned
// by the same user.
func (s *transactionService) CreateTransaction(ctx context.Context, userID uint, categoryName string, amount decimal.Decimal, date models.Date, description string) (*models.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "amount must be greater than zero")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "date is required")
	}

	category, err := s.resolveCategory(ctx, userID, categoryName)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Amount:      amount,
		Date:        date,
		Description: description,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	transaction.Category = category
	return transaction, nil
}

// GetUserTransactions retrieves all of a user's transactions ordered by
// date, ties broken by id.
func (s *transactionService) GetUserTransactions(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID with the owner filter in
// the predicate.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "transaction not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &transaction, nil
}

// UpdateTransaction replaces amount, description, and category of an owned
// transaction. The date is replaced only when supplied.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID uint, categoryName string, amount decimal.Decimal, date *models.Date, description string) (*models.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "amount must be greater than zero")
	}

	category, err := s.resolveCategory(ctx, userID, categoryName)
	if err != nil {
		return nil, err
	}

	var transaction *models.Transaction
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Transaction
		if err := tx.Where("id = ? AND user_id = ?", transactionID, userID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithMessage(apperrors.ErrNotFound, "transaction not found")
			}
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		existing.Amount = amount
		existing.Description = description
		existing.CategoryID = category.ID
		if date != nil && !date.IsZero() {
			existing.Date = *date
		}

		if err := tx.Save(&existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		transaction = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	transaction.Category = category
	return transaction, nil
}

// DeleteTransaction removes an owned transaction; a missing or foreign row
// is NOT_FOUND.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Transaction
		if err := tx.Where("id = ? AND user_id = ?", transactionID, userID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithMessage(apperrors.ErrNotFound, "transaction not found")
			}
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		return nil
	})
}

// FilterTransactions applies the conjunction of the supplied predicates.
// Date bounds are inclusive; a foreign category id yields an empty list.
func (s *transactionService) FilterTransactions(ctx context.Context, userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	query := s.db.WithContext(ctx).Preload("Category").Where("user_id = ?", userID)
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var transactions []models.Transaction
	if err := query.Order("date ASC, id ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return transactions, nil
}
