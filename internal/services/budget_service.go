package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// budgetService handles spending caps and their consumption computation.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetUserBudgets returns all budgets for the user.
func (s *budgetService) GetUserBudgets(ctx context.Context, userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("id = ? AND user_id = ?", budgetID, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "budget not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &budget, nil
}

// UpsertBudget creates or replaces a spending cap for (owner, category).
// A budget with the identical window is updated in place, preserving its
// id. A window intersecting any other budget of the pair is rejected.
func (s *budgetService) UpsertBudget(ctx context.Context, userID, categoryID uint, limit decimal.Decimal, startDate, endDate models.Date) (*models.Budget, error) {
	if limit.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "budget limit must be greater than zero")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "startDate and endDate are required")
	}
	if startDate.After(endDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "startDate must not be after endDate")
	}

	var budget *models.Budget
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Category must exist and belong to the owner. The row lock
		// serializes concurrent upserts for the same (owner, category)
		// pair so the overlap check below stays race-free.
		var category models.Category
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithMessage(apperrors.ErrNotFound, "category not found")
			}
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		var existing []models.Budget
		if err := tx.Where("user_id = ? AND category_id = ?", userID, categoryID).Find(&existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		var target *models.Budget
		for i := range existing {
			if existing[i].StartDate.Equal(startDate) && existing[i].EndDate.Equal(endDate) {
				target = &existing[i]
				continue
			}
			if existing[i].Overlaps(startDate, endDate) {
				return apperrors.ErrOverlap
			}
		}

		if target != nil {
			target.Limit = limit
			target.StartDate = startDate
			target.EndDate = endDate
			if err := tx.Save(target).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternal, err)
			}
			budget = target
			return nil
		}

		created := &models.Budget{
			UserID:     userID,
			CategoryID: categoryID,
			Limit:      limit,
			StartDate:  startDate,
			EndDate:    endDate,
		}
		if err := tx.Create(created).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		budget = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// GetBudgetCompletion sums ledger entries on the budget's category inside
// its window and returns the consumed share of the limit as a percentage.
// Values above 100 mean over-budget and are reported unclamped.
func (s *budgetService) GetBudgetCompletion(ctx context.Context, userID, budgetID uint) (float64, error) {
	budget, err := s.GetBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return 0, err
	}

	var spent decimal.Decimal
	row := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ? AND date >= ? AND date <= ?",
			userID, budget.CategoryID, budget.StartDate, budget.EndDate).
		Row()
	if err := row.Scan(&spent); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	percentage, _ := spent.Mul(decimal.NewFromInt(100)).Div(budget.Limit).Float64()
	return percentage, nil
}
