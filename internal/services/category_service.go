package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// categoryService handles the per-user category registry.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category for the owner. Names are trimmed
// and must be unique per owner.
func (s *categoryService) CreateCategory(ctx context.Context, userID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "category name is required")
	}
	if !categoryType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "category type must be income or expense")
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).
			Where("user_id = ? AND name = ?", userID, name).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if count > 0 {
			return apperrors.WithMessage(apperrors.ErrDuplicate, "category with this name already exists")
		}

		if err := tx.Create(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// GetUserCategories retrieves all categories for a user.
func (s *categoryService) GetUserCategories(ctx context.Context, userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return categories, nil
}

// GetUserCategoriesByType retrieves categories of a specific type for a user.
func (s *categoryService) GetUserCategoriesByType(ctx context.Context, userID uint, categoryType models.CategoryType) ([]models.Category, error) {
	if !categoryType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "category type must be income or expense")
	}
	var categories []models.Category
	if err := s.db.WithContext(ctx).Where("user_id = ? AND type = ?", userID, categoryType).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID. The owner filter is part of
// the predicate, so a foreign category looks absent.
func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "category not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &category, nil
}

// GetCategoryByName retrieves a category by its trimmed name within the owner.
func (s *categoryService) GetCategoryByName(ctx context.Context, userID uint, name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, strings.TrimSpace(name)).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "category not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &category, nil
}

// UpdateCategory renames or retypes an existing category, re-checking name
// uniqueness against the owner's other categories.
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "category name is required")
	}
	if !categoryType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalid, "category type must be income or expense")
	}

	var category *models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Category
		if err := tx.Where("id = ? AND user_id = ?", categoryID, userID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithMessage(apperrors.ErrNotFound, "category not found")
			}
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		var count int64
		if err := tx.Model(&models.Category{}).
			Where("user_id = ? AND name = ? AND id <> ?", userID, name, categoryID).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		if count > 0 {
			return apperrors.WithMessage(apperrors.ErrDuplicate, "category with this name already exists")
		}

		existing.Name = name
		existing.Type = categoryType
		if err := tx.Save(&existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		category = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category once nothing references it. Deletion is
// refused while dependent transactions or budgets exist.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.WithMessage(apperrors.ErrNotFound, "category not found")
			}
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}

		deps, err := s.hasDependencies(tx, categoryID)
		if err != nil {
			return err
		}
		if deps {
			return apperrors.ErrHasDependencies
		}

		if err := tx.Delete(&category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternal, err)
		}
		return nil
	})
}

// hasDependencies reports whether any transaction or budget references the
// category, regardless of owner.
func (s *categoryService) hasDependencies(tx *gorm.DB, categoryID uint) (bool, error) {
	var txCount int64
	if err := tx.Model(&models.Transaction{}).Where("category_id = ?", categoryID).Count(&txCount).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if txCount > 0 {
		return true, nil
	}

	var budgetCount int64
	if err := tx.Model(&models.Budget{}).Where("category_id = ?", categoryID).Count(&budgetCount).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return budgetCount > 0, nil
}
