package services

import (
	"context"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"

	"github.com/shopspring/decimal"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory(context.Background(),user.ID, "Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		if category.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if category.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %s", category.Name)
		}
		if category.Type != models.CategoryTypeExpense {
			t.Errorf("expected type expense, got %s", category.Type)
		}
	})

	t.Run("duplicate_name_same_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(),user.ID, "Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(context.Background(),user.ID, "Groceries", models.CategoryTypeIncome)
		testutil.AssertAppError(t, err, "DUPLICATE")
	})

	t.Run("same_name_different_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(),alice.ID, "Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(context.Background(),bob.ID, "Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)
	})

	t.Run("blank_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(),user.ID, "   ", models.CategoryTypeExpense)
		testutil.AssertAppError(t, err, "INVALID")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(),user.ID, "Misc", models.CategoryType("savings"))
		testutil.AssertAppError(t, err, "INVALID")
	})
}

func TestGetUserCategories(t *testing.T) {
	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		testutil.CreateTestCategory(t, db, alice.ID, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, alice.ID, models.CategoryTypeIncome)
		testutil.CreateTestCategory(t, db, bob.ID, models.CategoryTypeExpense)

		categories, err := svc.GetUserCategories(context.Background(),alice.ID)
		testutil.AssertNoError(t, err)
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		for _, c := range categories {
			if c.UserID != alice.ID {
				t.Errorf("expected category owned by %d, got %d", alice.ID, c.UserID)
			}
		}
	})

	t.Run("by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeIncome)

		categories, err := svc.GetUserCategoriesByType(context.Background(),user.ID, models.CategoryTypeIncome)
		testutil.AssertNoError(t, err)
		if len(categories) != 1 {
			t.Fatalf("expected 1 income category, got %d", len(categories))
		}
		if categories[0].Type != models.CategoryTypeIncome {
			t.Errorf("expected income category, got %s", categories[0].Type)
		}
	})

	t.Run("canceled_context_aborts_query", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := svc.GetUserCategories(ctx, user.ID); err == nil {
			t.Error("expected a canceled context to abort the query")
		}
	})

	t.Run("by_type_rejects_unknown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetUserCategoriesByType(context.Background(),user.ID, models.CategoryType("weird"))
		testutil.AssertAppError(t, err, "INVALID")
	})
}

func TestGetCategoryByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		created, err := svc.CreateCategory(context.Background(),user.ID, "Rent", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		found, err := svc.GetCategoryByName(context.Background(),user.ID, "Rent")
		testutil.AssertNoError(t, err)
		if found.ID != created.ID {
			t.Errorf("expected category ID %d, got %d", created.ID, found.ID)
		}
	})

	t.Run("foreign_category_looks_absent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(),alice.ID, "Rent", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		_, err = svc.GetCategoryByName(context.Background(),bob.ID, "Rent")
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("rename_and_retype", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		created, err := svc.CreateCategory(context.Background(),user.ID, "Misc", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateCategory(context.Background(),user.ID, created.ID, "Side Income", models.CategoryTypeIncome)
		testutil.AssertNoError(t, err)
		if updated.ID != created.ID {
			t.Errorf("expected same ID %d after update, got %d", created.ID, updated.ID)
		}
		if updated.Name != "Side Income" || updated.Type != models.CategoryTypeIncome {
			t.Errorf("unexpected updated category: %+v", updated)
		}
	})

	t.Run("rename_to_existing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(context.Background(),user.ID, "Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)
		other, err := svc.CreateCategory(context.Background(),user.ID, "Dining", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateCategory(context.Background(),user.ID, other.ID, "Groceries", models.CategoryTypeExpense)
		testutil.AssertAppError(t, err, "DUPLICATE")
	})

	t.Run("keeping_own_name_is_not_a_duplicate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		created, err := svc.CreateCategory(context.Background(),user.ID, "Groceries", models.CategoryTypeExpense)
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateCategory(context.Background(),user.ID, created.ID, "Groceries", models.CategoryTypeIncome)
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateCategory(context.Background(),user.ID, 9999, "Anything", models.CategoryTypeExpense)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("unused_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		err := svc.DeleteCategory(context.Background(),user.ID, category.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetCategoryByID(context.Background(),user.ID, category.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})

	t.Run("referenced_by_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestTransaction(t, db, user.ID, category.ID,
			decimal.NewFromInt(10), models.NewDate(2025, 1, 5))

		err := svc.DeleteCategory(context.Background(),user.ID, category.ID)
		testutil.AssertAppError(t, err, "HAS_DEPENDENCIES")
	})

	t.Run("referenced_by_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestBudget(t, db, user.ID, category.ID,
			decimal.NewFromInt(100), models.NewDate(2025, 1, 1), models.NewDate(2025, 1, 31))

		err := svc.DeleteCategory(context.Background(),user.ID, category.ID)
		testutil.AssertAppError(t, err, "HAS_DEPENDENCIES")
	})

	t.Run("deletable_after_dependents_removed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		tx := testutil.CreateTestTransaction(t, db, user.ID, category.ID,
			decimal.NewFromInt(10), models.NewDate(2025, 1, 5))

		err := svc.DeleteCategory(context.Background(),user.ID, category.ID)
		testutil.AssertAppError(t, err, "HAS_DEPENDENCIES")

		if err := db.Delete(&models.Transaction{}, tx.ID).Error; err != nil {
			t.Fatalf("failed to delete transaction: %v", err)
		}

		err = svc.DeleteCategory(context.Background(),user.ID, category.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("foreign_category_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, alice.ID, models.CategoryTypeExpense)

		err := svc.DeleteCategory(context.Background(),bob.ID, category.ID)
		testutil.AssertAppError(t, err, "NOT_FOUND")
	})
}
