package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether the category type is one of the known values.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category is a user-scoped label for transactions. Names are unique per
// owner and the owner never changes.
type Category struct {
	Base
	UserID uint         `gorm:"not null;uniqueIndex:idx_categories_user_name" json:"userId"`
	Name   string       `gorm:"not null;uniqueIndex:idx_categories_user_name" json:"name"`
	Type   CategoryType `gorm:"not null" json:"type"`
}
