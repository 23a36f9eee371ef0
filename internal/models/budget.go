package models

import "github.com/shopspring/decimal"

// Budget caps spending for a category over a closed date window. Windows
// for the same (owner, category) pair never overlap.
type Budget struct {
	Base
	UserID     uint            `gorm:"not null;index:idx_budgets_user_category" json:"userId"`
	CategoryID uint            `gorm:"not null;index:idx_budgets_user_category" json:"categoryId"`
	Limit      decimal.Decimal `gorm:"column:limit;type:decimal(19,4);not null" json:"limit"`
	StartDate  Date            `gorm:"type:date;not null" json:"startDate"`
	EndDate    Date            `gorm:"type:date;not null" json:"endDate"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// Overlaps reports whether the budget's window intersects [start, end].
// Two closed windows [a,b] and [c,d] overlap iff a <= d and c <= b.
func (b *Budget) Overlaps(start, end Date) bool {
	return !b.StartDate.After(end) && !start.After(b.EndDate)
}
