package models

import "github.com/shopspring/decimal"

// Transaction is a dated monetary entry in a user's ledger. The referenced
// category always belongs to the same owner.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index:idx_transactions_user_date" json:"userId"`
	CategoryID  uint            `gorm:"not null;index:idx_transactions_category_date" json:"categoryId"`
	Amount      decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"amount"`
	Date        Date            `gorm:"type:date;not null;index:idx_transactions_user_date;index:idx_transactions_category_date" json:"date"`
	Description string          `json:"description"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
