package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount represents a bank account record in the database.
type BankAccount struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	Balances  []Balance `gorm:"foreignKey:BankAccountID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the BankAccount model.
func (BankAccount) TableName() string {
	return "bank_accounts"
}

// Balance represents one currency balance of a bank account.
type Balance struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	BankAccountID int64           `gorm:"not null;uniqueIndex:idx_balance_account_currency"`
	Currency      string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_balance_account_currency"`
	Amount        decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Balance model.
func (Balance) TableName() string {
	return "balances"
}
