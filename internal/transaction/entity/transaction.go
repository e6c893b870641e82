package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction represents a row in the `transactions` table.
type Transaction struct {
	ID              string          `db:"id"`
	UserID          string          `db:"user_id"`
	Title           string          `db:"title"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Type            string          `db:"type"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
