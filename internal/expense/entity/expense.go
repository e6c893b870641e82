package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row in the `expenses` table. Every row belongs to
// exactly one user.
type Expense struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Title       string          `db:"title"`
	Amount      decimal.Decimal `db:"amount"`
	ExpenseDate time.Time       `db:"expense_date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
