package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/expense/entity"
	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/database"
)

// Filter selects a page of one owner's expenses.
type Filter struct {
	UserID string
	Title  *string
	Limit  int
	Offset int
}

func (f Filter) conditions() *database.Conditions {
	c := (&database.Conditions{}).And("user_id = ?", f.UserID)
	if f.Title != nil && *f.Title != "" {
		c.And("title ILIKE ?", database.ContainsPattern(*f.Title))
	}
	return c
}

// Store is the persistence contract of the expense service. Lookups that
// match nothing return an error wrapping sql.ErrNoRows.
type Store interface {
	Create(ctx context.Context, e *entity.Expense) (*entity.Expense, error)
	FindOwned(ctx context.Context, id, userID string) (*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) (*entity.Expense, error)
	Delete(ctx context.Context, id, userID string) (*entity.Expense, error)
	List(ctx context.Context, f Filter) ([]entity.Expense, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

var _ Store = (*ExpenseRepo)(nil)

// ExpenseRepo provides data access for the expenses table using sqlx.
type ExpenseRepo struct {
	db *sqlx.DB
}

func NewExpenseRepo(db *sqlx.DB) *ExpenseRepo { return &ExpenseRepo{db: db} }

const expenseColumns = `id, user_id, title, amount, expense_date, created_at, updated_at`

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) (*entity.Expense, error) {
	const q = `INSERT INTO expenses (id, user_id, title, amount, expense_date)
		  VALUES ($1, $2, $3, $4, $5)
		  RETURNING ` + expenseColumns
	var out entity.Expense
	if err := r.db.GetContext(ctx, &out, q, e.ID, e.UserID, e.Title, e.Amount, e.ExpenseDate); err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	return &out, nil
}

// FindOwned returns the expense with id only if userID owns it.
func (r *ExpenseRepo) FindOwned(ctx context.Context, id, userID string) (*entity.Expense, error) {
	const q = `SELECT ` + expenseColumns + ` FROM expenses WHERE id=$1 AND user_id=$2`
	var out entity.Expense
	if err := r.db.GetContext(ctx, &out, q, id, userID); err != nil {
		return nil, fmt.Errorf("find expense %s: %w", id, err)
	}
	return &out, nil
}

// Update overwrites title, amount and date of an owned expense.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) (*entity.Expense, error) {
	const q = `UPDATE expenses SET title=$3, amount=$4, expense_date=$5, updated_at=NOW()
		  WHERE id=$1 AND user_id=$2
		  RETURNING ` + expenseColumns
	var out entity.Expense
	if err := r.db.GetContext(ctx, &out, q, e.ID, e.UserID, e.Title, e.Amount, e.ExpenseDate); err != nil {
		return nil, fmt.Errorf("update expense %s: %w", e.ID, err)
	}
	return &out, nil
}

// Delete removes an owned expense and returns the deleted row.
func (r *ExpenseRepo) Delete(ctx context.Context, id, userID string) (*entity.Expense, error) {
	const q = `DELETE FROM expenses WHERE id=$1 AND user_id=$2 RETURNING ` + expenseColumns
	var out entity.Expense
	if err := r.db.GetContext(ctx, &out, q, id, userID); err != nil {
		return nil, fmt.Errorf("delete expense %s: %w", id, err)
	}
	return &out, nil
}

// List returns one page ordered by newest expense date first.
func (r *ExpenseRepo) List(ctx context.Context, f Filter) ([]entity.Expense, error) {
	c := f.conditions()
	q := r.db.Rebind(`SELECT ` + expenseColumns + ` FROM expenses` + c.SQL() +
		` ORDER BY expense_date DESC, id LIMIT ? OFFSET ?`)
	args := append(c.Args(), f.Limit, f.Offset)
	out := []entity.Expense{}
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return out, nil
}

// Count returns the number of rows List would see without paging.
func (r *ExpenseRepo) Count(ctx context.Context, f Filter) (int64, error) {
	c := f.conditions()
	var n int64
	if err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM expenses`+c.SQL()), c.Args()...); err != nil {
		return 0, fmt.Errorf("count expenses: %w", err)
	}
	return n, nil
}
