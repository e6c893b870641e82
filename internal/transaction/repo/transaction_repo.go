package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/transaction/entity"
	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/database"
)

type Filter struct {
	UserID string
	Title  *string
	Type   *string
	Limit  int
	Offset int
}

func (f Filter) conditions() *database.Conditions {
	c := (&database.Conditions{}).And("user_id = ?", f.UserID)
	if f.Title != nil && *f.Title != "" {
		c.And("title ILIKE ?", database.ContainsPattern(*f.Title))
	}
	if f.Type != nil && *f.Type != "" {
		c.And("type = ?", *f.Type)
	}
	return c
}

// Store is the persistence contract of the transaction service. Lookups
// that match nothing return an error wrapping sql.ErrNoRows.
type Store interface {
	Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error)
	FindOwned(ctx context.Context, id, userID string) (*entity.Transaction, error)
	Update(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error)
	Delete(ctx context.Context, id, userID string) (*entity.Transaction, error)
	List(ctx context.Context, f Filter) ([]entity.Transaction, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

var _ Store = (*TransactionRepo)(nil)

type TransactionRepo struct {
	db *sqlx.DB
}

func NewTransactionRepo(db *sqlx.DB) *TransactionRepo { return &TransactionRepo{db: db} }

const transactionColumns = `id, user_id, title, amount, transaction_date, type, created_at, updated_at`

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	const q = `INSERT INTO transactions (id, user_id, title, amount, transaction_date, type)
		  VALUES ($1, $2, $3, $4, $5, $6)
		  RETURNING ` + transactionColumns
	var out entity.Transaction
	if err := r.db.GetContext(ctx, &out, q, t.ID, t.UserID, t.Title, t.Amount, t.TransactionDate, t.Type); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return &out, nil
}

func (r *TransactionRepo) FindOwned(ctx context.Context, id, userID string) (*entity.Transaction, error) {
	const q = `SELECT ` + transactionColumns + ` FROM transactions WHERE id=$1 AND user_id=$2`
	var out entity.Transaction
	if err := r.db.GetContext(ctx, &out, q, id, userID); err != nil {
		return nil, fmt.Errorf("find transaction %s: %w", id, err)
	}
	return &out, nil
}

func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	const q = `UPDATE transactions SET title=$3, amount=$4, transaction_date=$5, type=$6, updated_at=NOW()
		  WHERE id=$1 AND user_id=$2
		  RETURNING ` + transactionColumns
	var out entity.Transaction
	if err := r.db.GetContext(ctx, &out, q, t.ID, t.UserID, t.Title, t.Amount, t.TransactionDate, t.Type); err != nil {
		return nil, fmt.Errorf("update transaction %s: %w", t.ID, err)
	}
	return &out, nil
}

func (r *TransactionRepo) Delete(ctx context.Context, id, userID string) (*entity.Transaction, error) {
	const q = `DELETE FROM transactions WHERE id=$1 AND user_id=$2 RETURNING ` + transactionColumns
	var out entity.Transaction
	if err := r.db.GetContext(ctx, &out, q, id, userID); err != nil {
		return nil, fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return &out, nil
}

func (r *TransactionRepo) List(ctx context.Context, f Filter) ([]entity.Transaction, error) {
	c := f.conditions()
	q := r.db.Rebind(`SELECT ` + transactionColumns + ` FROM transactions` + c.SQL() +
		` ORDER BY transaction_date DESC, id LIMIT ? OFFSET ?`)
	args := append(c.Args(), f.Limit, f.Offset)
	out := []entity.Transaction{}
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func (r *TransactionRepo) Count(ctx context.Context, f Filter) (int64, error) {
	c := f.conditions()
	var n int64
	if err := r.db.GetContext(ctx, &n, r.db.Rebind(`SELECT COUNT(*) FROM transactions`+c.SQL()), c.Args()...); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
