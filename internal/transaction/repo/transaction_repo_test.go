package repo

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/transaction/entity"
)

var columns = []string{"id", "user_id", "title", "amount", "transaction_date", "type", "created_at", "updated_at"}

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewTransactionRepo(sqlx.NewDb(db, "postgres")), mock
}

func salaryRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow("t-1", "u-1", "Salary", "5000000.00", day, "income", day, day)
}

func TestCreate(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (id, user_id, title, amount, transaction_date, type)`)).
		WithArgs("t-1", "u-1", "Salary", sqlmock.AnyArg(), day, "income").
		WillReturnRows(salaryRows())

	tx, err := r.Create(context.Background(), &entity.Transaction{
		ID: "t-1", UserID: "u-1", Title: "Salary", TransactionDate: day, Type: entity.TypeIncome,
	})

	require.NoError(t, err)
	assert.Equal(t, "5000000.00", tx.Amount.StringFixed(2))
	assert.Equal(t, entity.TypeIncome, tx.Type)
}

func TestFindOwned_Missing(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions WHERE id=$1 AND user_id=$2`)).
		WithArgs("t-1", "u-1").
		WillReturnError(sql.ErrNoRows)

	_, err := r.FindOwned(context.Background(), "t-1", "u-1")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDelete(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM transactions WHERE id=$1 AND user_id=$2`)).
		WithArgs("t-1", "u-1").
		WillReturnRows(salaryRows())

	tx, err := r.Delete(context.Background(), "t-1", "u-1")

	require.NoError(t, err)
	assert.Equal(t, "Salary", tx.Title)
}

func TestList_TypeAndTitle(t *testing.T) {
	r, mock := newMockRepo(t)
	title, typ := "sal", "income"
	mock.ExpectQuery(regexp.QuoteMeta(
		`FROM transactions WHERE user_id = $1 AND title ILIKE $2 AND type = $3 ORDER BY transaction_date DESC, id LIMIT $4 OFFSET $5`)).
		WithArgs("u-1", "%sal%", "income", 5, 0).
		WillReturnRows(salaryRows())

	out, err := r.List(context.Background(), Filter{UserID: "u-1", Title: &title, Type: &typ, Limit: 5})

	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestCount(t *testing.T) {
	r, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM transactions WHERE user_id = $1`)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := r.Count(context.Background(), Filter{UserID: "u-1"})

	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
