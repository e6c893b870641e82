package repo

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
)

// Store is the persistence contract the user and auth services depend on.
type Store interface {
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByToken(ctx context.Context, token string) (*entity.User, error)
	UpdateProfile(ctx context.Context, email, name, passwordHash string) (*entity.User, error)
	SetToken(ctx context.Context, email string, token *string) (*entity.User, error)
}

var _ Store = (*UserRepo)(nil)

// UserRepo provides data access for users table using sqlx.
type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `id, email, name, password, service_type, token, created_at, updated_at`

// Create inserts a new user row and returns it as stored.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	const q = `INSERT INTO users (id, email, name, password, service_type)
		  VALUES ($1, $2, $3, $4, $5)
		  RETURNING ` + userColumns
	var out entity.User
	if err := r.db.GetContext(ctx, &out, q, u.ID, u.Email, u.Name, u.Password, u.ServiceType); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByEmail returns a user matched by email or sql.ErrNoRows.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email=$1`, email); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByToken resolves the owner of a session token or sql.ErrNoRows.
func (r *UserRepo) GetByToken(ctx context.Context, token string) (*entity.User, error) {
	var u entity.User
	if err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE token=$1`, token); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile overwrites name and password hash of the user with email.
func (r *UserRepo) UpdateProfile(ctx context.Context, email, name, passwordHash string) (*entity.User, error) {
	const q = `UPDATE users SET name=$2, password=$3, updated_at=NOW() WHERE email=$1 RETURNING ` + userColumns
	var u entity.User
	if err := r.db.GetContext(ctx, &u, q, email, name, passwordHash); err != nil {
		return nil, err
	}
	return &u, nil
}

// SetToken stores (or with nil, clears) the session token.
func (r *UserRepo) SetToken(ctx context.Context, email string, token *string) (*entity.User, error) {
	const q = `UPDATE users SET token=$2, updated_at=NOW() WHERE email=$1 RETURNING ` + userColumns
	var u entity.User
	if err := r.db.GetContext(ctx, &u, q, email, token); err != nil {
		return nil, err
	}
	return &u, nil
}
