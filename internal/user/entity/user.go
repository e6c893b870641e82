package entity

import "time"

// User represents an account row in the `users` table.
type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	Name        string    `db:"name"`
	Password    string    `db:"password"` // bcrypt hash
	ServiceType *string   `db:"service_type"`
	Token       *string   `db:"token"` // current session token, NULL when logged out
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
