package auth

import (
	"errors"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(hash, pw string) bool
}

// BcryptHasher implementation.
type BcryptHasher struct{ Cost int }

// Hash rejects passwords over MaxPasswordBytes with a validation error on
// the password field.
func (b BcryptHasher) Hash(pw string) (string, error) {
	if len(pw) > MaxPasswordBytes {
		return "", errPasswordTooLong()
	}
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errPasswordTooLong()
		}
		return "", err
	}
	return string(h), nil
}

func (b BcryptHasher) Verify(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

func errPasswordTooLong() error {
	return common.NewValidationError(common.FieldError{
		Field:   "password",
		Rule:    "max",
		Param:   strconv.Itoa(MaxPasswordBytes),
		Message: "password must contain at most " + strconv.Itoa(MaxPasswordBytes) + " bytes",
	})
}
