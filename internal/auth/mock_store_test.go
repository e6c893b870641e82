package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) user(args mock.Arguments) (*entity.User, error) {
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockStore) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	return m.user(m.Called(ctx, u))
}

func (m *mockStore) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *mockStore) GetByToken(ctx context.Context, token string) (*entity.User, error) {
	return m.user(m.Called(ctx, token))
}

func (m *mockStore) UpdateProfile(ctx context.Context, email, name, passwordHash string) (*entity.User, error) {
	return m.user(m.Called(ctx, email, name, passwordHash))
}

func (m *mockStore) SetToken(ctx context.Context, email string, token *string) (*entity.User, error) {
	return m.user(m.Called(ctx, email, token))
}

// plainHasher keeps tests fast.
type plainHasher struct{}

func (plainHasher) Hash(pw string) (string, error) { return "hashed:" + pw, nil }
func (plainHasher) Verify(hash, pw string) bool    { return hash == "hashed:"+pw }
