package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/auth"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
	userrepo "github.com/ovaphlow/pitchfork/service-finance-go/internal/user/repo"
)

var ErrUserNotFound = common.NotFound("User is not found")

// UserService covers the profile operations of the authenticated caller.
type UserService struct {
	repo      userrepo.Store
	hasher    auth.PasswordHasher
	validator *common.Validator
}

func NewUserService(r userrepo.Store, hasher auth.PasswordHasher, v *common.Validator) *UserService {
	v.Register(updateSchema, UpdateUserRequest{})
	return &UserService{repo: r, hasher: hasher, validator: v}
}

// Update applies the provided fields to u and persists name and password.
func (s *UserService) Update(ctx context.Context, u *entity.User, req UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	next := *u
	if req.Name != nil {
		next.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		next.Password = hash
	}

	saved, err := s.repo.UpdateProfile(ctx, next.Email, next.Name, next.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &UserResponse{Email: saved.Email, Name: saved.Name}, nil
}

// Get projects the already resolved user.
func (s *UserService) Get(_ context.Context, u *entity.User) *UserResponse {
	return toResponse(u)
}

// Logout clears the session token. Calling it twice is harmless.
func (s *UserService) Logout(ctx context.Context, u *entity.User) (*UserResponse, error) {
	saved, err := s.repo.SetToken(ctx, u.Email, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toResponse(saved), nil
}
