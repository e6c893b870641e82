package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
	userrepo "github.com/ovaphlow/pitchfork/service-finance-go/internal/user/repo"
	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/utilities"
)

var (
	ErrEmailTaken     = common.Conflict("Email already registered")
	ErrBadCredentials = common.Unauthorized("Email or password is wrong")
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// Service handles registration and login.
type Service struct {
	users     userrepo.Store
	hasher    PasswordHasher
	tokens    *TokenIssuer
	validator *common.Validator
}

func NewService(users userrepo.Store, hasher PasswordHasher, tokens *TokenIssuer, v *common.Validator) *Service {
	v.Register(registerSchema, RegisterUserRequest{})
	v.Register(loginSchema, LoginUserRequest{})
	return &Service{users: users, hasher: hasher, tokens: tokens, validator: v}
}

// Register creates a user with a hashed password.
func (s *Service) Register(ctx context.Context, req RegisterUserRequest) (*AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, &entity.User{
		ID:          utilities.NewUUID(),
		Email:       req.Email,
		Name:        req.Name,
		Password:    hash,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &AuthResponse{Email: u.Email, Name: u.Name, ServiceType: u.ServiceType}, nil
}

// Login verifies credentials, rotates the session token and returns a
// signed JWT bound to it.
func (s *Service) Login(ctx context.Context, req LoginUserRequest) (*AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(u.Password, req.Password) {
		return nil, ErrBadCredentials
	}

	session := utilities.NewKSUID()
	u, err = s.users.SetToken(ctx, u.Email, &session)
	if err != nil {
		return nil, err
	}
	signed, err := s.tokens.Issue(u.ID, session)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Email: u.Email, Name: u.Name, ServiceType: u.ServiceType, Token: signed}, nil
}
