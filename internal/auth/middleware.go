package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
	userrepo "github.com/ovaphlow/pitchfork/service-finance-go/internal/user/repo"
)

type contextKey string

const userKey = contextKey("currentUser")

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *entity.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom returns the user resolved by Gate, if any.
func UserFrom(ctx context.Context) (*entity.User, bool) {
	u, ok := ctx.Value(userKey).(*entity.User)
	return u, ok && u != nil
}

// CurrentUser is UserFrom for handlers: a missing user is an auth error.
func CurrentUser(r *http.Request) (*entity.User, error) {
	u, ok := UserFrom(r.Context())
	if !ok {
		return nil, common.ErrUnauthenticated
	}
	return u, nil
}

// Gate resolves the caller from the Authorization header.
type Gate struct {
	tokens *TokenIssuer
	users  userrepo.Store
	logger *zap.SugaredLogger
}

func NewGate(tokens *TokenIssuer, users userrepo.Store, logger *zap.SugaredLogger) *Gate {
	return &Gate{tokens: tokens, users: users, logger: logger}
}

// Middleware rejects requests without a live session and stores the user in
// the request context otherwise.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := g.resolve(r)
		if err != nil {
			common.WriteError(w, g.logger, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func (g *Gate) resolve(r *http.Request) (*entity.User, error) {
	raw := bearerToken(r.Header.Get("Authorization"))
	if raw == "" {
		return nil, common.ErrUnauthenticated
	}
	claims, err := g.tokens.Parse(raw)
	if err != nil {
		g.logger.Debugw("rejected token", "err", err)
		return nil, common.ErrUnauthenticated
	}
	u, err := g.users.GetByToken(r.Context(), claims.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrUnauthenticated
		}
		return nil, err
	}
	if u.ID != claims.Subject {
		return nil, common.ErrUnauthenticated
	}
	return u, nil
}

// bearerToken accepts "Bearer <token>" as well as a bare token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
