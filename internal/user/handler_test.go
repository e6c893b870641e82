package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/auth"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
)

func newTestHandler(t *testing.T) (*Handler, *mockStore) {
	svc, store := newTestService(t)
	return NewHandler(svc, zap.NewNop().Sugar()), store
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(auth.WithUser(r.Context(), ann()))
}

func TestHandler_Get(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.Get(rec, authed(httptest.NewRequest(http.MethodGet, "/api/users/current", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"User berhasil difetch!","data":{"email":"ann@example.com","name":"Ann","service_type":"personal"}}`, rec.Body.String())
}

func TestHandler_GetUnauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/users/current", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Update(t *testing.T) {
	h, store := newTestHandler(t)
	store.On("UpdateProfile", mock.Anything, "ann@example.com", "Annie", "hashed:old").
		Return(&entity.User{Email: "ann@example.com", Name: "Annie"}, nil)
	rec := httptest.NewRecorder()

	h.Update(rec, authed(httptest.NewRequest(http.MethodPatch, "/api/users", strings.NewReader(`{"name":"Annie"}`))))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"User berhasil diupdate!","data":{"email":"ann@example.com","name":"Annie"}}`, rec.Body.String())
}

func TestHandler_Logout(t *testing.T) {
	h, store := newTestHandler(t)
	store.On("SetToken", mock.Anything, "ann@example.com", (*string)(nil)).Return(ann(), nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, authed(httptest.NewRequest(http.MethodDelete, "/api/users/current", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"User berhasil dihapus!","data":true}`, rec.Body.String())
}
