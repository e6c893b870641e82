package expense

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/auth"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/expense/entity"
)

func newTestRouter(t *testing.T) (http.Handler, *mockStore) {
	svc, store := newTestService(t)
	h := NewHandler(svc, zap.NewNop().Sugar())
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithUser(req.Context(), owner)))
		})
	})
	r.Post("/api/expenses", h.Create)
	r.Get("/api/expenses", h.Search)
	r.Put("/api/expenses/{transactionId}", h.Update)
	r.Delete("/api/expenses/{transactionId}", h.Remove)
	return r, store
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	h, store := newTestRouter(t)
	store.On("Create", mock.Anything, mock.Anything).Return(coffee(), nil)

	rec := serve(h, http.MethodPost, "/api/expenses", `{"title":"Coffee","amount":"4.50","expense_date":"2024-01-01T00:00:00.000Z"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Expense berhasil dibuat!","data":{
		"id":"`+expenseID+`","title":"Coffee","amount":"4.50","expense_date":"2024-01-01T00:00:00.000Z"}}`, rec.Body.String())
}

func TestHandler_CreateValidation(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := serve(h, http.MethodPost, "/api/expenses", `{"title":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Validation error"`)
	assert.Contains(t, rec.Body.String(), `"field":"title"`)
}

func TestHandler_UpdateTakesIDFromPath(t *testing.T) {
	h, store := newTestRouter(t)
	store.On("FindOwned", mock.Anything, expenseID, "u-1").Return(coffee(), nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(e *entity.Expense) bool { return e.ID == expenseID })).
		Return(coffee(), nil)

	rec := serve(h, http.MethodPut, "/api/expenses/"+expenseID,
		`{"id":"ignored","title":"Coffee","amount":"4.50","expense_date":"2024-01-01"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Expense berhasil diupdate!"`)
}

func TestHandler_RemoveNotFound(t *testing.T) {
	h, store := newTestRouter(t)
	store.On("FindOwned", mock.Anything, expenseID, "u-1").Return(nil, sql.ErrNoRows)

	rec := serve(h, http.MethodDelete, "/api/expenses/"+expenseID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Expense is not found"}`, rec.Body.String())
}

func TestHandler_Remove(t *testing.T) {
	h, store := newTestRouter(t)
	store.On("FindOwned", mock.Anything, expenseID, "u-1").Return(coffee(), nil)
	store.On("Delete", mock.Anything, expenseID, "u-1").Return(coffee(), nil)

	rec := serve(h, http.MethodDelete, "/api/expenses/"+expenseID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Expense `+expenseID+` berhasil dihapus!","data":true}`, rec.Body.String())
}

func TestHandler_SearchDefaults(t *testing.T) {
	h, store := newTestRouter(t)
	store.On("List", mock.Anything, mock.Anything).
		Return([]entity.Expense{{ID: "e-1", Title: "Coffee", Amount: decimal.RequireFromString("4.5"), ExpenseDate: newYear}}, nil)
	store.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	rec := serve(h, http.MethodGet, "/api/expenses", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Expense berhasil difetch!",
		"data":[{"id":"e-1","title":"Coffee","amount":"4.50","expense_date":"2024-01-01T00:00:00.000Z"}],
		"paging":{"current_page":1,"size":10,"total_page":1}}`, rec.Body.String())
}

func TestHandler_SearchBadPage(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := serve(h, http.MethodGet, "/api/expenses?page=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"page"`)
}
