package expense

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/auth"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// Handler exposes HTTP endpoints for expenses of the current user.
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	var req CreateExpenseRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	res, err := h.svc.Create(r.Context(), u, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.OK(w, "Expense berhasil dibuat!", res)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	var req UpdateExpenseRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	req.ID = chi.URLParam(r, "transactionId")
	res, err := h.svc.Update(r.Context(), u, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.OK(w, "Expense berhasil diupdate!", res)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	id := chi.URLParam(r, "transactionId")
	if _, err := h.svc.Remove(r.Context(), u, id); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.OK(w, fmt.Sprintf("Expense %s berhasil dihapus!", id), true)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	q := r.URL.Query()
	page, size, err := common.PageQuery(q, defaultPage, defaultSize)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	res, err := h.svc.Search(r.Context(), u, SearchExpenseRequest{
		Title:  common.OptionalParam(q, "title"),
		Amount: common.OptionalParam(q, "amount"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteResponse(w, res)
}
