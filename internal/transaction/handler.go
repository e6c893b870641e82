package transaction

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/auth"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
)

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
	var req CreateTransactionRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	res, err := h.svc.Create(r.Context(), u, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.OK(w, "Transaction berhasil dibuat!", res)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	var req UpdateTransactionRequest
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
	common.OK(w, "Transaction berhasil diupdate!", res)
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
	common.OK(w, fmt.Sprintf("Transaction %s berhasil dihapus!", id), true)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	q := r.URL.Query()
	page, size, err := common.PageQuery(q, 1, 10)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	res, err := h.svc.Search(r.Context(), u, SearchTransactionRequest{
		Title:  common.OptionalParam(q, "title"),
		Amount: common.OptionalParam(q, "amount"),
		Type:   common.OptionalParam(q, "type"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.WriteResponse(w, res)
}
