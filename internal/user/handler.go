package user

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/auth"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
)

// Handler exposes HTTP endpoints for the current user.
type Handler struct {
	svc    *UserService
	logger *zap.SugaredLogger
}

func NewHandler(svc *UserService, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	var req UpdateUserRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	res, err := h.svc.Update(r.Context(), u, req)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.OK(w, "User berhasil diupdate!", res)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	common.OK(w, "User berhasil difetch!", h.svc.Get(r.Context(), u))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	u, err := auth.CurrentUser(r)
	if err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	if _, err := h.svc.Logout(r.Context(), u); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	h.logger.Debugw("user logged out", "email", u.Email)
	common.OK(w, "User berhasil dihapus!", true)
}
