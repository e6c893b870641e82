package auth

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
)

// Handler exposes HTTP endpoints for registration and login.
type Handler struct {
	svc    *Service
	logger *zap.SugaredLogger
}

func NewHandler(svc *Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	res, err := h.svc.Register(r.Context(), req)
	if err != nil {
		h.logger.Debugw("register failed", "email", req.Email, "err", err)
		common.WriteError(w, h.logger, err)
		return
	}
	common.OK(w, "User berhasil didaftarkan!", res)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginUserRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.logger, err)
		return
	}
	res, err := h.svc.Login(r.Context(), req)
	if err != nil {
		h.logger.Debugw("login failed", "email", req.Email, "err", err)
		common.WriteError(w, h.logger, err)
		return
	}
	common.OK(w, "User berhasil login!", res)
}
