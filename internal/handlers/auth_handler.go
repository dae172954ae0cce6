package handlers

import (
	"net/http"

	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/model"
	"go_admin_pro/internal/service"
	"go_admin_pro/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register はテナントと最初のユーザーを登録します (POST /register)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed for registration", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.service.Register(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Registration request successful", "tenant_id", res.TenantID.String())
	webutil.RespondWithJSON(w, http.StatusCreated, res, logger)
}

// Login はユーザーを認証し、トークンを返します (POST /login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode login request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed for login", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	loginResponse, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// サービス層でログは出力済みなので、ここではエラー処理に専念
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, loginResponse, logger)
}

// Me は認証済みユーザー自身の情報を返します (GET /me)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tc, err := middleware.TenantContextFrom(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	me, err := h.service.Me(r.Context(), tc)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, me, logger)
}
