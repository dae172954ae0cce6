// internal/handlers/client_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/model"
	"go_admin_pro/internal/service"
	"go_admin_pro/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ClientHandler struct {
	service service.ClientService
	query   service.ClientQueryService
}

func NewClientHandler(s service.ClientService, q service.ClientQueryService) *ClientHandler {
	return &ClientHandler{service: s, query: q}
}

// tenantScope はコンテキストからテナントスコープを取り出し、ロガーにテナント情報を付けます。
func tenantScope(w http.ResponseWriter, r *http.Request, handler string) (model.TenantContext, *slog.Logger, bool) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", handler))
	tc, err := middleware.TenantContextFrom(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return model.TenantContext{}, nil, false
	}
	return tc, logger, true
}

// clientIDParam は URL の {id} を解析します。UUID でない ID は存在しない顧客として 404 にする。
func clientIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid client ID format in URL", slog.String("id", idStr))
		webutil.HandleError(w, logger, model.NewAppError("NOT_FOUND", "Cliente não encontrado.", "", model.ErrNotFound))
		return uuid.Nil, false
	}
	return id, true
}

func decodeClientRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*model.ClientRequest, bool) {
	var req model.ClientRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return nil, false
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return nil, false
	}
	return &req, true
}

// CreateClient は顧客を作成します (POST /clients)
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	tc, logger, ok := tenantScope(w, r, "CreateClient")
	if !ok {
		return
	}
	req, ok := decodeClientRequest(w, r, logger)
	if !ok {
		return
	}

	aggregate, err := h.service.Create(r.Context(), tc, req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, aggregate, logger)
}

// ListClients は顧客一覧を返します (GET /clients, ?q= で名前/CPF検索)
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	tc, logger, ok := tenantScope(w, r, "ListClients")
	if !ok {
		return
	}

	filter := model.ClientFilter{Query: r.URL.Query().Get("q")}
	clients, err := h.query.List(r.Context(), tc, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Clients listed successfully", slog.Int("count", len(clients)))
	webutil.RespondWithJSON(w, http.StatusOK, clients, logger)
}

// GetClient は顧客を住所・車両とあわせて返します (GET /clients/{id})
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	tc, logger, ok := tenantScope(w, r, "GetClient")
	if !ok {
		return
	}
	clientID, ok := clientIDParam(w, r, logger)
	if !ok {
		return
	}

	aggregate, err := h.service.Get(r.Context(), tc, clientID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, aggregate, logger)
}

// UpdateClient は顧客を更新します (PUT /clients/{id})
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	tc, logger, ok := tenantScope(w, r, "UpdateClient")
	if !ok {
		return
	}
	clientID, ok := clientIDParam(w, r, logger)
	if !ok {
		return
	}
	req, ok := decodeClientRequest(w, r, logger)
	if !ok {
		return
	}

	client, err := h.service.Update(r.Context(), tc, clientID, req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, client, logger)
}

// DeleteClient は顧客を削除します (DELETE /clients/{id})
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	tc, logger, ok := tenantScope(w, r, "DeleteClient")
	if !ok {
		return
	}
	clientID, ok := clientIDParam(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), tc, clientID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondNoContent(w)
}
