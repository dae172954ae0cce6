package service

import (
	"context"

	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/model"
	"go_admin_pro/internal/repository"

	"gorm.io/gorm"
)

// ClientQueryService は顧客一覧の読み取り専用サービスです。
type ClientQueryService interface {
	List(ctx context.Context, tc model.TenantContext, filter model.ClientFilter) ([]model.ClientSummary, error)
}

type clientQueryService struct {
	db         *gorm.DB
	clientRepo repository.ClientRepository
}

func NewClientQueryService(db *gorm.DB, clientRepo repository.ClientRepository) ClientQueryService {
	return &clientQueryService{db: db, clientRepo: clientRepo}
}

// List はテナントの顧客を名前の昇順で返します。0件なら空のスライス。
func (s *clientQueryService) List(ctx context.Context, tc model.TenantContext, filter model.ClientFilter) ([]model.ClientSummary, error) {
	logger := middleware.GetLogger(ctx)
	if !tc.Valid() {
		return nil, model.ErrUnauthorized
	}

	clients, err := s.clientRepo.FindByTenant(ctx, s.db, tc.TenantID(), filter)
	if err != nil {
		logger.Error("Error listing clients", "error", err, "tenant_id", tc.TenantID().String())
		return nil, err
	}

	summaries := make([]model.ClientSummary, 0, len(clients))
	for _, c := range clients {
		summaries = append(summaries, model.NewClientSummary(c))
	}
	logger.Debug("Clients listed", "count", len(summaries), "filtered", filter.Query != "")
	return summaries, nil
}
