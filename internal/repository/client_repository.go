//go:generate mockery --name ClientRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"strings"

	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository は clients テーブルへのアクセスです。
// すべての操作は tenant_id で絞り込みます。
type ClientRepository interface {
	Create(ctx context.Context, tx *gorm.DB, client *model.Client) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, clientID uuid.UUID) (*model.Client, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter model.ClientFilter) ([]*model.Client, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, clientID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, clientID uuid.UUID) error
}

type gormClientRepository struct{}

func NewGormClientRepository() ClientRepository {
	return &gormClientRepository{}
}

// 一覧で返すカラム
var clientSummaryColumns = []string{
	"client_id", "name", "cpf", "rg", "cnh", "cnpj", "celular", "email", "created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *gormClientRepository) Create(ctx context.Context, tx *gorm.DB, client *model.Client) error {
	logger := middleware.GetLogger(ctx)
	// Omit で関連 (Address / Vehicle) の自動保存を止める
	result := tx.WithContext(ctx).Omit("Address", "Vehicle").Create(client)
	if result.Error != nil {
		logger.Error("Error creating client in DB",
			"error", result.Error,
			"tenant_id", client.TenantID.String(),
			"client_id", client.ClientID.String(),
		)
		return storageError("gormClientRepository.Create", result.Error)
	}
	return nil
}

func (r *gormClientRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, clientID uuid.UUID) (*model.Client, error) {
	logger := middleware.GetLogger(ctx)
	var client model.Client
	result := db.WithContext(ctx).Where("tenant_id = ? AND client_id = ?", tenantID, clientID).First(&client)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding client by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"client_id", clientID.String(),
		)
		return nil, storageError("gormClientRepository.FindByID", result.Error)
	}
	return &client, nil
}

// FindByTenant はテナントの顧客を名前の昇順 (同名は作成順) で返します。
func (r *gormClientRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter model.ClientFilter) ([]*model.Client, error) {
	logger := middleware.GetLogger(ctx)
	clients := make([]*model.Client, 0)

	query := db.WithContext(ctx).Select(clientSummaryColumns).Where("tenant_id = ?", tenantID)
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		query = query.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(cpf) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	result := query.Order("name ASC").Order("created_at ASC").Find(&clients)
	if result.Error != nil {
		logger.Error("Error finding clients by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, storageError("gormClientRepository.FindByTenant", result.Error)
	}
	return clients, nil
}

// Update は顧客のスカラー項目を書き換えます。対象行がなければ ErrNotFound。
func (r *gormClientRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, clientID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Client{}).
		Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating client in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"client_id", clientID.String(),
		)
		return storageError("gormClientRepository.Update", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormClientRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, clientID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Delete(&model.Client{})
	if result.Error != nil {
		logger.Error("Error deleting client in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"client_id", clientID.String(),
		)
		return storageError("gormClientRepository.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
