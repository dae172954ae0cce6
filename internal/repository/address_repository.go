//go:generate mockery --name AddressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"

	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddressRepository は addresses テーブルへのアクセスです。
// client_id が主キーなので、1顧客につき行は最大1つ。
type AddressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, address *model.Address) error
	FindByClientID(ctx context.Context, db *gorm.DB, clientID uuid.UUID) (*model.Address, error)
	ReplaceOrInsert(ctx context.Context, tx *gorm.DB, address *model.Address) error
	DeleteByClientID(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) error
}

type gormAddressRepository struct{}

func NewGormAddressRepository() AddressRepository {
	return &gormAddressRepository{}
}

// 競合時に上書きするカラム (client_id 以外すべて)
var addressColumns = []string{
	"zip_code", "street", "number", "complement", "neighborhood", "city", "state", "updated_at",
}

func (r *gormAddressRepository) Create(ctx context.Context, tx *gorm.DB, address *model.Address) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(address)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Address already exists for client", "client_id", address.ClientID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating address in DB",
			"error", result.Error,
			"client_id", address.ClientID.String(),
		)
		return storageError("gormAddressRepository.Create", result.Error)
	}
	return nil
}

func (r *gormAddressRepository) FindByClientID(ctx context.Context, db *gorm.DB, clientID uuid.UUID) (*model.Address, error) {
	logger := middleware.GetLogger(ctx)
	var address model.Address
	result := db.WithContext(ctx).Where("client_id = ?", clientID).First(&address)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding address by client ID in DB",
			"error", result.Error,
			"client_id", clientID.String(),
		)
		return nil, storageError("gormAddressRepository.FindByClientID", result.Error)
	}
	return &address, nil
}

// ReplaceOrInsert は client_id をキーに、行がなければ挿入し、あれば全項目を置き換えます。
func (r *gormAddressRepository) ReplaceOrInsert(ctx context.Context, tx *gorm.DB, address *model.Address) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns(addressColumns),
	}).Create(address)
	if result.Error != nil {
		logger.Error("Error upserting address in DB",
			"error", result.Error,
			"client_id", address.ClientID.String(),
		)
		return storageError("gormAddressRepository.ReplaceOrInsert", result.Error)
	}
	return nil
}

// DeleteByClientID は行がなくてもエラーにしません。
func (r *gormAddressRepository) DeleteByClientID(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("client_id = ?", clientID).Delete(&model.Address{})
	if result.Error != nil {
		logger.Error("Error deleting address in DB",
			"error", result.Error,
			"client_id", clientID.String(),
		)
		return storageError("gormAddressRepository.DeleteByClientID", result.Error)
	}
	return nil
}
