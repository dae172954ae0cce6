//go:generate mockery --name VehicleRepository --output ./mocks --outpkg mocks --case=underscore
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

// VehicleRepository は vehicles テーブルへのアクセスです。
// client_id が主キーなので、1顧客につき行は最大1つ。
type VehicleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vehicle *model.Vehicle) error
	FindByClientID(ctx context.Context, db *gorm.DB, clientID uuid.UUID) (*model.Vehicle, error)
	ReplaceOrInsert(ctx context.Context, tx *gorm.DB, vehicle *model.Vehicle) error
	DeleteByClientID(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) error
}

type gormVehicleRepository struct{}

func NewGormVehicleRepository() VehicleRepository {
	return &gormVehicleRepository{}
}

// 競合時に上書きするカラム (client_id 以外すべて)
var vehicleColumns = []string{
	"brand", "model", "plate", "color", "model_year", "manufacture_year",
	"chassis", "registration_number", "updated_at",
}

func (r *gormVehicleRepository) Create(ctx context.Context, tx *gorm.DB, vehicle *model.Vehicle) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vehicle)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Vehicle already exists for client", "client_id", vehicle.ClientID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating vehicle in DB",
			"error", result.Error,
			"client_id", vehicle.ClientID.String(),
		)
		return storageError("gormVehicleRepository.Create", result.Error)
	}
	return nil
}

func (r *gormVehicleRepository) FindByClientID(ctx context.Context, db *gorm.DB, clientID uuid.UUID) (*model.Vehicle, error) {
	logger := middleware.GetLogger(ctx)
	var vehicle model.Vehicle
	result := db.WithContext(ctx).Where("client_id = ?", clientID).First(&vehicle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vehicle by client ID in DB",
			"error", result.Error,
			"client_id", clientID.String(),
		)
		return nil, storageError("gormVehicleRepository.FindByClientID", result.Error)
	}
	return &vehicle, nil
}

// ReplaceOrInsert は client_id をキーに、行がなければ挿入し、あれば全項目を置き換えます。
func (r *gormVehicleRepository) ReplaceOrInsert(ctx context.Context, tx *gorm.DB, vehicle *model.Vehicle) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns(vehicleColumns),
	}).Create(vehicle)
	if result.Error != nil {
		logger.Error("Error upserting vehicle in DB",
			"error", result.Error,
			"client_id", vehicle.ClientID.String(),
		)
		return storageError("gormVehicleRepository.ReplaceOrInsert", result.Error)
	}
	return nil
}

// DeleteByClientID は行がなくてもエラーにしません。
func (r *gormVehicleRepository) DeleteByClientID(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("client_id = ?", clientID).Delete(&model.Vehicle{})
	if result.Error != nil {
		logger.Error("Error deleting vehicle in DB",
			"error", result.Error,
			"client_id", clientID.String(),
		)
		return storageError("gormVehicleRepository.DeleteByClientID", result.Error)
	}
	return nil
}
