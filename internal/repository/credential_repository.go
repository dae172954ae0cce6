//go:generate mockery --name CredentialRepository --output ./mocks --outpkg mocks --case=underscore
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

type CredentialRepository interface {
	Create(ctx context.Context, db *gorm.DB, credential *model.Credential) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Credential, error)
	FindByID(ctx context.Context, db *gorm.DB, tenantID, credentialID uuid.UUID) (*model.Credential, error)
}

type gormCredentialRepository struct{}

func NewGormCredentialRepository() CredentialRepository {
	return &gormCredentialRepository{}
}

// NormalizeEmail はメールアドレスの比較用の正規化 (前後空白除去 + 小文字化) です。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *gormCredentialRepository) Create(ctx context.Context, db *gorm.DB, credential *model.Credential) error {
	logger := middleware.GetLogger(ctx)
	credential.Email = NormalizeEmail(credential.Email)

	result := db.WithContext(ctx).Create(credential)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			// ハッシュはログに出さない
			logger.Warn(
				"Duplicate email on create credential",
				"tenant_id", credential.TenantID.String(),
			)
			return model.ErrConflict
		}
		logger.Error(
			"Error creating credential in DB",
			"error", result.Error,
			"tenant_id", credential.TenantID.String(),
		)
		return storageError("gormCredentialRepository.Create", result.Error)
	}
	return nil
}

func (r *gormCredentialRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Credential, error) {
	logger := middleware.GetLogger(ctx)
	var credential model.Credential

	result := db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&credential)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Credential not found by email")
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding credential by email in DB", "error", result.Error)
		return nil, storageError("gormCredentialRepository.FindByEmail", result.Error)
	}
	return &credential, nil
}

// FindByID はテナント内のユーザーを ID で取得します。
func (r *gormCredentialRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, credentialID uuid.UUID) (*model.Credential, error) {
	logger := middleware.GetLogger(ctx)
	var credential model.Credential

	result := db.WithContext(ctx).
		Where("credential_id = ? AND tenant_id = ?", credentialID, tenantID).
		First(&credential)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding credential by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"user_id", credentialID.String(),
		)
		return nil, storageError("gormCredentialRepository.FindByID", result.Error)
	}
	return &credential, nil
}
