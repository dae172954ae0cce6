package model

import (
	"time"

	"github.com/google/uuid"
)

// Credential はログイン用のユーザー情報です。
// 必ずひとつの Tenant に属し、作成後に付け替えられることはありません。
type Credential struct {
	CredentialID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index"` // tenantsテーブルへの外部キー
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex:uq_credentials_email"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
}

func (Credential) TableName() string {
	return "credentials"
}
