package model

import (
	"time"

	"github.com/google/uuid"
)

// Tenant は会社 (テナント) です。登録時に一度だけ作成され、以降は変更されません。
type Tenant struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// GORM用のリレーション (JSONには含めない)
	Credentials []Credential `gorm:"foreignKey:TenantID;references:TenantID" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	TenantName string `json:"tenant_name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email,max=254"`
	Password   string `json:"password" validate:"required,max=72"` // bcrypt は72バイトまで
}

// RegisterResponse は登録成功時のレスポンス
type RegisterResponse struct {
	TenantID   uuid.UUID `json:"tenant_id"`
	UserID     uuid.UUID `json:"user_id"`
	TenantName string    `json:"tenant_name"`
	Email      string    `json:"email"`
}
