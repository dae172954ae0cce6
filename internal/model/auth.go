package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	Token string `json:"token"`
}

// MeResponse は GET /me のレスポンス
type MeResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	TenantName string    `json:"tenant_name,omitempty"`
	Email      string    `json:"email,omitempty"`
}

// TokenClaims はJWTに含めるカスタムクレーム（ペイロード）
type TokenClaims struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	jwt.RegisteredClaims
}

// Identity はログインで確認されたユーザーとテナントの組です。
type Identity struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
}

// TenantContext は認証済みリクエストのテナントスコープです。
// 値を作るのはトークン検証 (Auth Guard) だけで、リポジトリ操作はすべてこれを引数に取ります。
// ゼロ値は「未認証」を意味します。
type TenantContext struct {
	tenantID uuid.UUID
	userID   uuid.UUID
}

// NewTenantContext は検証済みのトークンからテナントスコープを作成します。
// トークン検証以外の場所から呼び出さないこと。
func NewTenantContext(tenantID, userID uuid.UUID) TenantContext {
	return TenantContext{tenantID: tenantID, userID: userID}
}

func (tc TenantContext) TenantID() uuid.UUID { return tc.tenantID }

func (tc TenantContext) UserID() uuid.UUID { return tc.userID }

// Valid はテナントIDが解決済みかどうかを返します。
func (tc TenantContext) Valid() bool {
	return tc.tenantID != uuid.Nil
}
