package service

import (
	"errors"
	"fmt"
	"time"

	"go_admin_pro/internal/config"
	"go_admin_pro/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService はステートレスなアクセストークンの発行と検証を行います。
// サーバー側にセッションは持たない。
type TokenService interface {
	Issue(tenantID, userID uuid.UUID) (string, error)
	Verify(tokenString string) (model.TenantContext, error)
}

type tokenService struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
	now       func() time.Time
}

// TokenOption は TokenService の生成オプションです。
type TokenOption func(*tokenService)

// WithClock は現在時刻の取得方法を差し替えます (テスト用)。
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService は署名キーと有効期間を明示的に受け取って TokenService を生成します。
func NewTokenService(cfg config.JWTConfig, opts ...TokenOption) (TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, config.ErrMissingSecretKey
	}
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = config.DefaultAccessTokenTTL
	}
	s := &tokenService{
		secretKey: []byte(cfg.SecretKey),
		ttl:       ttl,
		issuer:    cfg.Issuer,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue は tenant_id / user_id を含む HS256 トークンを発行します (有効期限は発行から ttl)。
func (s *tokenService) Issue(tenantID, userID uuid.UUID) (string, error) {
	if tenantID == uuid.Nil || userID == uuid.Nil {
		return "", fmt.Errorf("tokenService.Issue: %w: empty tenant or user id", model.ErrInvalidInput)
	}
	now := s.now()
	claims := &model.TokenClaims{
		TenantID: tenantID.String(),
		UserID:   userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("tokenService.Issue: %w: %w", model.ErrInternalServer, err)
	}
	return signed, nil
}

// Verify はトークンを検証し、テナントスコープを返します。
// 解析できない場合は ErrAuthMalformed、期限切れは ErrTokenExpired、それ以外の不正は ErrTokenInvalid。
func (s *tokenService) Verify(tokenString string) (model.TenantContext, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	claims := &model.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, parserOpts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return model.TenantContext{}, fmt.Errorf("%w: %v", model.ErrAuthMalformed, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return model.TenantContext{}, model.ErrTokenExpired
		default:
			return model.TenantContext{}, fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
		}
	}
	if !token.Valid {
		return model.TenantContext{}, model.ErrTokenInvalid
	}

	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil || tenantID == uuid.Nil {
		return model.TenantContext{}, fmt.Errorf("%w: tenant_id claim", model.ErrTokenInvalid)
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil || userID == uuid.Nil {
		return model.TenantContext{}, fmt.Errorf("%w: user_id claim", model.ErrTokenInvalid)
	}

	return model.NewTenantContext(tenantID, userID), nil
}
