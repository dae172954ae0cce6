package middleware

import (
	"context"
	"net/http"
	"strings"

	"go_admin_pro/internal/model"
	"go_admin_pro/internal/webutil"
)

// TokenVerifier はトークンを検証してテナントスコープを返します (service.TokenService が実装)。
type TokenVerifier interface {
	Verify(token string) (model.TenantContext, error)
}

type tenantCtxKey struct{}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア。
// 失敗した場合は 401 を返し、次のハンドラは呼ばない。
func JWTAuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			// 1. Authorization ヘッダーからトークンを取得
			tokenString, err := ParseBearer(r.Header.Get("Authorization"))
			if err != nil {
				logger.Warn("JWT auth failed: invalid Authorization header", "reason", err.Error())
				webutil.HandleError(w, logger, err)
				return
			}

			// 2. 署名と有効期限を検証
			tc, err := verifier.Verify(tokenString)
			if err != nil {
				logger.Warn("JWT auth failed: token rejected", "reason", err.Error())
				webutil.HandleError(w, logger, err)
				return
			}

			// 3. テナントスコープをコンテキストにセットして次へ
			ctx := WithTenantContext(r.Context(), tc)
			reqLogger := logger.With("tenant_id", tc.TenantID().String(), "user_id", tc.UserID().String())
			ctx = WithLogger(ctx, reqLogger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseBearer は "Bearer {token}" 形式のヘッダーからトークン部分を取り出します。
func ParseBearer(authHeader string) (string, error) {
	if authHeader == "" {
		return "", model.ErrAuthMissing
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
		return "", model.ErrAuthMalformed
	}
	return headerParts[1], nil
}

// WithTenantContext は検証済みのテナントスコープをコンテキストに格納します。
func WithTenantContext(ctx context.Context, tc model.TenantContext) context.Context {
	return context.WithValue(ctx, tenantCtxKey{}, tc)
}

// TenantContextFrom は JWTAuthMiddleware が格納したテナントスコープを取り出します。
// ミドルウェアを通っていないリクエストでは ErrUnauthorized を返します。
func TenantContextFrom(ctx context.Context) (model.TenantContext, error) {
	tc, ok := ctx.Value(tenantCtxKey{}).(model.TenantContext)
	if !ok || !tc.Valid() {
		return model.TenantContext{}, model.ErrUnauthorized
	}
	return tc, nil
}
