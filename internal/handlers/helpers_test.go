// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_admin_pro/internal/config"
	"go_admin_pro/internal/handlers"
	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/model"
	"go_admin_pro/internal/repository"
	"go_admin_pro/internal/service"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testSecretKey = "handlers-test-secret"

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Token   string
	Headers map[string]string
}

// newSQLiteDB はテストごとに独立したインメモリDBを作成し、マイグレーションします。
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.Migrate(db), "Failed to migrate sqlite")
	return db
}

// newTestServer は本番と同じルーターを db の上に組み立てて起動します。
func newTestServer(t *testing.T, db *gorm.DB) *httptest.Server {
	t.Helper()

	tokenService, err := service.NewTokenService(config.JWTConfig{
		SecretKey:      testSecretKey,
		AccessTokenTTL: time.Hour,
		Issuer:         config.AppName,
	})
	require.NoError(t, err)

	clientRepo := repository.NewGormClientRepository()
	authService := service.NewAuthService(
		db,
		repository.NewGormTenantRepository(),
		repository.NewGormCredentialRepository(),
		service.NewBcryptHasher(bcrypt.MinCost),
		tokenService,
		&service.LogMailer{},
		config.AppName,
	)
	clientService := service.NewClientService(db, clientRepo, repository.NewGormAddressRepository(), repository.NewGormVehicleRepository())
	queryService := service.NewClientQueryService(db, clientRepo)

	reg := prometheus.NewRegistry()
	httpMetrics, err := middleware.NewHTTPMetrics(reg, "admin_pro_test")
	require.NoError(t, err)

	router := handlers.NewRouter(handlers.RouterDeps{
		Logger:         testLogger,
		DB:             db,
		Auth:           handlers.NewAuthHandler(authService),
		Clients:        handlers.NewClientHandler(clientService, queryService),
		Verifier:       tokenService,
		CORS:           config.CORSConfig{AllowedOrigins: []string{"*"}},
		Metrics:        httpMetrics,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		MetricsPath:    "/metrics",
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// sendRequest はHTTPリクエストを送信し、ステータスコードとボディを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails) (int, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.Token != "" {
		req.Header.Set("Authorization", "Bearer "+details.Token)
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	return resp.StatusCode, respBodyBytes
}

// decodeBody はレスポンスボディを v にデコードします。
func decodeBody(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, v), "Failed to unmarshal response: %s", string(body))
}

// verifyErrorResponse はエラーレスポンスのコードを検証します。
func verifyErrorResponse(t *testing.T, body []byte, expectedCode string) model.ErrorDetail {
	t.Helper()
	var errResp model.APIErrorResponse
	decodeBody(t, body, &errResp)
	assert.Equal(t, expectedCode, errResp.Error.Code, "error code mismatch (body: %s)", string(body))
	return errResp.Error
}

// registerAndLogin はテナントを登録してログインし、トークンを返します。
func registerAndLogin(t *testing.T, server *httptest.Server, tenantName, email, password string) (model.RegisterResponse, string) {
	t.Helper()

	status, body := sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/register",
		Body:   map[string]string{"tenant_name": tenantName, "email": email, "password": password},
	})
	require.Equal(t, http.StatusCreated, status, "register failed: %s", string(body))
	var registered model.RegisterResponse
	decodeBody(t, body, &registered)

	status, body = sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/login",
		Body:   map[string]string{"email": email, "password": password},
	})
	require.Equal(t, http.StatusOK, status, "login failed: %s", string(body))
	var login model.LoginResponse
	decodeBody(t, body, &login)
	require.NotEmpty(t, login.Token)

	return registered, login.Token
}

// minInt は2つのintのうち小さい方を返します。
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
