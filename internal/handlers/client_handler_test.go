package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"go_admin_pro/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 登録からログイン、顧客の作成・一覧・更新・取得・削除までの一連の流れ
func TestClientAPI_Scenario(t *testing.T) {
	db := newSQLiteDB(t)
	server := newTestServer(t, db)
	_, token := registerAndLogin(t, server, "Acme", "a@acme.io", "pw123456")

	// create
	status, body := sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/clients",
		Token:  token,
		Body: map[string]interface{}{
			"general": map[string]interface{}{"name": "Jane Doe"},
			"vehicle": map[string]interface{}{"plate": "ABC1234"},
		},
	})
	require.Equal(t, http.StatusCreated, status, "body: %s", string(body))
	var created model.ClientAggregate
	decodeBody(t, body, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Jane Doe", created.General.Name)
	assert.Equal(t, "ABC1234", created.Vehicle.Plate)
	clientPath := "/clients/" + created.ID.String()

	// list
	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/clients", Token: token})
	require.Equal(t, http.StatusOK, status, "body: %s", string(body))
	var summaries []model.ClientSummary
	decodeBody(t, body, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Jane Doe", summaries[0].Name)
	assert.Equal(t, created.ID, summaries[0].ID)

	// update (住所を追加、車両は指定しない)
	status, body = sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPut,
		Path:   clientPath,
		Token:  token,
		Body: map[string]interface{}{
			"general": map[string]interface{}{"name": "Jane Doe"},
			"address": map[string]interface{}{"city": "Springfield"},
		},
	})
	require.Equal(t, http.StatusOK, status, "body: %s", string(body))
	var updated model.Client
	decodeBody(t, body, &updated)
	assert.Equal(t, created.ID, updated.ClientID)
	assert.Equal(t, "Jane Doe", updated.Name)

	// get
	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: clientPath, Token: token})
	require.Equal(t, http.StatusOK, status, "body: %s", string(body))
	var got model.ClientAggregate
	decodeBody(t, body, &got)
	assert.Equal(t, "Springfield", got.Address.City)
	assert.Equal(t, "ABC1234", got.Vehicle.Plate, "vehicle must be unchanged")

	// delete
	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodDelete, Path: clientPath, Token: token})
	require.Equal(t, http.StatusNoContent, status, "body: %s", string(body))
	assert.Empty(t, body)

	// get after delete
	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: clientPath, Token: token})
	require.Equal(t, http.StatusNotFound, status)
	verifyErrorResponse(t, body, "NOT_FOUND")

	var addressCount, vehicleCount int64
	require.NoError(t, db.Model(&model.Address{}).Where("client_id = ?", created.ID).Count(&addressCount).Error)
	require.NoError(t, db.Model(&model.Vehicle{}).Where("client_id = ?", created.ID).Count(&vehicleCount).Error)
	assert.Zero(t, addressCount)
	assert.Zero(t, vehicleCount)
}

func TestClientAPI_TenantIsolation(t *testing.T) {
	db := newSQLiteDB(t)
	server := newTestServer(t, db)
	_, tokenA := registerAndLogin(t, server, "Acme", "a@acme.io", "pw123456")
	_, tokenB := registerAndLogin(t, server, "Globex", "b@globex.io", "pw123456")

	status, body := sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/clients",
		Token:  tokenA,
		Body:   map[string]interface{}{"general": map[string]interface{}{"name": "Jane Doe"}},
	})
	require.Equal(t, http.StatusCreated, status, "body: %s", string(body))
	var created model.ClientAggregate
	decodeBody(t, body, &created)
	clientPath := "/clients/" + created.ID.String()

	requests := []httpRequestDetails{
		{Method: http.MethodGet, Path: clientPath, Token: tokenB},
		{Method: http.MethodPut, Path: clientPath, Token: tokenB, Body: map[string]interface{}{"general": map[string]interface{}{"name": "Hijacked"}}},
		{Method: http.MethodDelete, Path: clientPath, Token: tokenB},
	}
	for _, req := range requests {
		t.Run("他テナントからの"+req.Method+"はNotFound", func(t *testing.T) {
			status, body := sendRequest(t, server, req)
			require.Equal(t, http.StatusNotFound, status, "body: %s", string(body))
			verifyErrorResponse(t, body, "NOT_FOUND")
		})
	}

	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/clients", Token: tokenB})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))

	// 元のテナントからは変わらず見える
	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: clientPath, Token: tokenA})
	require.Equal(t, http.StatusOK, status)
	var got model.ClientAggregate
	decodeBody(t, body, &got)
	assert.Equal(t, "Jane Doe", got.General.Name)
}

func TestClientAPI_Errors(t *testing.T) {
	db := newSQLiteDB(t)
	server := newTestServer(t, db)
	_, token := registerAndLogin(t, server, "Acme", "a@acme.io", "pw123456")

	testCases := []struct {
		name         string
		req          httpRequestDetails
		expectedCode int
		errorCode    string
		errorField   string
	}{
		{
			name:         "異常系：トークンなしで一覧",
			req:          httpRequestDetails{Method: http.MethodGet, Path: "/clients"},
			expectedCode: http.StatusUnauthorized,
			errorCode:    "UNAUTHORIZED",
		},
		{
			name:         "異常系：トークンなしで作成",
			req:          httpRequestDetails{Method: http.MethodPost, Path: "/clients", Body: map[string]interface{}{"general": map[string]interface{}{"name": "X"}}},
			expectedCode: http.StatusUnauthorized,
			errorCode:    "UNAUTHORIZED",
		},
		{
			name:         "異常系：generalなし",
			req:          httpRequestDetails{Method: http.MethodPost, Path: "/clients", Token: token, Body: map[string]interface{}{"observations": "x"}},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
			errorField:   "general",
		},
		{
			name:         "異常系：名前が空",
			req:          httpRequestDetails{Method: http.MethodPost, Path: "/clients", Token: token, Body: map[string]interface{}{"general": map[string]interface{}{"name": ""}}},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
			errorField:   "general.name",
		},
		{
			name:         "異常系：名前が空白のみ",
			req:          httpRequestDetails{Method: http.MethodPost, Path: "/clients", Token: token, Body: map[string]interface{}{"general": map[string]interface{}{"name": "   "}}},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
			errorField:   "general.name",
		},
		{
			name: "異常系：住所に未知のフィールド",
			req: httpRequestDetails{Method: http.MethodPost, Path: "/clients", Token: token, Body: map[string]interface{}{
				"general": map[string]interface{}{"name": "Jane"},
				"address": map[string]interface{}{"country": "BR"},
			}},
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系：生年月日の形式が不正",
			req: httpRequestDetails{Method: http.MethodPost, Path: "/clients", Token: token, Body: map[string]interface{}{
				"general": map[string]interface{}{"name": "Jane", "birth_date": "31/12/1990"},
			}},
			expectedCode: http.StatusBadRequest,
			errorCode:    "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系：年式が範囲外",
			req: httpRequestDetails{Method: http.MethodPost, Path: "/clients", Token: token, Body: map[string]interface{}{
				"general": map[string]interface{}{"name": "Jane"},
				"vehicle": map[string]interface{}{"model_year": 1800},
			}},
			expectedCode: http.StatusBadRequest,
			errorCode:    "VALIDATION_ERROR",
			errorField:   "vehicle.model_year",
		},
		{
			name:         "異常系：UUIDでないIDの取得",
			req:          httpRequestDetails{Method: http.MethodGet, Path: "/clients/not-a-uuid", Token: token},
			expectedCode: http.StatusNotFound,
			errorCode:    "NOT_FOUND",
		},
		{
			name:         "異常系：存在しないIDの削除",
			req:          httpRequestDetails{Method: http.MethodDelete, Path: "/clients/" + uuid.NewString(), Token: token},
			expectedCode: http.StatusNotFound,
			errorCode:    "NOT_FOUND",
		},
		{
			name: "異常系：存在しないIDの更新",
			req: httpRequestDetails{Method: http.MethodPut, Path: "/clients/" + uuid.NewString(), Token: token, Body: map[string]interface{}{
				"general": map[string]interface{}{"name": "Jane"},
			}},
			expectedCode: http.StatusNotFound,
			errorCode:    "NOT_FOUND",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := sendRequest(t, server, tc.req)
			require.Equal(t, tc.expectedCode, status, "body: %s", string(body))
			detail := verifyErrorResponse(t, body, tc.errorCode)
			if tc.errorField != "" {
				assert.Equal(t, tc.errorField, detail.Field)
			}
		})
	}
}

func TestClientAPI_ListOrderAndSearch(t *testing.T) {
	db := newSQLiteDB(t)
	server := newTestServer(t, db)
	_, token := registerAndLogin(t, server, "Acme", "a@acme.io", "pw123456")

	for _, c := range []struct{ name, cpf string }{
		{"Carol", "111.222.333-44"},
		{"Alice", "555.666.777-88"},
		{"Bob", "999.000.111-22"},
	} {
		status, body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPost,
			Path:   "/clients",
			Token:  token,
			Body:   map[string]interface{}{"general": map[string]interface{}{"name": c.name, "cpf": c.cpf}},
		})
		require.Equal(t, http.StatusCreated, status, "body: %s", string(body))
	}

	testCases := []struct {
		name     string
		path     string
		expected []string
	}{
		{name: "全件は名前順", path: "/clients", expected: []string{"Alice", "Bob", "Carol"}},
		{name: "名前で検索 (大文字小文字を区別しない)", path: "/clients?q=ALI", expected: []string{"Alice"}},
		{name: "CPFで検索", path: "/clients?q=999.000", expected: []string{"Bob"}},
		{name: "該当なし", path: "/clients?q=zzz", expected: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: tc.path, Token: token})
			require.Equal(t, http.StatusOK, status)
			var summaries []model.ClientSummary
			decodeBody(t, body, &summaries)
			names := make([]string, 0, len(summaries))
			for _, s := range summaries {
				names = append(names, s.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	db := newSQLiteDB(t)
	server := newTestServer(t, db)

	status, body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/health"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", string(body))

	status, body = sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/metrics"})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `admin_pro_test_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
