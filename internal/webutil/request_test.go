package webutil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_admin_pro/internal/model"
	"go_admin_pro/internal/webutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONBody(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		nilBody       bool
		expectedField string
		expectedMsg   string
	}{
		{name: "ボディなし", nilBody: true, expectedMsg: "O corpo da requisição é obrigatório."},
		{name: "空文字", body: "", expectedMsg: "O corpo da requisição é obrigatório."},
		{name: "壊れたJSON", body: `{"general":`, expectedMsg: "O formato do corpo da requisição é inválido."},
		{name: "未知のフィールド", body: `{"general":{"name":"Ana"},"role":"admin"}`, expectedField: "role", expectedMsg: "Campo desconhecido: role."},
		{name: "2つ目の値", body: `{"general":{"name":"Ana"}} {}`, expectedMsg: "O corpo da requisição deve conter um único objeto JSON."},
		{name: "不正な日付", body: `{"general":{"name":"Ana","birth_date":"1990-13-40"}}`, expectedMsg: "Data inválida. Use o formato AAAA-MM-DD."},
		{name: "日付が数値", body: `{"general":{"name":"Ana","birth_date":19900101}}`, expectedMsg: "Data inválida. Use o formato AAAA-MM-DD."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.nilBody {
				req = httptest.NewRequest(http.MethodPost, "/clients", nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(tc.body))
			}

			var dst model.ClientRequest
			err := webutil.DecodeJSONBody(req, &dst)

			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidInput))
			var appErr *model.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_REQUEST_BODY", appErr.Detail.Code)
			assert.Equal(t, tc.expectedMsg, appErr.Detail.Message)
			assert.Equal(t, tc.expectedField, appErr.Detail.Field)
		})
	}
}

func TestDecodeJSONBody_TypeError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"general":{"name":123}}`))

	var dst model.ClientRequest
	err := webutil.DecodeJSONBody(req, &dst)

	require.Error(t, err)
	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Detail.Field, "name")
	assert.Contains(t, appErr.Detail.Message, "possui um tipo inválido")
	assert.Equal(t, http.StatusBadRequest, webutil.MapErrorToStatusCode(err))
}

func TestDecodeJSONBody_Success(t *testing.T) {
	body := `{"general":{"name":"Ana","birth_date":"1990-05-20"},"observations":""}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))

	var dst model.ClientRequest
	require.NoError(t, webutil.DecodeJSONBody(req, &dst))

	require.NotNil(t, dst.General)
	assert.Equal(t, "Ana", dst.General.Name)
	require.NotNil(t, dst.General.BirthDate)
	assert.Equal(t, "1990-05-20", dst.General.BirthDate.String())
	require.NotNil(t, dst.Observations, "empty string is kept distinct from omitted")
	assert.Equal(t, "", *dst.Observations)
	assert.Nil(t, dst.Address)
	assert.Nil(t, dst.Vehicle)
}
