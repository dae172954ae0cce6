// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go_admin_pro/internal/model"

	"github.com/go-playground/validator/v10"
)

// 認証エラーは種別に関係なくこの応答に統一する
var unauthorizedDetail = model.ErrorDetail{
	Code:    "UNAUTHORIZED",
	Message: "Não autorizado.",
}

var internalErrorDetail = model.ErrorDetail{
	Code:    "INTERNAL_SERVER_ERROR",
	Message: "Ocorreu um erro interno no servidor.",
}

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	switch {
	case statusCode == http.StatusUnauthorized:
		// どのチェックで失敗したかは呼び出し元に返さない
		logger.Debug("Request unauthorized", "reason", err.Error())
		errResp = model.APIErrorResponse{Error: unauthorizedDetail}
	case statusCode == http.StatusInternalServerError:
		logger.Error("Unhandled error", "error", err)
		errResp = model.APIErrorResponse{Error: internalErrorDetail}
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	default:
		errResp = model.APIErrorResponse{Error: defaultDetail(statusCode)}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		// ErrStorage / ErrInternalServer を含め、ハンドリングされていないエラーは 500
		return http.StatusInternalServerError
	}
}

func defaultDetail(statusCode int) model.ErrorDetail {
	switch statusCode {
	case http.StatusNotFound:
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "Recurso não encontrado."}
	case http.StatusBadRequest:
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: "Dados inválidos."}
	case http.StatusConflict:
		return model.ErrorDetail{Code: "CONFLICT", Message: "O recurso já existe."}
	default:
		return internalErrorDetail
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger != nil {
			logger.Error("Error marshaling JSON response", "error", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Erro ao gerar a resposta."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondNoContent は 204 を返します (ボディなし)。
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// NewValidationErrorResponse はバリデーションエラーを翻訳済みメッセージの AppError にまとめます。
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, fieldPath(err))
		messages = append(messages, err.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}

// fieldPath は "ClientRequest.general.name" を "general.name" にします。
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
