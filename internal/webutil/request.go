package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go_admin_pro/internal/model"
)

// ボディの上限 (1MB)
const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディを dst にデコードします。
// 未知のキー、JSON 以外の内容、2つ目の値はすべて ErrInvalidInput になります。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição é obrigatório.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return decodeError(err)
	}
	if decoder.More() {
		return model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição deve conter um único objeto JSON.", "", model.ErrInvalidInput)
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição é obrigatório.", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	case errors.As(err, &typeErr):
		return model.NewAppError("INVALID_REQUEST_BODY",
			fmt.Sprintf("O campo %s possui um tipo inválido.", typeErr.Field), typeErr.Field,
			fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return model.NewAppError("INVALID_REQUEST_BODY",
			fmt.Sprintf("Campo desconhecido: %s.", field), field,
			fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	case errors.Is(err, model.ErrInvalidInput):
		// model.Date など独自型の UnmarshalJSON が返すエラー
		return model.NewAppError("INVALID_REQUEST_BODY", "Data inválida. Use o formato AAAA-MM-DD.", "", err)
	default:
		return model.NewAppError("INVALID_REQUEST_BODY", "O formato do corpo da requisição é inválido.", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
}
