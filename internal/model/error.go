// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
	ErrStorage        = errors.New("storage failure")   // トランザクション/接続の失敗

	// ErrUnauthorized は認証系エラーの根です。呼び出し元にはすべて同じ応答を返します。
	ErrUnauthorized = errors.New("unauthorized")
)

// 認証エラーの種別。どれも errors.Is(err, ErrUnauthorized) が true になる。
var (
	ErrAuthMissing        = fmt.Errorf("%w: authorization missing", ErrUnauthorized)
	ErrAuthMalformed      = fmt.Errorf("%w: malformed authorization", ErrUnauthorized)
	ErrTokenInvalid       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrTokenExpired       = fmt.Errorf("%w: token expired", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
)

// ErrorDetail はクライアントに返すエラー内容です。
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はユーザー向けメッセージと原因となるエラーを保持します。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
