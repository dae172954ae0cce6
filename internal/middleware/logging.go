package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリストです (小文字で定義)。
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true, // リクエストヘッダー
	"set-cookie":    true, // レスポンスヘッダー
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// sensitiveBodyFields は JSON ボディ内でマスキングするキーです (パスワード、発行済みトークン)。
var sensitiveBodyFields = map[string]bool{
	"password":      true,
	"password_hash": true,
	"token":         true,
}

const maskedValue = "[SENSITIVE]"

// 詳細ログに出すボディの上限
const maxLogBodySizeBytes = 2048

// responseLogger は http.ResponseWriter をラップし、ステータスコードとレスポンスボディを記録します。
type responseLogger struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

// newResponseLogger は新しい responseLogger を作成します。
func newResponseLogger(w http.ResponseWriter) *responseLogger {
	return &responseLogger{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		body:           new(bytes.Buffer),
	}
}

func (rl *responseLogger) WriteHeader(statusCode int) {
	rl.statusCode = statusCode
	rl.ResponseWriter.WriteHeader(statusCode)
}

func (rl *responseLogger) Write(b []byte) (int, error) {
	n, err := rl.ResponseWriter.Write(b)
	if n > 0 && rl.body.Len() < maxLogBodySizeBytes {
		rl.body.Write(b[:n])
	}
	return n, err
}

// Flush は、ラップされたResponseWriterがhttp.Flusherを実装している場合にFlushを呼び出します。
func (rl *responseLogger) Flush() {
	if flusher, ok := rl.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// LoggingMiddleware はリクエスト/レスポンスのログ出力を一元管理するミドルウェアです。
// リクエストID付きのロガーをコンテキストに格納し、以降の層は GetLogger で取り出します。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			// リクエストボディはデバッグ時のみ読み取る
			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			var reqBodyBytes []byte
			if debug && r.Body != nil {
				reqBodyBytes, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(reqBodyBytes))
			}

			rl := newResponseLogger(w)
			next.ServeHTTP(rl, r)

			latency := time.Since(startTime)
			statusCode := rl.statusCode

			logLevel := slog.LevelInfo
			if statusCode >= 500 {
				logLevel = slog.LevelError
			} else if statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), logLevel, "Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", statusCode,
				"latency_ms", float64(latency.Nanoseconds())/1e6,
				"bytes_out", rl.body.Len(),
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", formatBody(r.Header.Get("Content-Type"), reqBodyBytes),
				)
				requestLogger.Debug("Response detail",
					"status", statusCode,
					"headers", formatHeaders(rl.Header()),
					"body", formatBody(rl.Header().Get("Content-Type"), rl.body.Bytes()),
				)
			}
		})
	}
}

// WithLogger はロガーをコンテキストに格納します。
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングするヘルパー関数
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string)
	for key, values := range headers {
		lowerKey := strings.ToLower(key)
		if sensitiveHeaders[lowerKey] {
			result[key] = maskedValue
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

// formatBody はボディをログ用に整形します。JSON は機密フィールドをマスキングし、それ以外は長さだけ出す。
func formatBody(contentType string, body []byte) interface{} {
	if len(body) == 0 {
		return "(empty body)"
	}
	if !strings.HasPrefix(contentType, "application/json") {
		return fmt.Sprintf("[Non-JSON body: %d bytes, Content-Type: %s]", len(body), contentType)
	}
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Sprintf("[Unparseable JSON body: %d bytes]", len(body))
	}
	return maskSensitiveFields(data)
}

// maskSensitiveFields はネストしたオブジェクト/配列も含めて機密キーの値を置き換えます。
func maskSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		for key, value := range v {
			if sensitiveBodyFields[strings.ToLower(key)] {
				v[key] = maskedValue
				continue
			}
			v[key] = maskSensitiveFields(value)
		}
		return v
	case []interface{}:
		for i, item := range v {
			v[i] = maskSensitiveFields(item)
		}
		return v
	default:
		return v
	}
}
