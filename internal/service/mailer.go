//go:generate mockery --name Mailer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"log/slog"

	"go_admin_pro/internal/config"
	"go_admin_pro/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// --- LogMailer ---
// 実際には送信せず、ログに出すだけ (開発用の既定値)。
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// --- NewMailer ファクトリ関数 ---
func NewMailer(ctx context.Context, cfg *config.Config) (Mailer, error) {
	logger := slog.Default()
	switch cfg.Mail.Driver {
	case "ses":
		logger.Info("Initializing SES mailer...", "region", cfg.SES.Region)
		m, err := NewSESMailer(ctx, cfg.SES, cfg.Mail.From)
		if err != nil {
			return nil, err
		}
		return m, nil
	case "log", "":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}, nil
	default:
		logger.Warn("Unknown mail driver, defaulting to LogMailer", "driver", cfg.Mail.Driver)
		return &LogMailer{}, nil
	}
}

// welcomeMessage は登録完了メールの件名と本文を返します。
func welcomeMessage(appName, tenantName string) (string, string) {
	subject := fmt.Sprintf("[%s] Bem-vindo(a)!", appName)
	body := fmt.Sprintf("Olá!\n\nA empresa %q foi cadastrada com sucesso no %s.\n"+
		"Você já pode entrar com o e-mail e a senha informados no cadastro.\n", tenantName, appName)
	return subject, body
}
