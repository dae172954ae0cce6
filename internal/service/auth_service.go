package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/model"
	"go_admin_pro/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService はテナント登録とログイン (Credential Store) を担当します。
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Authenticate(ctx context.Context, email, password string) (*model.Identity, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Me(ctx context.Context, tc model.TenantContext) (*model.MeResponse, error)
}

type authService struct {
	db             *gorm.DB
	tenantRepo     repository.TenantRepository
	credentialRepo repository.CredentialRepository
	hasher         PasswordHasher
	tokens         TokenService
	mailer         Mailer
	appName        string

	// 存在しないメールアドレスでも同じだけ比較に時間をかけるためのハッシュ
	dummyHashOnce sync.Once
	dummyHash     string
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(
	db *gorm.DB,
	tenantRepo repository.TenantRepository,
	credentialRepo repository.CredentialRepository,
	hasher PasswordHasher,
	tokens TokenService,
	mailer Mailer,
	appName string,
) AuthService {
	if mailer == nil {
		mailer = &LogMailer{}
	}
	return &authService{
		db:             db,
		tenantRepo:     tenantRepo,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokens:         tokens,
		mailer:         mailer,
		appName:        appName,
	}
}

var errInvalidCredentials = model.NewAppError(
	"UNAUTHORIZED", "E-mail ou senha inválidos.", "", model.ErrInvalidCredentials,
)

// Register はテナントと最初のユーザーを1トランザクションで作成します。
// どちらか一方だけが残ることはない。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	logger := middleware.GetLogger(ctx)

	tenantName := strings.TrimSpace(req.TenantName)
	email := repository.NormalizeEmail(req.Email)
	if tenantName == "" || email == "" || req.Password == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Nome da empresa, e-mail e senha são obrigatórios.", "", model.ErrInvalidInput)
	}

	// bcrypt は遅いので、トランザクションの外でハッシュ化する
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao processar a senha.", "", model.ErrInternalServer)
	}

	tenant := &model.Tenant{
		TenantID: uuid.New(),
		Name:     tenantName,
	}
	credential := &model.Credential{
		CredentialID: uuid.New(),
		TenantID:     tenant.TenantID,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.credentialRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			logger.Warn("Email already registered")
			return duplicateEmailError()
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return err
		}

		if err := s.tenantRepo.Create(ctx, tx, tenant); err != nil {
			logger.Error("Failed to create tenant in DB", "error", err)
			return err
		}

		if err := s.credentialRepo.Create(ctx, tx, credential); err != nil {
			// 同時登録で一意制約に引っかかった場合
			if errors.Is(err, model.ErrConflict) {
				return duplicateEmailError()
			}
			logger.Error("Failed to create credential in DB", "error", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Tenant registered", "tenant_id", tenant.TenantID.String(), "user_id", credential.CredentialID.String())

	// 歓迎メールはベストエフォート。失敗しても登録は取り消さない
	subject, body := welcomeMessage(s.appName, tenant.Name)
	if err := s.mailer.Send(ctx, credential.Email, subject, body); err != nil {
		logger.Warn("Failed to send welcome email", "error", err, "tenant_id", tenant.TenantID.String())
	}

	return &model.RegisterResponse{
		TenantID:   tenant.TenantID,
		UserID:     credential.CredentialID,
		TenantName: tenant.Name,
		Email:      credential.Email,
	}, nil
}

func duplicateEmailError() error {
	return model.NewAppError("DUPLICATE_EMAIL", "Este e-mail já está cadastrado.", "email", model.ErrConflict)
}

// Authenticate はメールアドレスとパスワードを照合します。
// メールアドレスが存在しない場合とパスワード不一致の場合は同じエラーを返す。
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.Identity, error) {
	logger := middleware.GetLogger(ctx)

	credential, err := s.credentialRepo.FindByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 応答時間で存在有無がわからないよう、ダミーのハッシュと比較しておく
			_ = s.hasher.Compare(s.getDummyHash(), password)
			logger.Warn("Login failed: unknown email")
			return nil, errInvalidCredentials
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, err
	}

	if err := s.hasher.Compare(credential.PasswordHash, password); err != nil {
		logger.Warn("Login failed: password mismatch", "tenant_id", credential.TenantID.String())
		return nil, errInvalidCredentials
	}

	return &model.Identity{TenantID: credential.TenantID, UserID: credential.CredentialID}, nil
}

func (s *authService) getDummyHash() string {
	s.dummyHashOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}

// Login はユーザーを認証し、アクセストークンを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	identity, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(identity.TenantID, identity.UserID)
	if err != nil {
		logger.Error("Failed to sign token", "error", err, "tenant_id", identity.TenantID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Erro ao gerar o token.", "", model.ErrInternalServer)
	}

	logger.Info("Login successful", "tenant_id", identity.TenantID.String(), "user_id", identity.UserID.String())
	return &model.LoginResponse{Token: token}, nil
}

// Me は認証済みユーザーのテナント情報を返します。
// トークンが指すユーザーが見つからない場合は認証エラー扱い。
func (s *authService) Me(ctx context.Context, tc model.TenantContext) (*model.MeResponse, error) {
	logger := middleware.GetLogger(ctx)
	if !tc.Valid() {
		return nil, model.ErrUnauthorized
	}

	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tc.TenantID())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Tenant in token not found", "tenant_id", tc.TenantID().String())
			return nil, model.ErrTokenInvalid
		}
		return nil, err
	}

	credential, err := s.credentialRepo.FindByID(ctx, s.db, tc.TenantID(), tc.UserID())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User in token not found", "user_id", tc.UserID().String())
			return nil, model.ErrTokenInvalid
		}
		return nil, err
	}

	return &model.MeResponse{
		UserID:     credential.CredentialID,
		TenantID:   tenant.TenantID,
		TenantName: tenant.Name,
		Email:      credential.Email,
	}, nil
}
