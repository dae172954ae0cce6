// internal/service/client_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_admin_pro/internal/middleware"
	"go_admin_pro/internal/model"
	"go_admin_pro/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientService は顧客 (Client + Address + Vehicle) の作成/取得/更新/削除を行います。
// すべてのメソッドは認証済みの TenantContext を必須とし、そのテナントの行にしか触れない。
type ClientService interface {
	Create(ctx context.Context, tc model.TenantContext, req *model.ClientRequest) (*model.ClientAggregate, error)
	Get(ctx context.Context, tc model.TenantContext, clientID uuid.UUID) (*model.ClientAggregate, error)
	Update(ctx context.Context, tc model.TenantContext, clientID uuid.UUID, req *model.ClientRequest) (*model.Client, error)
	Delete(ctx context.Context, tc model.TenantContext, clientID uuid.UUID) error
}

type clientService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	clientRepo  repository.ClientRepository
	addressRepo repository.AddressRepository
	vehicleRepo repository.VehicleRepository
}

func NewClientService(
	db *gorm.DB,
	clientRepo repository.ClientRepository,
	addressRepo repository.AddressRepository,
	vehicleRepo repository.VehicleRepository,
) ClientService {
	return &clientService{
		db:          db,
		clientRepo:  clientRepo,
		addressRepo: addressRepo,
		vehicleRepo: vehicleRepo,
	}
}

func clientNotFoundError() error {
	return model.NewAppError("NOT_FOUND", "Cliente não encontrado.", "", model.ErrNotFound)
}

// validateClientRequest は general.name が空でないことを確認します。
func validateClientRequest(req *model.ClientRequest) error {
	if req == nil || req.General == nil {
		return model.NewAppError("VALIDATION_ERROR", "O campo dados gerais é obrigatório.", "general", model.ErrInvalidInput)
	}
	if strings.TrimSpace(req.General.Name) == "" {
		return model.NewAppError("VALIDATION_ERROR", "O campo nome é obrigatório.", "general.name", model.ErrInvalidInput)
	}
	return nil
}

// birthDate は空の日付を nil にそろえます。
func birthDate(d *model.Date) *model.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

func observations(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *clientService) Create(ctx context.Context, tc model.TenantContext, req *model.ClientRequest) (*model.ClientAggregate, error) {
	logger := middleware.GetLogger(ctx)
	if !tc.Valid() {
		return nil, model.ErrUnauthorized
	}
	if err := validateClientRequest(req); err != nil {
		return nil, err
	}

	g := req.General
	client := &model.Client{
		ClientID:     uuid.New(),
		TenantID:     tc.TenantID(),
		Name:         strings.TrimSpace(g.Name),
		BirthDate:    birthDate(g.BirthDate),
		CPF:          g.CPF,
		RG:           g.RG,
		CNH:          g.CNH,
		CNPJ:         g.CNPJ,
		Celular:      g.Celular,
		Email:        g.Email,
		Observations: observations(req.Observations),
	}

	// 空の住所/車両は行を作らない
	var address *model.Address
	if req.Address.HasAnyValue() {
		address = req.Address.ToModel(client.ClientID)
	}
	var vehicle *model.Vehicle
	if req.Vehicle.HasAnyValue() {
		vehicle = req.Vehicle.ToModel(client.ClientID)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.clientRepo.Create(ctx, tx, client); err != nil {
			return err
		}
		if address != nil {
			if err := s.addressRepo.Create(ctx, tx, address); err != nil {
				return err
			}
		}
		if vehicle != nil {
			if err := s.vehicleRepo.Create(ctx, tx, vehicle); err != nil {
				return err
			}
		}
		return nil // コミット
	})
	if err != nil {
		logger.Error("Transaction failed for client create", "error", err, "tenant_id", tc.TenantID().String())
		return nil, err
	}

	logger.Info("Client created",
		"tenant_id", tc.TenantID().String(),
		"client_id", client.ClientID.String(),
		"with_address", address != nil,
		"with_vehicle", vehicle != nil,
	)
	return model.NewClientAggregate(client, address, vehicle), nil
}

func (s *clientService) Get(ctx context.Context, tc model.TenantContext, clientID uuid.UUID) (*model.ClientAggregate, error) {
	if !tc.Valid() {
		return nil, model.ErrUnauthorized
	}

	var aggregate *model.ClientAggregate
	// 3つの読み取りを同じスナップショットで行う
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := s.clientRepo.FindByID(ctx, tx, tc.TenantID(), clientID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return clientNotFoundError()
			}
			return err
		}

		address, err := s.addressRepo.FindByClientID(ctx, tx, client.ClientID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		vehicle, err := s.vehicleRepo.FindByClientID(ctx, tx, client.ClientID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		aggregate = model.NewClientAggregate(client, address, vehicle)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return aggregate, nil
}

// Update は顧客のスカラー項目を更新し、住所/車両が指定されていれば client_id をキーに置き換えます。
// 指定された住所/車両は空欄も含めて全項目を上書きする (部分更新ではない)。
// general は全項目の置き換えで、省略した birth_date などは消去される。
// observations だけは例外で、省略すると元の値のまま、"" で消去。
func (s *clientService) Update(ctx context.Context, tc model.TenantContext, clientID uuid.UUID, req *model.ClientRequest) (*model.Client, error) {
	logger := middleware.GetLogger(ctx)
	if !tc.Valid() {
		return nil, model.ErrUnauthorized
	}
	if err := validateClientRequest(req); err != nil {
		return nil, err
	}

	g := req.General
	updates := map[string]interface{}{
		"name":       strings.TrimSpace(g.Name),
		"birth_date": nil,
		"cpf":        g.CPF,
		"rg":         g.RG,
		"cnh":        g.CNH,
		"cnpj":       g.CNPJ,
		"celular":    g.Celular,
		"email":      g.Email,
	}
	if bd := birthDate(g.BirthDate); bd != nil {
		updates["birth_date"] = *bd
	}
	if req.Observations != nil {
		updates["observations"] = *req.Observations
	}

	var updated *model.Client
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 他テナントの行は存在しないものとして扱う
		if _, err := s.clientRepo.FindByID(ctx, tx, tc.TenantID(), clientID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return clientNotFoundError()
			}
			return err
		}

		if err := s.clientRepo.Update(ctx, tx, tc.TenantID(), clientID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return clientNotFoundError()
			}
			return err
		}

		if req.Address != nil {
			if err := s.addressRepo.ReplaceOrInsert(ctx, tx, req.Address.ToModel(clientID)); err != nil {
				return err
			}
		}
		if req.Vehicle != nil {
			if err := s.vehicleRepo.ReplaceOrInsert(ctx, tx, req.Vehicle.ToModel(clientID)); err != nil {
				return err
			}
		}

		client, err := s.clientRepo.FindByID(ctx, tx, tc.TenantID(), clientID)
		if err != nil {
			return err
		}
		updated = client
		return nil
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Transaction failed for client update", "error", err, "client_id", clientID.String())
		}
		return nil, err
	}

	logger.Info("Client updated",
		"tenant_id", tc.TenantID().String(),
		"client_id", clientID.String(),
		"address_replaced", req.Address != nil,
		"vehicle_replaced", req.Vehicle != nil,
	)
	return updated, nil
}

// Delete は車両・住所・顧客の順に削除します。2回目の削除は NotFound。
func (s *clientService) Delete(ctx context.Context, tc model.TenantContext, clientID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if !tc.Valid() {
		return model.ErrUnauthorized
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.clientRepo.FindByID(ctx, tx, tc.TenantID(), clientID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return clientNotFoundError()
			}
			return err
		}
		if err := s.vehicleRepo.DeleteByClientID(ctx, tx, clientID); err != nil {
			return err
		}
		if err := s.addressRepo.DeleteByClientID(ctx, tx, clientID); err != nil {
			return err
		}
		if err := s.clientRepo.Delete(ctx, tx, tc.TenantID(), clientID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return clientNotFoundError()
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Transaction failed for client delete", "error", err, "client_id", clientID.String())
		}
		return err
	}

	logger.Info("Client deleted", "tenant_id", tc.TenantID().String(), "client_id", clientID.String())
	return nil
}
