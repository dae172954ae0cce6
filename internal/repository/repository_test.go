package repository_test

import (
	"context"
	"testing"
	"time"

	"go_admin_pro/internal/model"
	"go_admin_pro/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type RepositoryTestSuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context

	tenantRepo     repository.TenantRepository
	credentialRepo repository.CredentialRepository
	clientRepo     repository.ClientRepository
	addressRepo    repository.AddressRepository
	vehicleRepo    repository.VehicleRepository
}

func (s *RepositoryTestSuite) SetupTest() {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(repository.Migrate(db))

	s.db = db
	s.ctx = context.Background()
	s.tenantRepo = repository.NewGormTenantRepository()
	s.credentialRepo = repository.NewGormCredentialRepository()
	s.clientRepo = repository.NewGormClientRepository()
	s.addressRepo = repository.NewGormAddressRepository()
	s.vehicleRepo = repository.NewGormVehicleRepository()
}

func (s *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) createClient(tenantID uuid.UUID, name string) *model.Client {
	c := &model.Client{ClientID: uuid.New(), TenantID: tenantID, Name: name}
	s.Require().NoError(s.clientRepo.Create(s.ctx, s.db, c))
	return c
}

func (s *RepositoryTestSuite) TestNormalizeEmail() {
	s.Equal("ana@acme.io", repository.NormalizeEmail("  Ana@ACME.io \t"))
	s.Equal("", repository.NormalizeEmail("   "))
}

func (s *RepositoryTestSuite) TestTenant_CreateAndFind() {
	tenant := &model.Tenant{TenantID: uuid.New(), Name: "Acme"}
	s.Require().NoError(s.tenantRepo.Create(s.ctx, s.db, tenant))

	found, err := s.tenantRepo.FindByID(s.ctx, s.db, tenant.TenantID)
	s.Require().NoError(err)
	s.Equal("Acme", found.Name)

	_, err = s.tenantRepo.FindByID(s.ctx, s.db, uuid.New())
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositoryTestSuite) TestCredential_DuplicateEmailIsConflict() {
	tenantID := uuid.New()
	first := &model.Credential{CredentialID: uuid.New(), TenantID: tenantID, Email: "Ana@Acme.io", PasswordHash: "h"}
	s.Require().NoError(s.credentialRepo.Create(s.ctx, s.db, first))
	s.Equal("ana@acme.io", first.Email)

	// 大文字小文字が違っても同じアドレス
	second := &model.Credential{CredentialID: uuid.New(), TenantID: uuid.New(), Email: " ANA@acme.io", PasswordHash: "h"}
	err := s.credentialRepo.Create(s.ctx, s.db, second)
	s.ErrorIs(err, model.ErrConflict)
}

func (s *RepositoryTestSuite) TestCredential_Find() {
	tenantID := uuid.New()
	cred := &model.Credential{CredentialID: uuid.New(), TenantID: tenantID, Email: "ana@acme.io", PasswordHash: "h"}
	s.Require().NoError(s.credentialRepo.Create(s.ctx, s.db, cred))

	found, err := s.credentialRepo.FindByEmail(s.ctx, s.db, "ANA@acme.io ")
	s.Require().NoError(err)
	s.Equal(cred.CredentialID, found.CredentialID)

	found, err = s.credentialRepo.FindByID(s.ctx, s.db, tenantID, cred.CredentialID)
	s.Require().NoError(err)
	s.Equal("ana@acme.io", found.Email)

	// 別テナントからは見えない
	_, err = s.credentialRepo.FindByID(s.ctx, s.db, uuid.New(), cred.CredentialID)
	s.ErrorIs(err, model.ErrNotFound)

	_, err = s.credentialRepo.FindByEmail(s.ctx, s.db, "nobody@acme.io")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *RepositoryTestSuite) TestClient_OtherTenantIsNotFound() {
	owner := uuid.New()
	other := uuid.New()
	c := s.createClient(owner, "Ana")

	_, err := s.clientRepo.FindByID(s.ctx, s.db, other, c.ClientID)
	s.ErrorIs(err, model.ErrNotFound)

	err = s.clientRepo.Update(s.ctx, s.db, other, c.ClientID, map[string]interface{}{"name": "Hacked"})
	s.ErrorIs(err, model.ErrNotFound)

	err = s.clientRepo.Delete(s.ctx, s.db, other, c.ClientID)
	s.ErrorIs(err, model.ErrNotFound)

	found, err := s.clientRepo.FindByID(s.ctx, s.db, owner, c.ClientID)
	s.Require().NoError(err)
	s.Equal("Ana", found.Name)
}

func (s *RepositoryTestSuite) TestClient_BirthDateRoundTrip() {
	tenantID := uuid.New()
	bd := model.NewDate(1990, time.May, 20)
	c := &model.Client{ClientID: uuid.New(), TenantID: tenantID, Name: "Ana", BirthDate: &bd}
	s.Require().NoError(s.clientRepo.Create(s.ctx, s.db, c))

	found, err := s.clientRepo.FindByID(s.ctx, s.db, tenantID, c.ClientID)
	s.Require().NoError(err)
	s.Require().NotNil(found.BirthDate)
	s.Equal("1990-05-20", found.BirthDate.String())
}

func (s *RepositoryTestSuite) TestClient_FindByTenantOrderAndFilter() {
	tenantID := uuid.New()
	s.createClient(tenantID, "Carla")
	s.createClient(tenantID, "Ana")
	s.createClient(tenantID, "Bruno")
	s.createClient(uuid.New(), "Alice")

	clients, err := s.clientRepo.FindByTenant(s.ctx, s.db, tenantID, model.ClientFilter{})
	s.Require().NoError(err)
	s.Require().Len(clients, 3)
	s.Equal([]string{"Ana", "Bruno", "Carla"}, []string{clients[0].Name, clients[1].Name, clients[2].Name})

	clients, err = s.clientRepo.FindByTenant(s.ctx, s.db, tenantID, model.ClientFilter{Query: "BR"})
	s.Require().NoError(err)
	s.Require().Len(clients, 1)
	s.Equal("Bruno", clients[0].Name)

	clients, err = s.clientRepo.FindByTenant(s.ctx, s.db, uuid.New(), model.ClientFilter{})
	s.Require().NoError(err)
	s.NotNil(clients)
	s.Empty(clients)
}

func (s *RepositoryTestSuite) TestAddress_ReplaceOrInsertKeepsOneRow() {
	c := s.createClient(uuid.New(), "Ana")

	// 行がなければ挿入
	s.Require().NoError(s.addressRepo.ReplaceOrInsert(s.ctx, s.db, &model.Address{
		ClientID: c.ClientID, Street: "Rua A", City: "Curitiba",
	}))
	// あれば全項目を置き換え
	s.Require().NoError(s.addressRepo.ReplaceOrInsert(s.ctx, s.db, &model.Address{
		ClientID: c.ClientID, City: "Londrina",
	}))

	var count int64
	s.Require().NoError(s.db.Model(&model.Address{}).Where("client_id = ?", c.ClientID).Count(&count).Error)
	s.Equal(int64(1), count)

	found, err := s.addressRepo.FindByClientID(s.ctx, s.db, c.ClientID)
	s.Require().NoError(err)
	s.Equal("Londrina", found.City)
	s.Equal("", found.Street)
}

func (s *RepositoryTestSuite) TestAddress_CreateTwiceIsConflict() {
	c := s.createClient(uuid.New(), "Ana")
	s.Require().NoError(s.addressRepo.Create(s.ctx, s.db, &model.Address{ClientID: c.ClientID, City: "A"}))

	err := s.addressRepo.Create(s.ctx, s.db, &model.Address{ClientID: c.ClientID, City: "B"})
	s.ErrorIs(err, model.ErrConflict)
}

func (s *RepositoryTestSuite) TestVehicle_ReplaceOrInsertClearsYears() {
	c := s.createClient(uuid.New(), "Ana")
	year := 2020
	s.Require().NoError(s.vehicleRepo.Create(s.ctx, s.db, &model.Vehicle{
		ClientID: c.ClientID, Plate: "ABC1D23", ModelYear: &year,
	}))

	s.Require().NoError(s.vehicleRepo.ReplaceOrInsert(s.ctx, s.db, &model.Vehicle{
		ClientID: c.ClientID, Plate: "XYZ9K88",
	}))

	found, err := s.vehicleRepo.FindByClientID(s.ctx, s.db, c.ClientID)
	s.Require().NoError(err)
	s.Equal("XYZ9K88", found.Plate)
	s.Nil(found.ModelYear)
}

func (s *RepositoryTestSuite) TestDeleteByClientID_NoRowIsNotError() {
	id := uuid.New()
	s.NoError(s.addressRepo.DeleteByClientID(s.ctx, s.db, id))
	s.NoError(s.vehicleRepo.DeleteByClientID(s.ctx, s.db, id))

	_, err := s.addressRepo.FindByClientID(s.ctx, s.db, id)
	s.ErrorIs(err, model.ErrNotFound)
	_, err = s.vehicleRepo.FindByClientID(s.ctx, s.db, id)
	s.ErrorIs(err, model.ErrNotFound)
}
