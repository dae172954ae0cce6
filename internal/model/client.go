// internal/model/client.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Client は顧客レコードです。必ずひとつのテナントに属します。
type Client struct {
	ClientID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index:idx_clients_tenant_name,priority:1" json:"-"`
	Name         string    `gorm:"not null;index:idx_clients_tenant_name,priority:2" json:"name"`
	BirthDate    *Date     `gorm:"type:date" json:"birth_date"`
	CPF          string    `gorm:"column:cpf" json:"cpf"`
	RG           string    `gorm:"column:rg" json:"rg"`
	CNH          string    `gorm:"column:cnh" json:"cnh"`
	CNPJ         string    `gorm:"column:cnpj" json:"cnpj"`
	Celular      string    `json:"celular"`
	Email        string    `json:"email"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `gorm:"<-:create" json:"created_at"` // 作成後は変更しない
	UpdatedAt    time.Time `json:"updated_at"`

	// 関連 (削除時は一緒に消える)
	Address *Address `gorm:"foreignKey:ClientID;references:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	Vehicle *Vehicle `gorm:"foreignKey:ClientID;references:ClientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}

// Address は顧客の住所です。client_id が主キーなので、1顧客につき最大1行。
type Address struct {
	ClientID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZipCode      string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	UpdatedAt    time.Time
}

func (Address) TableName() string {
	return "addresses"
}

// Vehicle は顧客の車両情報です。Address と同じく1顧客につき最大1行。
// (複数台の登録には対応していない)
type Vehicle struct {
	ClientID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Brand              string
	Model              string
	Plate              string
	Color              string
	ModelYear          *int
	ManufactureYear    *int
	Chassis            string
	RegistrationNumber string // renavam
	UpdatedAt          time.Time
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// --- リクエスト/レスポンス DTO ---

// GeneralData は顧客の基本情報です。
type GeneralData struct {
	Name      string `json:"name" validate:"required,max=200"`
	BirthDate *Date  `json:"birth_date"`
	CPF       string `json:"cpf" validate:"max=20"`
	RG        string `json:"rg" validate:"max=20"`
	CNH       string `json:"cnh" validate:"max=20"`
	CNPJ      string `json:"cnpj" validate:"max=20"`
	Celular   string `json:"celular" validate:"max=30"`
	Email     string `json:"email" validate:"max=254"`
}

type AddressData struct {
	ZipCode      string `json:"zip_code" validate:"max=10"`
	Street       string `json:"street" validate:"max=200"`
	Number       string `json:"number" validate:"max=20"`
	Complement   string `json:"complement" validate:"max=100"`
	Neighborhood string `json:"neighborhood" validate:"max=100"`
	City         string `json:"city" validate:"max=100"`
	State        string `json:"state" validate:"max=50"`
}

// HasAnyValue はいずれかのフィールドが入力されているかを返します。
func (a *AddressData) HasAnyValue() bool {
	if a == nil {
		return false
	}
	for _, v := range []string{a.ZipCode, a.Street, a.Number, a.Complement, a.Neighborhood, a.City, a.State} {
		if v != "" {
			return true
		}
	}
	return false
}

func (a *AddressData) ToModel(clientID uuid.UUID) *Address {
	return &Address{
		ClientID:     clientID,
		ZipCode:      a.ZipCode,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func AddressDataFromModel(a *Address) AddressData {
	if a == nil {
		return AddressData{}
	}
	return AddressData{
		ZipCode:      a.ZipCode,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

type VehicleData struct {
	Brand              string `json:"brand" validate:"max=50"`
	Model              string `json:"model" validate:"max=100"`
	Plate              string `json:"plate" validate:"max=10"`
	Color              string `json:"color" validate:"max=30"`
	ModelYear          *int   `json:"model_year" validate:"omitempty,min=1900,max=2100"`
	ManufactureYear    *int   `json:"manufacture_year" validate:"omitempty,min=1900,max=2100"`
	Chassis            string `json:"chassis" validate:"max=30"`
	RegistrationNumber string `json:"registration_number" validate:"max=20"`
}

// HasAnyValue はいずれかのフィールドが入力されているかを返します。
func (v *VehicleData) HasAnyValue() bool {
	if v == nil {
		return false
	}
	if v.ModelYear != nil || v.ManufactureYear != nil {
		return true
	}
	for _, s := range []string{v.Brand, v.Model, v.Plate, v.Color, v.Chassis, v.RegistrationNumber} {
		if s != "" {
			return true
		}
	}
	return false
}

func (v *VehicleData) ToModel(clientID uuid.UUID) *Vehicle {
	return &Vehicle{
		ClientID:           clientID,
		Brand:              v.Brand,
		Model:              v.Model,
		Plate:              v.Plate,
		Color:              v.Color,
		ModelYear:          v.ModelYear,
		ManufactureYear:    v.ManufactureYear,
		Chassis:            v.Chassis,
		RegistrationNumber: v.RegistrationNumber,
	}
}

func VehicleDataFromModel(v *Vehicle) VehicleData {
	if v == nil {
		return VehicleData{}
	}
	return VehicleData{
		Brand:              v.Brand,
		Model:              v.Model,
		Plate:              v.Plate,
		Color:              v.Color,
		ModelYear:          v.ModelYear,
		ManufactureYear:    v.ManufactureYear,
		Chassis:            v.Chassis,
		RegistrationNumber: v.RegistrationNumber,
	}
}

// ClientRequest は顧客の作成/更新リクエストです (POST /clients, PUT /clients/{id})。
// address / vehicle は省略可能。未知のキーはデコード時に拒否されます。
type ClientRequest struct {
	General      *GeneralData `json:"general" validate:"required"`
	Address      *AddressData `json:"address"`
	Vehicle      *VehicleData `json:"vehicle"`
	// 更新時、省略 (nil) は元の値を保持し、"" は消去する。
	// general の項目 (birth_date など) は省略すると消去されるので扱いが異なる。
	Observations *string `json:"observations" validate:"omitempty,max=5000"`
}

// ClientAggregate は顧客 + 住所 + 車両をひとまとめにしたレスポンスです。
// 住所・車両がない場合は空のオブジェクトになります。
type ClientAggregate struct {
	ID           uuid.UUID   `json:"id"`
	General      GeneralData `json:"general"`
	Address      AddressData `json:"address"`
	Vehicle      VehicleData `json:"vehicle"`
	Observations string      `json:"observations"`
	CreatedAt    time.Time   `json:"created_at"`
}

func NewClientAggregate(c *Client, a *Address, v *Vehicle) *ClientAggregate {
	return &ClientAggregate{
		ID: c.ClientID,
		General: GeneralData{
			Name:      c.Name,
			BirthDate: c.BirthDate,
			CPF:       c.CPF,
			RG:        c.RG,
			CNH:       c.CNH,
			CNPJ:      c.CNPJ,
			Celular:   c.Celular,
			Email:     c.Email,
		},
		Address:      AddressDataFromModel(a),
		Vehicle:      VehicleDataFromModel(v),
		Observations: c.Observations,
		CreatedAt:    c.CreatedAt,
	}
}

// ClientSummary は一覧表示用の顧客情報です。
type ClientSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	RG        string    `json:"rg"`
	CNH       string    `json:"cnh"`
	CNPJ      string    `json:"cnpj"`
	Celular   string    `json:"celular"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewClientSummary(c *Client) ClientSummary {
	return ClientSummary{
		ID:        c.ClientID,
		Name:      c.Name,
		CPF:       c.CPF,
		RG:        c.RG,
		CNH:       c.CNH,
		CNPJ:      c.CNPJ,
		Celular:   c.Celular,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

// ClientFilter は一覧の絞り込み条件です。Query が空なら全件。
type ClientFilter struct {
	Query string // 名前または CPF の部分一致 (大文字小文字を区別しない)
}
