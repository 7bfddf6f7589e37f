package postgres

import "github.com/shopspring/decimal"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(500);not null"`
	PhoneNumber  string `gorm:"type:varchar(50)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// CarModel é o model GORM para anúncios de veículos.
// Price usa coluna numeric: valores monetários ficam em precisão
// arbitrária no banco e em decimal.Decimal na aplicação.
type CarModel struct {
	ID                 string          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SellerID           string          `gorm:"type:uuid;not null;index"`
	Make               string          `gorm:"type:varchar(100);not null;index"`
	CarModel           string          `gorm:"column:car_model;type:varchar(100);not null;index"`
	Year               int             `gorm:"not null;index"`
	Color              string          `gorm:"type:varchar(50);not null"`
	Mileage            int             `gorm:"not null;index"`
	Price              decimal.Decimal `gorm:"type:numeric(14,2);not null;index"`
	VIN                string          `gorm:"column:vin;type:varchar(64);not null"`
	FuelType           string          `gorm:"type:varchar(20);not null"`
	Transmission       string          `gorm:"type:varchar(20);not null"`
	Description        *string         `gorm:"type:text"`
	AvailabilityStatus string          `gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	CreatedAt          int64           `gorm:"autoCreateTime;index"`
	UpdatedAt          int64           `gorm:"autoUpdateTime"`
	DeletedAt          *int64          `gorm:"index"` // Soft delete

	Seller UserModel    `gorm:"foreignKey:SellerID"`
	Images []ImageModel `gorm:"foreignKey:CarID"`
}

func (CarModel) TableName() string {
	return "cars"
}

// ImageModel é o model GORM para imagens de anúncios.
// Size é persistido como string (coluna varchar) conforme o contrato
// de listagem; a conversão acontece na borda do repositório.
type ImageModel struct {
	ID           string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CarID        string `gorm:"type:uuid;not null;index"`
	URL          string `gorm:"type:varchar(500);not null"`
	FileName     string `gorm:"type:varchar(255);not null"`
	OriginalName string `gorm:"type:varchar(255);not null"`
	MimeType     string `gorm:"type:varchar(100);not null"`
	Encoding     string `gorm:"type:varchar(50)"`
	Size         string `gorm:"type:varchar(32)"`
	CreatedAt    int64  `gorm:"autoCreateTime"`
}

func (ImageModel) TableName() string {
	return "images"
}
