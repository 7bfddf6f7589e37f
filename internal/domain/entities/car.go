package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// FuelType representa o tipo de combustível de um veículo
type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// IsValid verifica se o tipo de combustível é conhecido
func (f FuelType) IsValid() bool {
	switch f {
	case FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

// Transmission representa o tipo de câmbio
type Transmission string

const (
	TransmissionAutomatic Transmission = "AUTOMATIC"
	TransmissionManual    Transmission = "MANUAL"
)

// IsValid verifica se a transmissão é conhecida
func (t Transmission) IsValid() bool {
	return t == TransmissionAutomatic || t == TransmissionManual
}

// AvailabilityStatus representa a disponibilidade de um anúncio
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "AVAILABLE"
	StatusPending   AvailabilityStatus = "PENDING"
	StatusSold      AvailabilityStatus = "SOLD"
)

// Car representa um anúncio de veículo publicado por um vendedor.
// O preço é um decimal de precisão arbitrária: valores monetários nunca
// passam por float64 em nenhuma camada.
type Car struct {
	ID                 string
	SellerID           string
	Make               string
	CarModel           string
	Year               int
	Color              string
	Mileage            int
	Price              decimal.Decimal
	VIN                string
	FuelType           FuelType
	Transmission       Transmission
	Description        *string
	AvailabilityStatus AvailabilityStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft delete
}

// Validate valida regras de negócio da entidade Car
func (c *Car) Validate() error {
	if c.SellerID == "" {
		return errors.New("seller is required")
	}

	if c.Make == "" || c.CarModel == "" {
		return errors.New("make and model are required")
	}

	if c.Year > time.Now().Year() {
		return errors.New("year must not be in the future")
	}

	if c.Mileage < 0 {
		return errors.New("mileage must not be negative")
	}

	if c.Price.IsNegative() {
		return errors.New("price must not be negative")
	}

	if !c.FuelType.IsValid() {
		return errors.New("invalid fuel type")
	}

	if !c.Transmission.IsValid() {
		return errors.New("invalid transmission")
	}

	return nil
}

// SellerSummary é a projeção resumida do vendedor embutida nos detalhes
type SellerSummary struct {
	ID    string
	Name  string
	Email string
}

// CarDetails agrega um anúncio com o resumo do vendedor e suas imagens
type CarDetails struct {
	Car    *Car
	Seller SellerSummary
	Images []*Image
}

// CarSummary é a projeção de listagem usada nos resultados de busca
// (campos de detalhe e imagens ficam de fora por economia de payload)
type CarSummary struct {
	ID           string
	Make         string
	CarModel     string
	Year         int
	Price        decimal.Decimal
	Mileage      int
	Transmission Transmission
}
