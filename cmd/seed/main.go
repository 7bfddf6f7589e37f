package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	"github.com/rafabene/carmarket-backend/internal/domain/valueobjects"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/config"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/logging"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/persistence/postgres"
)

type seedCar struct {
	make         string
	model        string
	year         int
	color        string
	price        string
	mileage      int
	fuelType     entities.FuelType
	transmission entities.Transmission
	description  string
}

var demoCars = []seedCar{
	{"Toyota", "Corolla", 2021, "Prata", "112000.00", 34500, entities.FuelGasoline, entities.TransmissionAutomatic, "Único dono, revisões em dia."},
	{"Honda", "Civic", 2019, "Preto", "98500.00", 58200, entities.FuelGasoline, entities.TransmissionManual, "Pneus novos, sem detalhes."},
	{"Volkswagen", "Golf", 2020, "Branco", "105900.00", 41000, entities.FuelGasoline, entities.TransmissionAutomatic, "Teto solar, bancos em couro."},
	{"Chevrolet", "Onix", 2022, "Vermelho", "78900.00", 18700, entities.FuelGasoline, entities.TransmissionManual, "Na garantia de fábrica."},
	{"Tesla", "Model 3", 2023, "Azul", "289000.00", 9800, entities.FuelElectric, entities.TransmissionAutomatic, "Autopilot incluso."},
	{"Toyota", "Prius", 2018, "Cinza", "89000.00", 77300, entities.FuelHybrid, entities.TransmissionAutomatic, "Econômico, ideal para cidade."},
	{"Ford", "Ranger", 2020, "Preto", "165000.00", 62100, entities.FuelDiesel, entities.TransmissionAutomatic, "Cabine dupla, 4x4."},
	{"Fiat", "Argo", 2021, "Branco", "69900.00", 29400, entities.FuelGasoline, entities.TransmissionManual, "Completo, multimídia original."},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	ctx := context.Background()
	userRepo := postgres.NewUserRepository(db)
	carRepo := postgres.NewCarRepository(db)

	// Vendedor de demonstração. A seed é idempotente: se o usuário já
	// existe, não recria nada.
	email, err := valueobjects.NewEmail("seller@carmarket.dev")
	if err != nil {
		log.Fatal("Invalid seed email:", err)
	}

	existing, err := userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		log.Fatal("Failed to look up seed user:", err)
	}
	if existing != nil {
		log.Println("Seed user already exists:", existing.Email.String())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	seller := &entities.User{
		Email:        email,
		Name:         "Demo Seller",
		PhoneNumber:  "+55 11 99999-0000",
		PasswordHash: string(hash),
		Role:         entities.RoleSeller,
	}

	if err := userRepo.Create(ctx, seller); err != nil {
		log.Fatal("Failed to create seed user:", err)
	}
	log.Println("Created seed seller:", seller.Email.String())

	for _, sc := range demoCars {
		price, err := decimal.NewFromString(sc.price)
		if err != nil {
			log.Fatal("Invalid seed price:", err)
		}

		description := sc.description
		car := &entities.Car{
			SellerID:           seller.ID,
			Make:               sc.make,
			CarModel:           sc.model,
			Year:               sc.year,
			Color:              sc.color,
			Price:              price,
			Mileage:            sc.mileage,
			FuelType:           sc.fuelType,
			Transmission:       sc.transmission,
			Description:        &description,
			AvailabilityStatus: entities.StatusAvailable,
		}

		if err := carRepo.Create(ctx, car); err != nil {
			log.Fatal("Failed to create seed car:", err)
		}
		log.Printf("Created seed car: %s %s %d", car.Make, car.CarModel, car.Year)

		// Espalha os created_at para a ordenação padrão ficar visível.
		time.Sleep(10 * time.Millisecond)
	}

	log.Println("Seed completed successfully")
}
