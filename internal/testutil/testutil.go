package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDatabase holds test database connection (in-memory SQLite)
type TestDatabase struct {
	DB  *gorm.DB
	DSN string
}

// TestUser é a versão SQLite-compatível de UserModel para testes.
// Os models de produção usam DEFAULT gen_random_uuid(), que o SQLite
// não aceita no DDL; aqui o ID é TEXT simples.
type TestUser struct {
	ID           string `gorm:"type:text;primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(500);not null"`
	PhoneNumber  string `gorm:"type:varchar(50)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;index"`
	CreatedAt    int64  `gorm:"index"`
	UpdatedAt    int64
	DeletedAt    *int64 `gorm:"index"`
}

func (TestUser) TableName() string {
	return "users"
}

// TestCar é a versão SQLite-compatível de CarModel para testes
type TestCar struct {
	ID                 string `gorm:"type:text;primaryKey"`
	SellerID           string `gorm:"type:text;not null;index"`
	Make               string `gorm:"type:varchar(100);not null;index"`
	CarModel           string `gorm:"column:car_model;type:varchar(100);not null;index"`
	Year               int    `gorm:"not null;index"`
	Color              string `gorm:"type:varchar(50);not null"`
	Mileage            int    `gorm:"not null;index"`
	Price              string `gorm:"type:numeric;not null;index"`
	VIN                string `gorm:"column:vin;type:varchar(64);not null"`
	FuelType           string `gorm:"type:varchar(20);not null"`
	Transmission       string `gorm:"type:varchar(20);not null"`
	Description        *string
	AvailabilityStatus string `gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	CreatedAt          int64  `gorm:"index"`
	UpdatedAt          int64
	DeletedAt          *int64 `gorm:"index"`
}

func (TestCar) TableName() string {
	return "cars"
}

// TestImage é a versão SQLite-compatível de ImageModel para testes
type TestImage struct {
	ID           string `gorm:"type:text;primaryKey"`
	CarID        string `gorm:"type:text;not null;index"`
	URL          string `gorm:"type:varchar(500);not null"`
	FileName     string `gorm:"type:varchar(255);not null"`
	OriginalName string `gorm:"type:varchar(255);not null"`
	MimeType     string `gorm:"type:varchar(100);not null"`
	Encoding     string `gorm:"type:varchar(50)"`
	Size         string `gorm:"type:varchar(32)"`
	CreatedAt    int64
}

func (TestImage) TableName() string {
	return "images"
}

// SetupTestDatabase creates an in-memory SQLite database for integration tests.
// No Docker required! Fast and isolated.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	db, err := openTestDatabase()
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}

	return &TestDatabase{
		DB:  db,
		DSN: testDSN,
	}
}

// OpenTestDatabase é a variante sem *testing.T, usada pela suíte Ginkgo
func OpenTestDatabase() (*gorm.DB, error) {
	return openTestDatabase()
}

// Use in-memory SQLite database (":memory:" means RAM-only). O cache
// compartilhado é necessário porque o pool do database/sql abre mais
// de uma conexão.
const testDSN = "file::memory:?cache=shared"

func openTestDatabase() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(testDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := db.AutoMigrate(&TestUser{}, &TestCar{}, &TestImage{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Teardown cleans up the test database (closes connection)
func (td *TestDatabase) Teardown(t *testing.T) {
	t.Helper()

	sqlDB, err := td.DB.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close database: %v", err)
	}
}

// CleanDatabase deletes all records from tables (for test isolation)
func CleanDatabase(t *testing.T, db *gorm.DB) {
	t.Helper()

	if err := Clean(db); err != nil {
		t.Logf("Warning: failed to clean database: %v", err)
	}
}

// Clean é a variante sem *testing.T, usada pela suíte Ginkgo. Com o
// cache compartilhado, o banco em memória sobrevive entre conexões,
// então cada setup precisa limpar o estado anterior.
func Clean(db *gorm.DB) error {
	tables := []string{"images", "cars", "users"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clean table %s: %w", table, err)
		}
	}
	return nil
}
