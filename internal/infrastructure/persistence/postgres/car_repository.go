package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	"github.com/rafabene/carmarket-backend/internal/domain/repositories"
)

// CarRepository implementa repositories.CarRepository
type CarRepository struct {
	db *gorm.DB
}

// NewCarRepository cria um novo CarRepository
func NewCarRepository(db *gorm.DB) repositories.CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) Create(ctx context.Context, car *entities.Car) error {
	model := r.toModel(car)
	if model.ID == "" {
		model.ID = uuid.New().String()
	}
	if model.AvailabilityStatus == "" {
		model.AvailabilityStatus = string(entities.StatusAvailable)
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	car.ID = model.ID
	car.AvailabilityStatus = entities.AvailabilityStatus(model.AvailabilityStatus)
	car.CreatedAt = time.Unix(model.CreatedAt, 0)
	car.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *CarRepository) FindDetailsByID(ctx context.Context, id string) (*entities.CarDetails, error) {
	var model CarModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	err := db.Preload("Seller").Preload("Images").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	car := r.toEntity(&model)

	images := make([]*entities.Image, 0, len(model.Images))
	for i := range model.Images {
		img, err := imageToEntity(&model.Images[i])
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return &entities.CarDetails{
		Car: car,
		Seller: entities.SellerSummary{
			ID:    model.Seller.ID,
			Name:  model.Seller.Name,
			Email: model.Seller.Email,
		},
		Images: images,
	}, nil
}

// carSummaryRow é a projeção lida na busca (payload enxuto)
type carSummaryRow struct {
	ID           string
	Make         string
	CarModel     string
	Year         int
	Price        decimal.Decimal
	Mileage      int
	Transmission string
}

func (r *CarRepository) Search(ctx context.Context, filters repositories.CarFilters) ([]*entities.CarSummary, error) {
	var rows []carSummaryRow

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = 10
	}

	query := applyCarFilters(r.getDB(ctx).Model(&CarModel{}), filters)
	query = query.Select("id", "make", "car_model", "year", "price", "mileage", "transmission").
		Order(orderClause(filters.SortParameter, filters.SortOrder)).
		Offset((page - 1) * limit).
		Limit(limit)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]*entities.CarSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entities.CarSummary{
			ID:           row.ID,
			Make:         row.Make,
			CarModel:     row.CarModel,
			Year:         row.Year,
			Price:        row.Price,
			Mileage:      row.Mileage,
			Transmission: entities.Transmission(row.Transmission),
		})
	}

	return summaries, nil
}

func (r *CarRepository) Count(ctx context.Context, filters repositories.CarFilters) (int64, error) {
	var count int64

	query := applyCarFilters(r.getDB(ctx).Model(&CarModel{}), filters)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// applyCarFilters monta a conjunção de predicados da busca. Cada campo
// presente contribui com exatamente uma condição AND; campos ausentes não
// restringem nada. Substrings casam de forma case-insensitive via
// LOWER(...) LIKE, que funciona igual no PostgreSQL e no SQLite dos testes.
func applyCarFilters(query *gorm.DB, filters repositories.CarFilters) *gorm.DB {
	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	if filters.Make != nil {
		query = query.Where("LOWER(make) LIKE ?", containsPattern(*filters.Make))
	}
	if filters.CarModel != nil {
		query = query.Where("LOWER(car_model) LIKE ?", containsPattern(*filters.CarModel))
	}

	// Limites de faixa são inclusivos e independentes entre si
	if filters.YearMin != nil {
		query = query.Where("year >= ?", *filters.YearMin)
	}
	if filters.YearMax != nil {
		query = query.Where("year <= ?", *filters.YearMax)
	}
	if filters.PriceMin != nil {
		query = query.Where("price >= ?", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		query = query.Where("price <= ?", *filters.PriceMax)
	}
	if filters.MileageMin != nil {
		query = query.Where("mileage >= ?", *filters.MileageMin)
	}
	if filters.MileageMax != nil {
		query = query.Where("mileage <= ?", *filters.MileageMax)
	}

	return query
}

func containsPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// orderClause resolve o par (campo, direção) para a cláusula ORDER BY.
// Campos desconhecidos ou ausentes caem em created_at; direção ausente
// cai em DESC.
func orderClause(param repositories.SortParameter, order repositories.SortOrder) string {
	var column string
	switch param {
	case repositories.SortByPrice:
		column = "price"
	case repositories.SortByMileage:
		column = "mileage"
	case repositories.SortByYear:
		column = "year"
	default:
		column = "created_at"
	}

	direction := "DESC"
	if order == repositories.SortAsc {
		direction = "ASC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}

// getDB extrai DB do contexto (para suportar transações)
func (r *CarRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *CarRepository) toModel(car *entities.Car) *CarModel {
	var deletedAt *int64
	if car.DeletedAt != nil {
		ts := car.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &CarModel{
		ID:                 car.ID,
		SellerID:           car.SellerID,
		Make:               car.Make,
		CarModel:           car.CarModel,
		Year:               car.Year,
		Color:              car.Color,
		Mileage:            car.Mileage,
		Price:              car.Price,
		VIN:                car.VIN,
		FuelType:           string(car.FuelType),
		Transmission:       string(car.Transmission),
		Description:        car.Description,
		AvailabilityStatus: string(car.AvailabilityStatus),
		CreatedAt:          unixOrZero(car.CreatedAt),
		UpdatedAt:          unixOrZero(car.UpdatedAt),
		DeletedAt:          deletedAt,
	}
}

// unixOrZero preserva o zero value para que o autoCreateTime do GORM
// preencha timestamps não informados
func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func (r *CarRepository) toEntity(model *CarModel) *entities.Car {
	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	return &entities.Car{
		ID:                 model.ID,
		SellerID:           model.SellerID,
		Make:               model.Make,
		CarModel:           model.CarModel,
		Year:               model.Year,
		Color:              model.Color,
		Mileage:            model.Mileage,
		Price:              model.Price,
		VIN:                model.VIN,
		FuelType:           entities.FuelType(model.FuelType),
		Transmission:       entities.Transmission(model.Transmission),
		Description:        model.Description,
		AvailabilityStatus: entities.AvailabilityStatus(model.AvailabilityStatus),
		CreatedAt:          time.Unix(model.CreatedAt, 0),
		UpdatedAt:          time.Unix(model.UpdatedAt, 0),
		DeletedAt:          deletedAt,
	}
}
