package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	"github.com/rafabene/carmarket-backend/internal/domain/repositories"
)

// ImageRepository implementa repositories.ImageRepository
type ImageRepository struct {
	db *gorm.DB
}

// NewImageRepository cria um novo ImageRepository
func NewImageRepository(db *gorm.DB) repositories.ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) CreateBatch(ctx context.Context, images []*entities.Image) error {
	if len(images) == 0 {
		return nil
	}

	models := make([]*ImageModel, 0, len(images))
	for _, img := range images {
		model := imageToModel(img)
		if model.ID == "" {
			model.ID = uuid.New().String()
		}
		models = append(models, model)
	}

	db := r.getDB(ctx)
	if err := db.Create(&models).Error; err != nil {
		return err
	}

	for i, model := range models {
		images[i].ID = model.ID
		images[i].CreatedAt = time.Unix(model.CreatedAt, 0)
	}
	return nil
}

func (r *ImageRepository) FindByCarID(ctx context.Context, carID string) ([]*entities.Image, error) {
	var models []*ImageModel

	db := r.getDB(ctx)
	if err := db.Where("car_id = ?", carID).Find(&models).Error; err != nil {
		return nil, err
	}

	images := make([]*entities.Image, 0, len(models))
	for _, model := range models {
		img, err := imageToEntity(model)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ImageRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func imageToModel(img *entities.Image) *ImageModel {
	return &ImageModel{
		ID:           img.ID,
		CarID:        img.CarID,
		URL:          img.URL,
		FileName:     img.FileName,
		OriginalName: img.OriginalName,
		MimeType:     img.MimeType,
		Encoding:     img.Encoding,
		Size:         strconv.FormatInt(img.Size, 10),
		CreatedAt:    unixOrZero(img.CreatedAt),
	}
}

func imageToEntity(model *ImageModel) (*entities.Image, error) {
	// Coluna varchar: um valor que não parseia é corrupção de dados
	size, err := strconv.ParseInt(model.Size, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid image size %q for image %s: %w", model.Size, model.ID, err)
	}

	return &entities.Image{
		ID:           model.ID,
		CarID:        model.CarID,
		URL:          model.URL,
		FileName:     model.FileName,
		OriginalName: model.OriginalName,
		MimeType:     model.MimeType,
		Encoding:     model.Encoding,
		Size:         size,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
	}, nil
}
