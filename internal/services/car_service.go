package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	apperrors "github.com/rafabene/carmarket-backend/internal/domain/errors"
	"github.com/rafabene/carmarket-backend/internal/domain/ports"
	"github.com/rafabene/carmarket-backend/internal/domain/repositories"
)

// CarService contém a lógica de negócio para anúncios de veículos
type CarService struct {
	carRepo   repositories.CarRepository
	imageRepo repositories.ImageRepository
	userRepo  repositories.UserRepository
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewCarService cria um novo CarService
func NewCarService(
	carRepo repositories.CarRepository,
	imageRepo repositories.ImageRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CarService {
	return &CarService{
		carRepo:   carRepo,
		imageRepo: imageRepo,
		userRepo:  userRepo,
		uow:       uow,
		logger:    logger,
	}
}

// SubmitListingInput representa o payload já validado de publicação.
// O serviço não revalida conteúdo de campos: a camada de DTO é a
// fronteira de validação.
type SubmitListingInput struct {
	Make         string
	CarModel     string
	Year         int
	Color        string
	Mileage      int
	Price        decimal.Decimal
	VIN          string
	FuelType     entities.FuelType
	Transmission entities.Transmission
	Description  *string
}

// SubmitListing publica um anúncio: cria o Car, as Images dos arquivos
// anexados e, se o vendedor ainda for BUYER, promove-o a SELLER. As três
// escritas executam na mesma transação; qualquer falha reverte tudo e
// nenhum estado parcial sobrevive.
func (s *CarService) SubmitListing(
	ctx context.Context,
	sellerID string,
	input SubmitListingInput,
	files []ports.StoredFile,
) (*entities.Car, error) {
	s.logger.Info("submitting car listing",
		"seller_id", sellerID,
		"make", input.Make,
		"model", input.CarModel,
		"images", len(files),
	)

	var created *entities.Car

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		seller, err := s.userRepo.FindByID(txCtx, sellerID)
		if err != nil {
			return &apperrors.TransactionError{Op: "load seller", Err: err}
		}
		if seller == nil {
			return apperrors.ErrUserNotFound
		}

		car := &entities.Car{
			SellerID:           sellerID,
			Make:               input.Make,
			CarModel:           input.CarModel,
			Year:               input.Year,
			Color:              input.Color,
			Mileage:            input.Mileage,
			Price:              input.Price,
			VIN:                input.VIN,
			FuelType:           input.FuelType,
			Transmission:       input.Transmission,
			Description:        input.Description,
			AvailabilityStatus: entities.StatusAvailable,
		}

		// O Car precisa existir antes das Images: elas referenciam o ID gerado
		if err := s.carRepo.Create(txCtx, car); err != nil {
			return &apperrors.TransactionError{Op: "create car", Err: err}
		}

		images := make([]*entities.Image, 0, len(files))
		for _, f := range files {
			images = append(images, &entities.Image{
				CarID:        car.ID,
				URL:          f.URL,
				FileName:     f.FileName,
				OriginalName: f.OriginalName,
				MimeType:     f.MimeType,
				Encoding:     f.Encoding,
				Size:         f.Size,
			})
		}

		if err := s.imageRepo.CreateBatch(txCtx, images); err != nil {
			return &apperrors.TransactionError{Op: "create images", Err: err}
		}

		// Promoção unidirecional: quem já é SELLER não gera nova escrita
		if seller.PromoteToSeller() {
			if err := s.userRepo.Update(txCtx, seller); err != nil {
				return &apperrors.TransactionError{Op: "promote seller", Err: err}
			}
			s.logger.Info("seller promoted", "user_id", seller.ID)
		}

		created = car
		return nil
	})
	if err != nil {
		s.logger.Error("listing submission rolled back",
			"seller_id", sellerID,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info("car listing created", "car_id", created.ID)
	return created, nil
}

// CarPage é o envelope de página retornado pela busca
type CarPage struct {
	Data        []*entities.CarSummary
	Count       int64
	CurrentPage int
	NextPage    *int
	PrevPage    *int
}

// SearchCars executa a busca paginada de anúncios. Campos de ordenação e
// paginação ausentes recebem defaults aqui (created_at, desc, página 1,
// 10 itens) antes de chegar ao repositório. A contagem total e a leitura
// da página são consultas independentes, sem consistência transacional
// entre si.
func (s *CarService) SearchCars(ctx context.Context, filters repositories.CarFilters) (*CarPage, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}
	if filters.SortOrder == "" {
		filters.SortOrder = repositories.SortDesc
	}

	count, err := s.carRepo.Count(ctx, filters)
	if err != nil {
		return nil, err
	}

	data, err := s.carRepo.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	page := &CarPage{
		Data:        data,
		Count:       count,
		CurrentPage: filters.Page,
	}

	totalPages := int((count + int64(filters.Limit) - 1) / int64(filters.Limit))
	if filters.Page < totalPages {
		next := filters.Page + 1
		page.NextPage = &next
	}
	if filters.Page > 1 {
		prev := filters.Page - 1
		page.PrevPage = &prev
	}

	return page, nil
}

// GetCarDetails busca os detalhes de um anúncio, com resumo do vendedor
// e imagens embutidas
func (s *CarService) GetCarDetails(ctx context.Context, id string) (*entities.CarDetails, error) {
	details, err := s.carRepo.FindDetailsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, apperrors.ErrCarNotFound
	}
	return details, nil
}
