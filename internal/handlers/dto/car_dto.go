package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	"github.com/rafabene/carmarket-backend/internal/domain/repositories"
	"github.com/rafabene/carmarket-backend/internal/services"
)

// AddCarListingRequest representa o formulário multipart de publicação.
// O preço chega como string e vira decimal sem passar por float.
type AddCarListingRequest struct {
	Make         string  `form:"make" binding:"required,min=1,max=100"`
	CarModel     string  `form:"carModel" binding:"required,min=1,max=100"`
	Year         int     `form:"year" binding:"required,notfuture"`
	Color        string  `form:"color" binding:"required,max=50"`
	Mileage      int     `form:"mileage" binding:"min=0"`
	Price        string  `form:"price" binding:"required"`
	VIN          string  `form:"vin" binding:"required,max=64"`
	FuelType     string  `form:"fuelType" binding:"required,oneof=Gasoline Diesel Electric Hybrid"`
	Transmission string  `form:"transmission" binding:"required,oneof=AUTOMATIC MANUAL"`
	Description  *string `form:"description" binding:"omitempty,max=2000"`
}

// ToInput converte a requisição para o input do serviço
func (r *AddCarListingRequest) ToInput() (services.SubmitListingInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return services.SubmitListingInput{}, fmt.Errorf("invalid price %q: %w", r.Price, err)
	}
	if price.IsNegative() {
		return services.SubmitListingInput{}, fmt.Errorf("price must not be negative")
	}

	return services.SubmitListingInput{
		Make:         r.Make,
		CarModel:     r.CarModel,
		Year:         r.Year,
		Color:        r.Color,
		Mileage:      r.Mileage,
		Price:        price,
		VIN:          r.VIN,
		FuelType:     entities.FuelType(r.FuelType),
		Transmission: entities.Transmission(r.Transmission),
		Description:  r.Description,
	}, nil
}

// CarSearchFilterRequest representa os parâmetros de busca na query string.
// Campos ausentes não restringem a busca; page <= 0 é rejeitado aqui,
// antes de chegar ao serviço.
type CarSearchFilterRequest struct {
	Make          *string `form:"make" binding:"omitempty,min=1"`
	Model         *string `form:"model" binding:"omitempty,min=1"`
	YearMin       *int    `form:"yearMin" binding:"omitempty,min=1900"`
	YearMax       *int    `form:"yearMax" binding:"omitempty,min=1900"`
	PriceMin      *string `form:"priceMin" binding:"omitempty"`
	PriceMax      *string `form:"priceMax" binding:"omitempty"`
	MileageMin    *int    `form:"mileageMin" binding:"omitempty,min=0"`
	MileageMax    *int    `form:"mileageMax" binding:"omitempty,min=0"`
	SortParameter string  `form:"sortParameter" binding:"omitempty,oneof=price mileage year"`
	SortOrder     string  `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	// default= cobre o campo ausente; um zero explícito na query ainda
	// passa pelo min=1 e é rejeitado
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// ToFilters converte a requisição para os filtros tipados do repositório
func (r *CarSearchFilterRequest) ToFilters() (repositories.CarFilters, error) {
	filters := repositories.CarFilters{
		Make:          r.Make,
		CarModel:      r.Model,
		YearMin:       r.YearMin,
		YearMax:       r.YearMax,
		MileageMin:    r.MileageMin,
		MileageMax:    r.MileageMax,
		SortParameter: repositories.SortParameter(r.SortParameter),
		SortOrder:     repositories.SortOrder(r.SortOrder),
		Page:          r.Page,
		Limit:         r.Limit,
	}

	if r.PriceMin != nil {
		price, err := decimal.NewFromString(*r.PriceMin)
		if err != nil {
			return filters, fmt.Errorf("invalid priceMin %q: %w", *r.PriceMin, err)
		}
		filters.PriceMin = &price
	}
	if r.PriceMax != nil {
		price, err := decimal.NewFromString(*r.PriceMax)
		if err != nil {
			return filters, fmt.Errorf("invalid priceMax %q: %w", *r.PriceMax, err)
		}
		filters.PriceMax = &price
	}

	return filters, nil
}

// CarResponse representa a resposta de um anúncio recém-criado
type CarResponse struct {
	ID                 string          `json:"id"`
	SellerID           string          `json:"sellerId"`
	Make               string          `json:"make"`
	CarModel           string          `json:"carModel"`
	Year               int             `json:"year"`
	Color              string          `json:"color"`
	Mileage            int             `json:"mileage"`
	Price              decimal.Decimal `json:"price"`
	VIN                string          `json:"vin"`
	FuelType           string          `json:"fuelType"`
	Transmission       string          `json:"transmission"`
	Description        *string         `json:"description,omitempty"`
	AvailabilityStatus string          `json:"availabilityStatus"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// ToCarResponse converte uma entidade Car para CarResponse
func ToCarResponse(car *entities.Car) CarResponse {
	return CarResponse{
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
		CreatedAt:          car.CreatedAt,
	}
}

// CarSummaryResponse é a projeção de listagem nos resultados de busca
type CarSummaryResponse struct {
	ID           string          `json:"id"`
	Make         string          `json:"make"`
	CarModel     string          `json:"carModel"`
	Year         int             `json:"year"`
	Price        decimal.Decimal `json:"price"`
	Mileage      int             `json:"mileage"`
	Transmission string          `json:"transmission"`
}

// CarPageResponse é o envelope de página da busca
type CarPageResponse struct {
	Data        []CarSummaryResponse `json:"data"`
	Count       int64                `json:"count"`
	CurrentPage int                  `json:"currentPage"`
	NextPage    *int                 `json:"nextPage"`
	PrevPage    *int                 `json:"prevPage"`
}

// ToCarPageResponse converte o envelope do serviço para a resposta HTTP
func ToCarPageResponse(page *services.CarPage) CarPageResponse {
	data := make([]CarSummaryResponse, len(page.Data))
	for i, summary := range page.Data {
		data[i] = CarSummaryResponse{
			ID:           summary.ID,
			Make:         summary.Make,
			CarModel:     summary.CarModel,
			Year:         summary.Year,
			Price:        summary.Price,
			Mileage:      summary.Mileage,
			Transmission: string(summary.Transmission),
		}
	}

	return CarPageResponse{
		Data:        data,
		Count:       page.Count,
		CurrentPage: page.CurrentPage,
		NextPage:    page.NextPage,
		PrevPage:    page.PrevPage,
	}
}

// ImageSummaryResponse é a projeção de imagem embutida nos detalhes
type ImageSummaryResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
}

// SellerSummaryResponse é a projeção do vendedor embutida nos detalhes
type SellerSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CarDetailResponse representa a resposta expandida de um anúncio
type CarDetailResponse struct {
	CarResponse
	Seller SellerSummaryResponse  `json:"seller"`
	Images []ImageSummaryResponse `json:"images"`
}

// ToCarDetailResponse converte um agregado CarDetails para a resposta HTTP
func ToCarDetailResponse(details *entities.CarDetails) CarDetailResponse {
	images := make([]ImageSummaryResponse, len(details.Images))
	for i, img := range details.Images {
		images[i] = ImageSummaryResponse{
			ID:           img.ID,
			URL:          img.URL,
			FileName:     img.FileName,
			OriginalName: img.OriginalName,
			MimeType:     img.MimeType,
		}
	}

	return CarDetailResponse{
		CarResponse: ToCarResponse(details.Car),
		Seller: SellerSummaryResponse{
			ID:    details.Seller.ID,
			Name:  details.Seller.Name,
			Email: details.Seller.Email,
		},
		Images: images,
	}
}
