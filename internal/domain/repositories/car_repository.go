package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
)

// CarRepository define a interface para persistência de anúncios
type CarRepository interface {
	Create(ctx context.Context, car *entities.Car) error
	// FindDetailsByID retorna o anúncio com o resumo do vendedor e as
	// imagens embutidas. Retorna (nil, nil) quando não existe.
	FindDetailsByID(ctx context.Context, id string) (*entities.CarDetails, error)
	// Search retorna a página de resumos que satisfaz os filtros.
	Search(ctx context.Context, filters CarFilters) ([]*entities.CarSummary, error)
	// Count conta os anúncios que satisfazem os filtros. É uma leitura
	// independente de Search: o par não tem garantia de consistência
	// transacional entre si.
	Count(ctx context.Context, filters CarFilters) (int64, error)
}

// ImageRepository define a interface para persistência de imagens de anúncios
type ImageRepository interface {
	// CreateBatch insere as imagens de um anúncio em lote. Só é chamado
	// dentro da transação de publicação, nunca isoladamente.
	CreateBatch(ctx context.Context, images []*entities.Image) error
	FindByCarID(ctx context.Context, carID string) ([]*entities.Image, error)
}

// SortParameter enumera os campos de ordenação aceitos na busca
type SortParameter string

const (
	SortByPrice   SortParameter = "price"
	SortByMileage SortParameter = "mileage"
	SortByYear    SortParameter = "year"
)

// SortOrder enumera as direções de ordenação
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// CarFilters contém os critérios opcionais de busca de anúncios.
// Campo nil significa "sem restrição". Cada campo presente contribui com
// exatamente uma condição conjuntiva (AND); substrings casam de forma
// case-insensitive e limites de faixa são inclusivos.
type CarFilters struct {
	Make     *string
	CarModel *string

	YearMin *int
	YearMax *int

	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal

	MileageMin *int
	MileageMax *int

	// SortParameter vazio ordena por data de criação
	SortParameter SortParameter
	SortOrder     SortOrder

	Page  int // Página (começa em 1)
	Limit int // Itens por página
}
