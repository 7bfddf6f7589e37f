package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/rafabene/carmarket-backend/internal/domain/errors"
	"github.com/rafabene/carmarket-backend/internal/handlers/dto"
	"github.com/rafabene/carmarket-backend/internal/handlers/middleware"
	"github.com/rafabene/carmarket-backend/internal/services"
)

// CarHandler lida com requisições HTTP de anúncios de veículos
type CarHandler struct {
	carService *services.CarService
}

// NewCarHandler cria um novo CarHandler
func NewCarHandler(carService *services.CarService) *CarHandler {
	return &CarHandler{
		carService: carService,
	}
}

// AddCarListing publica um anúncio (multipart com campo "images")
func (h *CarHandler) AddCarListing(c *gin.Context) {
	var req dto.AddCarListingRequest

	if err := c.ShouldBind(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ToValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "price", Message: err.Error()},
		})
		c.JSON(http.StatusBadRequest, response)
		return
	}

	sellerID := middleware.AuthenticatedUserID(c)
	files := middleware.UploadedFiles(c)

	car, err := h.carService.SubmitListing(c.Request.Context(), sellerID, input, files)
	if err != nil {
		if errs.Is(err, apperrors.ErrUserNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "User")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCarResponse(car))
}

// GetCarDetails busca os detalhes de um anúncio por ID
func (h *CarHandler) GetCarDetails(c *gin.Context) {
	carID := c.Param("carId")

	details, err := h.carService.GetCarDetails(c.Request.Context(), carID)
	if err != nil {
		if errs.Is(err, apperrors.ErrCarNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Car")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarDetailResponse(details))
}

// GetCars busca anúncios com filtros, ordenação e paginação
func (h *CarHandler) GetCars(c *gin.Context) {
	var req dto.CarSearchFilterRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ToValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	filters, err := req.ToFilters()
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "price", Message: err.Error()},
		})
		c.JSON(http.StatusBadRequest, response)
		return
	}

	page, err := h.carService.SearchCars(c.Request.Context(), filters)
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToCarPageResponse(page))
}
