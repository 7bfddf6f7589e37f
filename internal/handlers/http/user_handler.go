package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	apperrors "github.com/rafabene/carmarket-backend/internal/domain/errors"
	"github.com/rafabene/carmarket-backend/internal/domain/repositories"
	"github.com/rafabene/carmarket-backend/internal/handlers/dto"
	"github.com/rafabene/carmarket-backend/internal/handlers/middleware"
	"github.com/rafabene/carmarket-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile retorna o usuário autenticado
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)

	user, err := h.userService.GetUser(c.Request.Context(), userID)
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

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.userService.GetUser(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários com filtro opcional de role
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters := repositories.UserFilters{}

	if role := c.Query("role"); role != "" {
		r := entities.Role(role)
		if !r.IsValid() {
			response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "role", Message: "unknown role", Value: role},
			})
			c.JSON(http.StatusBadRequest, response)
			return
		}
		filters.Role = &r
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}
