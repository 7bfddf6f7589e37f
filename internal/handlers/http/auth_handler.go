package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/rafabene/carmarket-backend/internal/domain/errors"
	"github.com/rafabene/carmarket-backend/internal/handlers/dto"
	"github.com/rafabene/carmarket-backend/internal/services"
)

// AuthHandler lida com requisições HTTP de cadastro e login
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignUp cadastra um novo usuário
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ToValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.ToInput())
	if err != nil {
		if errs.Is(err, apperrors.ErrEmailAlreadyExists) {
			response := dto.ConflictErrorResponseI18n(c, "error.email_already_exists")
			c.JSON(http.StatusConflict, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// SignIn autentica um usuário e emite um token de acesso
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ToValidationErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	user, token, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, apperrors.ErrInvalidCredentials) {
			response := dto.UnauthorizedErrorResponseI18n(c)
			c.JSON(http.StatusUnauthorized, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.SignInResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}
