package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registra validações custom no engine do Gin.
// Deve ser chamado uma vez, na inicialização.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// notfuture: o ano do veículo não pode estar no futuro
	return v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(time.Now().Year())
	})
}

// ToValidationErrors converte erros do validator para o formato da API
func ToValidationErrors(err error) []ValidationError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	result := make([]ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		result = append(result, ValidationError{
			Field:   fieldErr.Field(),
			Message: fieldErr.Error(),
			Tag:     fieldErr.Tag(),
			Value:   fieldErr.Param(),
		})
	}
	return result
}
