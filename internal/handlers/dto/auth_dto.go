package dto

import "github.com/rafabene/carmarket-backend/internal/services"

// SignUpRequest representa a requisição de cadastro
type SignUpRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=7,max=20"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

// ToInput converte a requisição para o input do serviço
func (r *SignUpRequest) ToInput() services.SignUpInput {
	return services.SignUpInput{
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Password:    r.Password,
	}
}

// SignInRequest representa a requisição de login
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse representa a resposta de login
type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
