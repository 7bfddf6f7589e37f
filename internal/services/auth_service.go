package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	apperrors "github.com/rafabene/carmarket-backend/internal/domain/errors"
	"github.com/rafabene/carmarket-backend/internal/domain/ports"
	"github.com/rafabene/carmarket-backend/internal/domain/repositories"
	"github.com/rafabene/carmarket-backend/internal/domain/valueobjects"
)

// AuthService contém a lógica de cadastro e autenticação
type AuthService struct {
	userRepo     repositories.UserRepository
	logger       ports.Logger
	jwtSecret    string
	accessExpiry time.Duration
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	logger ports.Logger,
	jwtSecret string,
	accessExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		logger:       logger,
		jwtSecret:    jwtSecret,
		accessExpiry: accessExpiry,
	}
}

// SignUpInput representa os dados de cadastro
type SignUpInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// SignUp cadastra um novo usuário com role BUYER
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*entities.User, error) {
	s.logger.Info("signing up user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Role:         entities.RoleBuyer,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	return user, nil
}

// SignIn autentica por email/senha e emite um token de acesso
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*entities.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := GenerateToken(user, s.jwtSecret, s.accessExpiry)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user signed in", "user_id", user.ID)
	return user, token, nil
}
