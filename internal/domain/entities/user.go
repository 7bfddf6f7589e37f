package entities

import (
	"errors"
	"time"

	"github.com/rafabene/carmarket-backend/internal/domain/valueobjects"
)

// User representa um usuário do marketplace (comprador ou vendedor)
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         string
	PhoneNumber  string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft delete
}

// IsSeller verifica se o usuário já é um vendedor
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}

// PromoteToSeller promove o usuário a vendedor.
// A promoção é unidirecional: nunca rebaixa um SELLER nem altera um ADMIN.
// Retorna true se o role foi de fato alterado.
func (u *User) PromoteToSeller() bool {
	if u.Role != RoleBuyer {
		return false
	}
	u.Role = RoleSeller
	return true
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
