package entities

// Role representa o papel de um usuário no marketplace
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Listing permissions
	PermissionListingRead   Permission = "listings.read"
	PermissionListingWrite  Permission = "listings.write"
	PermissionListingDelete Permission = "listings.delete"

	// User permissions
	PermissionUserRead  Permission = "users.read"
	PermissionUserWrite Permission = "users.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionListingRead,
		PermissionListingWrite,
		PermissionListingDelete,
		PermissionUserRead,
		PermissionUserWrite,
	},
	RoleSeller: {
		PermissionListingRead,
		PermissionListingWrite,
		PermissionUserRead,
	},
	RoleBuyer: {
		PermissionListingRead,
		PermissionUserRead,
	},
}

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
