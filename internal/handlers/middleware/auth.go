package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/rafabene/carmarket-backend/internal/domain/errors"
	"github.com/rafabene/carmarket-backend/internal/services"
)

const (
	// UserIDContextKey é a chave do ID do usuário autenticado no contexto
	UserIDContextKey = "user_id"
	// UserRoleContextKey é a chave do role do usuário autenticado no contexto
	UserRoleContextKey = "user_role"
)

// AuthMiddleware valida o token Bearer das rotas protegidas
type AuthMiddleware struct {
	jwtSecret string
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// RequireAuth exige um JWT válido e injeta a identidade no contexto
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortWithProblem(c, http.StatusUnauthorized,
				apperrors.ProblemTypeUnauthorized,
				"error.unauthorized.title",
				"error.unauthorized.detail",
			)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := services.ValidateToken(tokenString, m.jwtSecret)
		if err != nil {
			abortWithProblem(c, http.StatusUnauthorized,
				apperrors.ProblemTypeUnauthorized,
				"error.unauthorized.title",
				"error.unauthorized.detail",
			)
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UserRoleContextKey, claims.Role)

		c.Next()
	}
}

// AuthenticatedUserID retorna o ID do usuário autenticado no contexto
func AuthenticatedUserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}
