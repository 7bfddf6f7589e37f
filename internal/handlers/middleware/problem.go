package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/carmarket-backend/internal/infrastructure/i18n"
)

// abortWithProblem finaliza a requisição com uma resposta RFC 7807.
// Middlewares não podem usar o pacote dto (ciclo de import), então a
// construção do problem vive aqui.
func abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string, params ...map[string]interface{}) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, translate(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = translate(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	c.AbortWithStatusJSON(status, problem)
}

// translate busca a tradução da chave usando o serviço i18n do contexto
func translate(c *gin.Context, key string, params ...map[string]interface{}) string {
	svc, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := svc.(*i18n.Service)
	if !ok {
		return key
	}

	lang := service.GetDefaultLanguage()
	if l, exists := c.Get(LanguageContextKey); exists {
		if langStr, ok := l.(string); ok {
			lang = langStr
		}
	}

	return service.T(lang, key, params...)
}
