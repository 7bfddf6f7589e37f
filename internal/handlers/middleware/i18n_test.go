package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/carmarket-backend/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	tmpDir := t.TempDir()

	enContent := `{"error.car_not_found": "Car not found"}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(enContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create en.json: %v", err)
	}

	ptContent := `{"error.car_not_found": "Carro não encontrado"}`
	if err := os.WriteFile(filepath.Join(tmpDir, "pt-BR.json"), []byte(ptContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create pt-BR.json: %v", err)
	}

	service, err := i18n.NewService(tmpDir, "en")
	if err != nil {
		t.Fatalf("failed to initialize i18n service: %v", err)
	}

	return service
}

func detectLanguage(t *testing.T, mw *I18nMiddleware, target string, header string) string {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("Accept-Language", header)
	}
	c.Request = req

	mw.DetectLanguage()(c)

	lang, exists := c.Get(LanguageContextKey)
	if !exists {
		t.Fatal("idioma não foi definido no contexto")
	}
	return lang.(string)
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := NewI18nMiddleware(setupTestI18n(t))

	t.Run("detecta idioma do query parameter", func(t *testing.T) {
		if lang := detectLanguage(t, mw, "/?lang=pt-BR", ""); lang != "pt-BR" {
			t.Errorf("esperava 'pt-BR', obteve '%s'", lang)
		}
	})

	t.Run("query parameter tem prioridade sobre Accept-Language", func(t *testing.T) {
		if lang := detectLanguage(t, mw, "/?lang=en", "pt-BR"); lang != "en" {
			t.Errorf("esperava 'en', obteve '%s'", lang)
		}
	})

	t.Run("detecta idioma do Accept-Language header", func(t *testing.T) {
		if lang := detectLanguage(t, mw, "/", "pt-BR,pt;q=0.9,en;q=0.8"); lang != "pt-BR" {
			t.Errorf("esperava 'pt-BR', obteve '%s'", lang)
		}
	})

	t.Run("idioma não suportado cai no padrão", func(t *testing.T) {
		if lang := detectLanguage(t, mw, "/?lang=fr", "fr-FR"); lang != "en" {
			t.Errorf("esperava 'en' (padrão), obteve '%s'", lang)
		}
	})

	t.Run("usa idioma padrão quando nenhum é especificado", func(t *testing.T) {
		if lang := detectLanguage(t, mw, "/", ""); lang != "en" {
			t.Errorf("esperava 'en' (padrão), obteve '%s'", lang)
		}
	})
}
