package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// setupTestLocales cria arquivos de locale temporários para testes
func setupTestLocales(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	enContent := `{
  "error.car_not_found": "Car not found",
  "error.upload.too_many_files": "A listing accepts at most {{.Max}} images",
  "error.email_already_exists": "Email already registered"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(enContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create en.json: %v", err)
	}

	ptContent := `{
  "error.car_not_found": "Carro não encontrado",
  "error.upload.too_many_files": "Um anúncio aceita no máximo {{.Max}} imagens"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "pt-BR.json"), []byte(ptContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create pt-BR.json: %v", err)
	}

	return tmpDir
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		service, err := NewService(tmpDir, "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "en" {
			t.Errorf("esperava idioma padrão 'en', obteve '%s'", service.GetDefaultLanguage())
		}

		if len(service.GetSupportedLanguages()) != 2 {
			t.Errorf("esperava 2 idiomas suportados, obteve %d", len(service.GetSupportedLanguages()))
		}
	})

	t.Run("erro quando diretório não existe", func(t *testing.T) {
		if _, err := NewService("/diretorio/inexistente", "en"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		if _, err := NewService(tmpDir, "fr"); err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})
}

func TestService_T(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz chave de erro em português", func(t *testing.T) {
		result := service.T("pt-BR", "error.car_not_found")
		expected := "Carro não encontrado"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("interpola parâmetros na mensagem", func(t *testing.T) {
		result := service.T("pt-BR", "error.upload.too_many_files", map[string]interface{}{"Max": 10})
		expected := "Um anúncio aceita no máximo 10 imagens"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("fallback para idioma padrão quando a chave não existe no idioma", func(t *testing.T) {
		result := service.T("pt-BR", "error.email_already_exists")
		expected := "Email already registered"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("retorna a chave quando não há tradução", func(t *testing.T) {
		result := service.T("en", "chave.inexistente")
		if result != "chave.inexistente" {
			t.Errorf("esperava a própria chave, obteve '%s'", result)
		}
	})
}

func TestService_ThreadSafety(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "error.upload.too_many_files", map[string]interface{}{"Max": 10})
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("en")
		}()
	}
	wg.Wait()
}
