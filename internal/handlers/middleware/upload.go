package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/rafabene/carmarket-backend/internal/domain/errors"
	"github.com/rafabene/carmarket-backend/internal/domain/ports"
)

// UploadedFilesContextKey é a chave dos descritores de upload no contexto
const UploadedFilesContextKey = "uploaded_files"

// UploadMiddleware envia os arquivos do formulário multipart para o
// storage de objetos antes do handler rodar, deixando os descritores
// no contexto para o fluxo de publicação de anúncio
type UploadMiddleware struct {
	storage     ports.FileStorage
	maxFiles    int
	maxFileSize int64
	logger      ports.Logger
}

// NewUploadMiddleware cria um novo UploadMiddleware
func NewUploadMiddleware(storage ports.FileStorage, maxFiles int, maxFileSize int64, logger ports.Logger) *UploadMiddleware {
	return &UploadMiddleware{
		storage:     storage,
		maxFiles:    maxFiles,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Array processa os arquivos do campo informado (zero ou mais)
func (m *UploadMiddleware) Array(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			// Sem corpo multipart: segue sem arquivos
			c.Set(UploadedFilesContextKey, []ports.StoredFile{})
			c.Next()
			return
		}

		files := form.File[field]
		if len(files) > m.maxFiles {
			abortWithProblem(c, http.StatusBadRequest,
				apperrors.ProblemTypeBadRequest,
				"error.bad_request.title",
				"error.upload.too_many_files",
				map[string]interface{}{"Max": m.maxFiles},
			)
			return
		}

		stored := make([]ports.StoredFile, 0, len(files))
		for _, fileHeader := range files {
			if fileHeader.Size > m.maxFileSize {
				abortWithProblem(c, http.StatusBadRequest,
					apperrors.ProblemTypeBadRequest,
					"error.bad_request.title",
					"error.upload.file_too_large",
					map[string]interface{}{"Name": fileHeader.Filename},
				)
				return
			}

			src, err := fileHeader.Open()
			if err != nil {
				m.logger.Error("failed to open uploaded file",
					"file", fileHeader.Filename,
					"error", err,
				)
				abortWithProblem(c, http.StatusInternalServerError,
					apperrors.ProblemTypeInternal,
					"error.internal.title",
					"error.internal.detail",
				)
				return
			}

			file, err := m.storage.Upload(
				c.Request.Context(),
				fileHeader.Filename,
				fileHeader.Header.Get("Content-Type"),
				fileHeader.Size,
				src,
			)
			src.Close()
			if err != nil {
				m.logger.Error("failed to store uploaded file",
					"file", fileHeader.Filename,
					"error", err,
				)
				abortWithProblem(c, http.StatusInternalServerError,
					apperrors.ProblemTypeInternal,
					"error.internal.title",
					"error.internal.detail",
				)
				return
			}

			stored = append(stored, *file)
		}

		c.Set(UploadedFilesContextKey, stored)
		c.Next()
	}
}

// UploadedFiles retorna os descritores de upload do contexto
func UploadedFiles(c *gin.Context) []ports.StoredFile {
	value, exists := c.Get(UploadedFilesContextKey)
	if !exists {
		return nil
	}

	files, ok := value.([]ports.StoredFile)
	if !ok {
		return nil
	}
	return files
}
