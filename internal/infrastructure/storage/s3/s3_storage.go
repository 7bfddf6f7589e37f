package s3

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rafabene/carmarket-backend/internal/domain/ports"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/config"
)

// Storage implementa ports.FileStorage sobre um bucket S3/MinIO
type Storage struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
	logger   ports.Logger
}

// NewStorage cria o client MinIO e garante que o bucket exista
func NewStorage(cfg *config.StorageConfig, log ports.Logger) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	ctx := context.Background()
	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, errExists := client.BucketExists(ctx, cfg.Bucket)
		if errExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", cfg.Bucket, err)
		}
	}

	log.Info("object storage ready",
		"endpoint", cfg.Endpoint,
		"bucket", cfg.Bucket,
	)

	return &Storage{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
		logger:   log,
	}, nil
}

// Upload envia o arquivo para o bucket com um nome gerado e retorna o
// descritor consumido pelo fluxo de publicação de anúncio
func (s *Storage) Upload(ctx context.Context, originalName, mimeType string, size int64, content io.Reader) (*ports.StoredFile, error) {
	objectName := uuid.New().String() + filepath.Ext(originalName)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, content, size, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		s.logger.Error("failed to upload image",
			"object", objectName,
			"error", err,
		)
		return nil, fmt.Errorf("failed to upload %s: %w", originalName, err)
	}

	return &ports.StoredFile{
		OriginalName: originalName,
		FileName:     objectName,
		MimeType:     mimeType,
		Encoding:     "binary",
		Size:         size,
		URL:          s.objectURL(objectName),
	}, nil
}

func (s *Storage) objectURL(objectName string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName)
}
