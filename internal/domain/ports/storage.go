package ports

import (
	"context"
	"io"
)

// StoredFile descreve um arquivo persistido no storage de objetos.
// É o formato consumido pelo fluxo de publicação de anúncio.
type StoredFile struct {
	OriginalName string
	FileName     string // nome gerado pelo storage
	MimeType     string
	Encoding     string
	Size         int64
	URL          string
}

// FileStorage define a interface para armazenamento de arquivos de imagem
type FileStorage interface {
	Upload(ctx context.Context, originalName, mimeType string, size int64, content io.Reader) (*StoredFile, error)
}
