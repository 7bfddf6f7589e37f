package entities

import "time"

// Image representa uma foto anexada a um anúncio. Imagens são criadas
// apenas em lote, junto com o Car a que pertencem.
type Image struct {
	ID           string
	CarID        string
	URL          string
	FileName     string // nome gerado pelo storage
	OriginalName string
	MimeType     string
	Encoding     string
	Size         int64 // tamanho em bytes
	CreatedAt    time.Time
}
