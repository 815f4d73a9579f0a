package pdf

import (
	"context"

	"github.com/kpauljoseph/cardflip/pkg/models"
)

type CardImporter interface {
	ImportPDF(ctx context.Context, pdfPath string) ([]*models.Card, error)
}

// Document is an open PDF. Page numbers are zero indexed.
type Document interface {
	NumPage() int
	PageSize(pageNum int) (width, height float64, err error)
	Text(pageNum int) (string, error)
	Close() error
}

// Opener opens the PDF at path.
type Opener func(path string) (Document, error)
