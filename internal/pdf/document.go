package pdf

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/kpauljoseph/cardflip/pkg/logger"
)

// fitzDocument reads text with fitz. Page sizes come from pdfcpu, which
// reports the media box in points, with fitz bounds as the fallback.
type fitzDocument struct {
	doc  *fitz.Document
	dims []PageDimensions
}

// FitzOpener returns the Opener used by default.
func FitzOpener(log *logger.Logger) Opener {
	return func(path string) (Document, error) {
		doc, err := fitz.New(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open PDF: %w", err)
		}

		d := &fitzDocument{doc: doc}

		dims, err := api.PageDimsFile(path)
		if err != nil {
			log.Debug("pdfcpu could not read page sizes of %s, using fitz bounds: %v", path, err)
			return d, nil
		}
		d.dims = make([]PageDimensions, len(dims))
		for n, dim := range dims {
			d.dims[n] = PageDimensions{Width: dim.Width, Height: dim.Height}
		}
		return d, nil
	}
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageSize(pageNum int) (float64, float64, error) {
	if pageNum < len(d.dims) {
		return d.dims[pageNum].Width, d.dims[pageNum].Height, nil
	}
	bounds, err := d.doc.Bound(pageNum)
	if err != nil {
		return 0, 0, err
	}
	return float64(bounds.Dx()), float64(bounds.Dy()), nil
}

func (d *fitzDocument) Text(pageNum int) (string, error) {
	return d.doc.Text(pageNum)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
