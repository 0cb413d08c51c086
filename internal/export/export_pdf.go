package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const fontFamily = "ExportFont"

// defaultFont covers Latin and Cyrillic and is used when no PDF_FONT_PATH is given.
//
//go:embed fonts/DejaVuSansCondensed.ttf
var defaultFont []byte

type Renderer interface {
	Render(lines []Line) ([]byte, error)
}

type pdfRenderer struct {
	font     []byte
	compress bool
	now      func() time.Time
}

// NewPDFRenderer loads the TTF font at fontPath, or the bundled DejaVu Sans
// Condensed when fontPath is empty.
func NewPDFRenderer(fontPath string, logger ...*zap.Logger) (Renderer, error) {
	l := zap.L().Named("export.pdf")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.pdf")
	}

	if fontPath == "" {
		l.Info("pdf font loaded", zap.String("font", "bundled DejaVuSansCondensed"), zap.Int("bytes", len(defaultFont)))
		return newPDFRenderer(defaultFont), nil
	}

	font, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read pdf font %q: %w", fontPath, err)
	}
	r := newPDFRenderer(font)
	sample := []Line{{Page: 1, X: marginX, Y: headerTop, Text: "Фамилия"}}
	if _, err := r.Render(sample); err != nil {
		return nil, fmt.Errorf("load pdf font %q: %w", fontPath, err)
	}
	l.Info("pdf font loaded", zap.String("path", fontPath), zap.Int("bytes", len(font)))
	return r, nil
}

func newPDFRenderer(font []byte) *pdfRenderer {
	return &pdfRenderer{font: font, compress: true, now: time.Now}
}

func (r *pdfRenderer) Render(lines []Line) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(r.now())
	pdf.SetCompression(r.compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(fontFamily, "", r.font)

	page := 0
	for _, line := range lines {
		for page < line.Page {
			pdf.AddPage()
			pdf.SetFont(fontFamily, "", FontSize)
			page++
		}
		pdf.Text(line.X, PageHeight-line.Y, line.Text)
	}
	if page == 0 {
		pdf.AddPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
