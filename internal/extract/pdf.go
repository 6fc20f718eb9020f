package extract

import (
	"bytes"
	"context"
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ocrPageParallelism bounds concurrent page recognition during the PDF
// OCR fallback. Results are joined in page order regardless.
const ocrPageParallelism = 2

// extractPDF tries the cheap text-layer path first and falls back to
// rasterizing pages through the OCR recognizer when the text layer is too
// thin. The insufficient direct text is still returned when OCR yields
// nothing.
func (e *Extractor) extractPDF(ctx context.Context, data []byte) string {
	direct := e.pdfTextLayer(data)
	if countNonWhitespace(direct) > e.pdfTextThreshold {
		return direct
	}

	recognized := e.pdfOCR(ctx, data)
	if strings.TrimSpace(recognized) != "" {
		return recognized
	}
	return direct
}

// pdfTextLayer concatenates per-page text-layer content.
func (e *Extractor) pdfTextLayer(data []byte) (text string) {
	// The reader panics on some malformed files; treat that like any
	// other decoding failure.
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("pdf text-layer extraction panicked", zap.Any("cause", r))
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.log.Warn("failed to open pdf text layer", zap.Error(err))
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			e.log.Debug("failed to extract pdf page text",
				zap.Int("page", i), zap.Error(err))
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// pdfOCR rasterizes every page and routes the images through the OCR
// recognizer, concatenating the per-page results in page order.
func (e *Extractor) pdfOCR(ctx context.Context, data []byte) string {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		e.log.Warn("failed to open pdf for rasterization", zap.Error(err))
		return ""
	}
	defer func() { _ = doc.Close() }()

	// Rendering shares one mupdf context and stays sequential; only the
	// recognition of the rendered pages fans out.
	pages := make([]image.Image, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, e.pdfRenderDPI)
		if err != nil {
			e.log.Warn("failed to rasterize pdf page",
				zap.Int("page", i), zap.Error(err))
			continue
		}
		pages = append(pages, img)
	}
	if len(pages) == 0 {
		return ""
	}

	texts := make([]string, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ocrPageParallelism)
	for i, page := range pages {
		g.Go(func() error {
			texts[i] = e.recognizer.Recognize(gctx, page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Recognition itself never errors; this only fires on context
		// cancellation.
		e.log.Warn("pdf ocr aborted", zap.Error(err))
	}

	return strings.Join(texts, "\n")
}
