package extract

import (
	"bytes"
	"context"
	"image"
	"image/draw"

	"go.uber.org/zap"

	// Register decoders for the supported image suffixes.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// extractImage decodes a standalone image and routes it through the OCR
// recognizer. Undecodable input degrades to empty text.
func (e *Extractor) extractImage(ctx context.Context, data []byte) string {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		e.log.Warn("failed to decode image", zap.Error(err))
		return ""
	}
	e.log.Debug("decoded image for recognition", zap.String("format", format))

	return e.recognizer.Recognize(ctx, toRGB(img))
}

// toRGB normalizes any decoded image (grayscale, paletted, CMYK) to an
// RGB-backed representation the OCR engines expect.
func toRGB(img image.Image) image.Image {
	if _, ok := img.(*image.RGBA); ok {
		return img
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}
