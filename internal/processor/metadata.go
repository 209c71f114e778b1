package processor

import (
	"image"

	"github.com/trunov/resizehub/internal/entities"
)

// Extract decodes data and reads its dimensions, format and color mode.
// SizeBytes is the length of the encoded source bytes, not the raster.
func Extract(data []byte) (entities.ImageMetadata, error) {
	img, format, err := Decode(data)
	if err != nil {
		return entities.ImageMetadata{}, err
	}

	b := img.Bounds()
	return entities.ImageMetadata{
		Width:     b.Dx(),
		Height:    b.Dy(),
		Format:    format,
		Mode:      colorMode(img),
		SizeBytes: int64(len(data)),
	}, nil
}

// colorMode maps the decoded raster type to the mode tag stored on audit
// records. JPEG's YCbCr planes are RGB data; RGBA rasters with no actual
// transparency report "RGB".
func colorMode(img image.Image) string {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return "L"
	case *image.Paletted:
		return "P"
	case *image.CMYK:
		return "CMYK"
	case *image.YCbCr:
		return "RGB"
	}
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return "RGB"
	}
	return "RGBA"
}
