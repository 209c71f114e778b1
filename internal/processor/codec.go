package processor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
)

// Format tags, stored verbatim on audit records.
const (
	FormatJPEG = "JPEG"
	FormatPNG  = "PNG"
	FormatWEBP = "WEBP"
)

// ErrUndecodable marks bytes that are not a decodable image. Terminal for
// the record being processed; never retried.
var ErrUndecodable = errors.New("undecodable image data")

const (
	jpegQuality = 90
	webpQuality = 90
)

// DetectFormat sniffs the leading magic bytes and reports the image format.
func DetectFormat(data []byte) (string, bool) {
	if len(data) < 4 {
		return "", false
	}
	// JPEG: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return FormatJPEG, true
	}
	// PNG: 89 50 4E 47
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return FormatPNG, true
	}
	// WebP: RIFF....WEBP
	if len(data) >= 12 &&
		data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' &&
		data[8] == 'W' && data[9] == 'E' && data[10] == 'B' && data[11] == 'P' {
		return FormatWEBP, true
	}
	return "", false
}

// Decode sniffs the format of data and decodes it into a raster.
func Decode(data []byte) (image.Image, string, error) {
	format, ok := DetectFormat(data)
	if !ok {
		return nil, "", fmt.Errorf("%w: unrecognized format", ErrUndecodable)
	}

	r := bytes.NewReader(data)
	var (
		img image.Image
		err error
	)
	switch format {
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatWEBP:
		img, err = webp.Decode(r)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return img, format, nil
}

// Encode serializes img in the given format, preserving the source format of
// a transformation.
func Encode(img image.Image, format string) ([]byte, error) {
	buf := new(bytes.Buffer)
	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality})
	case FormatPNG:
		err = png.Encode(buf, img)
	case FormatWEBP:
		err = webp.Encode(buf, img, &webp.Options{
			Lossless: false,
			Quality:  webpQuality,
			Exact:    true,
		})
	default:
		return nil, fmt.Errorf("unsupported encode format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
