package processor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trunov/resizehub/internal/entities"
)

func newPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x % 256), B: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
		ok   bool
	}{
		{name: "png", data: newPNG(t, 4, 4), want: FormatPNG, ok: true},
		{name: "jpeg", data: newJPEG(t, 4, 4), want: FormatJPEG, ok: true},
		{name: "webp header", data: []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), want: FormatWEBP, ok: true},
		{name: "garbage", data: []byte("definitely not an image"), ok: false},
		{name: "too short", data: []byte{0xFF, 0xD8}, ok: false},
		{name: "empty", data: nil, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectFormat(tt.data)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract(t *testing.T) {
	data := newPNG(t, 64, 48)

	meta, err := Extract(data)
	require.NoError(t, err)

	assert.Equal(t, 64, meta.Width)
	assert.Equal(t, 48, meta.Height)
	assert.Equal(t, FormatPNG, meta.Format)
	assert.Equal(t, "RGB", meta.Mode) // fully opaque raster
	assert.Equal(t, int64(len(data)), meta.SizeBytes)
}

func TestExtract_JPEGMode(t *testing.T) {
	meta, err := Extract(newJPEG(t, 10, 10))
	require.NoError(t, err)

	assert.Equal(t, FormatJPEG, meta.Format)
	assert.Equal(t, "RGB", meta.Mode) // YCbCr planes are RGB data
}

func TestExtract_TransparentPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.Set(3, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 128})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	meta, err := Extract(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "RGBA", meta.Mode)
}

func TestExtract_GrayPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	meta, err := Extract(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "L", meta.Mode)
}

func TestExtract_Undecodable(t *testing.T) {
	_, err := Extract([]byte("this is a text file, not an image"))
	assert.ErrorIs(t, err, ErrUndecodable)

	// Valid magic bytes over truncated data still fail decode.
	data := newPNG(t, 32, 32)
	_, err = Extract(data[:20])
	assert.ErrorIs(t, err, ErrUndecodable)
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []string{FormatJPEG, FormatPNG, FormatWEBP} {
		t.Run(format, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 20, 12))

			data, err := Encode(img, format)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			_, got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, format, got)
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode(image.NewRGBA(image.Rect(0, 0, 1, 1)), "TIFF")
	assert.Error(t, err)
}

func TestResizeHalf(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{name: "even dimensions", w: 2000, h: 1000, wantW: 1000, wantH: 500},
		{name: "square", w: 64, h: 64, wantW: 32, wantH: 32},
		{name: "odd dimensions fit in floored box", w: 5, h: 4, wantW: 2, wantH: 2},
		{name: "single pixel stays", w: 1, h: 1, wantW: 1, wantH: 1},
		{name: "one pixel axis keeps the pixel", w: 1, h: 100, wantW: 1, wantH: 50},
		{name: "two by two", w: 2, h: 2, wantW: 1, wantH: 1},
		{name: "three by three", w: 3, h: 3, wantW: 1, wantH: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))

			out, res := ResizeHalf(src)

			assert.Equal(t, tt.wantW, res.TargetWidth)
			assert.Equal(t, tt.wantH, res.TargetHeight)
			assert.Equal(t, tt.w, res.OriginalWidth)
			assert.Equal(t, tt.h, res.OriginalHeight)

			b := out.Bounds()
			assert.Equal(t, tt.wantW, b.Dx())
			assert.Equal(t, tt.wantH, b.Dy())
		})
	}
}

func TestResizeHalf_Bounds(t *testing.T) {
	// Target never exceeds max(1, floor(orig/2)) on either axis and aspect
	// ratio survives within one pixel of rounding.
	dims := []struct{ w, h int }{
		{1, 1}, {1, 7}, {2, 3}, {7, 5}, {13, 13}, {31, 17}, {100, 99},
		{640, 480}, {1920, 1080}, {333, 1000},
	}
	for _, d := range dims {
		src := image.NewRGBA(image.Rect(0, 0, d.w, d.h))
		_, res := ResizeHalf(src)

		maxW := d.w / 2
		if maxW < 1 {
			maxW = 1
		}
		maxH := d.h / 2
		if maxH < 1 {
			maxH = 1
		}
		assert.LessOrEqual(t, res.TargetWidth, maxW, "width bound for %dx%d", d.w, d.h)
		assert.LessOrEqual(t, res.TargetHeight, maxH, "height bound for %dx%d", d.w, d.h)
		assert.GreaterOrEqual(t, res.TargetWidth, 1)
		assert.GreaterOrEqual(t, res.TargetHeight, 1)

		if d.w > 2 && d.h > 2 {
			origAspect := float64(d.w) / float64(d.h)
			gotAspect := float64(res.TargetWidth) / float64(res.TargetHeight)
			perPixel := origAspect / float64(res.TargetHeight)
			assert.InDelta(t, origAspect, gotAspect, perPixel+0.01,
				"aspect for %dx%d -> %dx%d", d.w, d.h, res.TargetWidth, res.TargetHeight)
		}
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name     string
		original int64
		resized  int64
		want     int
	}{
		{name: "half", original: 500000, resized: 250000, want: 50},
		{name: "rounds nearest", original: 3, resized: 2, want: 33},
		{name: "rounds up", original: 3, resized: 1, want: 67},
		{name: "grew larger", original: 100, resized: 150, want: -50},
		{name: "unchanged", original: 100, resized: 100, want: 0},
		{name: "empty variant", original: 100, resized: 0, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := entities.ImageMetadata{Width: 2000, Height: 1000, SizeBytes: tt.original}
			res := entities.ImageMetadata{Width: 1000, Height: 500, SizeBytes: tt.resized}

			got, err := Reduce(orig, res)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Percent)
			assert.Equal(t, "2000x1000 → 1000x500", got.Dimensions)
		})
	}
}

func TestReduce_ZeroByteSource(t *testing.T) {
	orig := entities.ImageMetadata{Width: 10, Height: 10, SizeBytes: 0}
	res := entities.ImageMetadata{Width: 5, Height: 5, SizeBytes: 3}

	_, err := Reduce(orig, res)
	assert.ErrorIs(t, err, ErrZeroByteSource)
}
