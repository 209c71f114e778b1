package processor

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/trunov/resizehub/internal/entities"
)

// ResizeHalf scales img to fit within a bounding box of half the original
// dimensions, preserving aspect ratio and never upscaling. The contract is
// "fits within the half-dimensions box", not "exactly half": rounding may
// land a target axis below 50%. Axes of 1 pixel stay at 1 pixel.
func ResizeHalf(img image.Image) (image.Image, entities.ResizeResult) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	boxW, boxH := w/2, h/2
	if boxW < 1 {
		boxW = 1
	}
	if boxH < 1 {
		boxH = 1
	}

	scale := math.Min(1, math.Min(float64(boxW)/float64(w), float64(boxH)/float64(h)))
	tw := clampDim(int(math.Round(float64(w)*scale)), boxW)
	th := clampDim(int(math.Round(float64(h)*scale)), boxH)

	res := entities.ResizeResult{
		OriginalWidth:  w,
		OriginalHeight: h,
		TargetWidth:    tw,
		TargetHeight:   th,
	}

	// Nothing to do for originals already inside the box.
	if tw == w && th == h {
		return img, res
	}

	return imaging.Resize(img, tw, th, imaging.Lanczos), res
}

func clampDim(v, box int) int {
	if v < 1 {
		return 1
	}
	if v > box {
		return box
	}
	return v
}
