package entities

import "fmt"

// ImageMetadata describes one decoded image. SizeBytes is the size of the
// encoded byte source, not the decoded raster.
type ImageMetadata struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"` // "JPEG" | "PNG" | "WEBP"
	Mode      string `json:"mode"`   // "RGB" | "RGBA" | "L" | "P" | "CMYK"
	SizeBytes int64  `json:"size_bytes"`
}

// ResizeResult holds the dimension pairs of one downsizing operation.
// Target dimensions never exceed the originals.
type ResizeResult struct {
	OriginalWidth  int `json:"original_width"`
	OriginalHeight int `json:"original_height"`
	TargetWidth    int `json:"target_width"`
	TargetHeight   int `json:"target_height"`
}

// TargetDimensions renders "WxH" for the resized variant, the form attached
// to uploaded objects as resized_dimensions.
func (r ResizeResult) TargetDimensions() string {
	return fmt.Sprintf("%dx%d", r.TargetWidth, r.TargetHeight)
}

// Reduction is the derived outcome of one transformation: how much smaller
// the variant is, byte-wise and dimension-wise.
type Reduction struct {
	Percent    int    `json:"percent"`
	Dimensions string `json:"dimensions"`
}
