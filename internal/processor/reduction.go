package processor

import (
	"errors"
	"fmt"
	"math"

	"github.com/trunov/resizehub/internal/entities"
)

// ErrZeroByteSource marks a zero-byte original: malformed input, not a valid
// image. Terminal for the record being processed.
var ErrZeroByteSource = errors.New("original byte size is zero")

// Reduce computes the derived metrics of one transformation: the byte-size
// reduction percentage, rounded to the nearest whole percent, and the
// dimension-change string. The percentage goes negative when the re-encoded
// variant ends up larger than the original.
func Reduce(original, resized entities.ImageMetadata) (entities.Reduction, error) {
	if original.SizeBytes == 0 {
		return entities.Reduction{}, ErrZeroByteSource
	}

	ratio := float64(resized.SizeBytes) / float64(original.SizeBytes)
	return entities.Reduction{
		Percent: int(math.Round((1 - ratio) * 100)),
		Dimensions: fmt.Sprintf("%dx%d → %dx%d",
			original.Width, original.Height, resized.Width, resized.Height),
	}, nil
}
