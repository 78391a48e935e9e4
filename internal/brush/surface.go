package brush

import (
	"image/color"

	"LocalPaint/internal/state"
)

// Surface receives the rendering commands issued by brushes and the eraser.
// Implementations own the pixels; none of these calls can fail.
type Surface interface {
	FillOval(bounds state.Rect, c color.NRGBA)
	FillRect(bounds state.Rect, c color.NRGBA)
	StrokeOval(bounds state.Rect, c color.NRGBA, lineWidth float64)
	ClearRect(bounds state.Rect)
}
