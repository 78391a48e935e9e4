package brush

import "LocalPaint/internal/state"

func beginCircle(b *Brush, s Surface, p state.Point) {
	b.origin = p
	b.radius = 0
	strokeCircle(b, s)
}

func continueCircle(b *Brush, s Surface, p state.Point) {
	b.radius = b.origin.DistanceTo(p)
	strokeCircle(b, s)
}

func endCircle(b *Brush, s Surface) {
	strokeCircle(b, s)
}

func strokeCircle(b *Brush, s Surface) {
	r := b.radius
	bounds := state.Rect{X: b.origin.X - r, Y: b.origin.Y - r, W: 2 * r, H: 2 * r}
	s.StrokeOval(bounds, b.color, b.size)
}

// The rectangle paints nothing until the pointer first moves.
func beginRectangle(b *Brush, _ Surface, p state.Point) {
	b.origin = p
	b.end = p
}

func continueRectangle(b *Brush, s Surface, p state.Point) {
	b.end = p
	s.FillRect(state.RectFromCorners(b.origin, b.end), b.color)
}

func endRectangle(b *Brush, s Surface) {
	s.FillRect(state.RectFromCorners(b.origin, b.end), b.color)
}
