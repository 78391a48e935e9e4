package brush

import (
	"math"

	"LocalPaint/internal/state"
)

// Marks are anchored at their min corner on p, not centered.

func stampRound(b *Brush, s Surface, p state.Point) {
	s.FillOval(state.Square(p, b.size), b.color)
}

func stampSquare(b *Brush, s Surface, p state.Point) {
	s.FillRect(state.Square(p, b.size), b.color)
}

// graphiteDots is the number of dots scattered per stamp: a quarter of the
// disk area.
func graphiteDots(size float64) int {
	r := size / 2
	return int(math.Floor(math.Pi * r * r / 4))
}

// stampGraphite scatters 1×1 dots around p. Offsets fall in [-r, size-r)
// on both axes.
func stampGraphite(b *Brush, s Surface, p state.Point) {
	r := b.size / 2
	n := graphiteDots(b.size)
	for i := 0; i < n; i++ {
		dx := b.rnd.Float64()*b.size - r
		dy := b.rnd.Float64()*b.size - r
		s.FillOval(state.Square(p.Add(dx, dy), 1), b.color)
	}
}
