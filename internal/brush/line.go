package brush

import (
	"math"

	"LocalPaint/internal/state"
)

// Interpolate returns the points between p0 and p1 spaced one unit apart,
// excluding p0. It yields floor(d) points for a distance d, so nothing is
// produced when the points are less than one unit apart.
func Interpolate(p0, p1 state.Point) []state.Point {
	d := p0.DistanceTo(p1)
	if d == 0 {
		return nil
	}
	n := int(math.Floor(d))
	if n == 0 {
		return nil
	}

	stepX := (p1.X - p0.X) / d
	stepY := (p1.Y - p0.Y) / d
	pts := make([]state.Point, 0, n)
	for i := 1; i <= n; i++ {
		pts = append(pts, p0.Add(float64(i)*stepX, float64(i)*stepY))
	}
	return pts
}
