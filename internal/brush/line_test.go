package brush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/state"
)

func TestInterpolateHorizontal(t *testing.T) {
	pts := Interpolate(state.Pt(0, 0), state.Pt(10, 0))

	require.Len(t, pts, 10)
	for i, p := range pts {
		assert.Equal(t, float64(i+1), p.X)
		assert.Equal(t, 0.0, p.Y)
	}
}

func TestInterpolateSamePoint(t *testing.T) {
	assert.Empty(t, Interpolate(state.Pt(3, 7), state.Pt(3, 7)))
}

func TestInterpolateBelowOneUnit(t *testing.T) {
	assert.Empty(t, Interpolate(state.Pt(0, 0), state.Pt(0.6, 0.6)))
}

func TestInterpolateDiagonal(t *testing.T) {
	p0, p1 := state.Pt(1, 1), state.Pt(7, 9) // length 10
	pts := Interpolate(p0, p1)

	require.Len(t, pts, 10)
	prev := p0
	for _, p := range pts {
		assert.InDelta(t, 1.0, prev.DistanceTo(p), 1e-9)
		prev = p
	}
	assert.InDelta(t, p1.X, pts[9].X, 1e-9)
	assert.InDelta(t, p1.Y, pts[9].Y, 1e-9)
}

func TestInterpolateFractionalDistance(t *testing.T) {
	pts := Interpolate(state.Pt(0, 0), state.Pt(0, -4.7))

	require.Len(t, pts, 4)
	last := pts[len(pts)-1]
	assert.Equal(t, 0.0, last.X)
	assert.InDelta(t, -4.0, last.Y, 1e-9)
}
