// Package surface provides the pixel buffer brushes paint into.
package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"LocalPaint/internal/state"
)

// Raster is a fixed-size RGBA canvas rendered with gg. Pixels outside the
// canvas are silently dropped.
type Raster struct {
	dc     *gg.Context
	width  int
	height int
	log    *zap.Logger
}

func NewRaster(width, height int) *Raster {
	return &Raster{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		log:    zap.L().Named("surface"),
	}
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

func (r *Raster) Bounds() state.Rect {
	return state.Rect{W: float64(r.width), H: float64(r.height)}
}

func (r *Raster) FillOval(b state.Rect, c color.NRGBA) {
	r.dc.SetColor(c)
	r.dc.DrawEllipse(b.X+b.W/2, b.Y+b.H/2, b.W/2, b.H/2)
	if err := r.dc.Fill(); err != nil {
		r.log.Debug("fill oval", zap.Any("bounds", b), zap.Error(err))
	}
}

func (r *Raster) FillRect(b state.Rect, c color.NRGBA) {
	if b.Empty() {
		return
	}
	r.dc.SetColor(c)
	r.dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	if err := r.dc.Fill(); err != nil {
		r.log.Debug("fill rect", zap.Any("bounds", b), zap.Error(err))
	}
}

func (r *Raster) StrokeOval(b state.Rect, c color.NRGBA, lineWidth float64) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(lineWidth)
	r.dc.DrawEllipse(b.X+b.W/2, b.Y+b.H/2, b.W/2, b.H/2)
	if err := r.dc.Stroke(); err != nil {
		r.log.Debug("stroke oval", zap.Any("bounds", b), zap.Error(err))
	}
}

// ClearRect makes every pixel touched by b fully transparent.
func (r *Raster) ClearRect(b state.Rect) {
	area := image.Rect(
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.X+b.W)), int(math.Ceil(b.Y+b.H)),
	).Intersect(image.Rect(0, 0, r.width, r.height))

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			r.dc.SetPixel(x, y, gg.Transparent)
		}
	}
}

// Clear makes the whole canvas transparent.
func (r *Raster) Clear() {
	r.dc.Clear()
}

// Image returns a copy of the current pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) Close() error {
	return r.dc.Close()
}
