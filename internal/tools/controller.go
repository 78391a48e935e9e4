package tools

import (
	"image/color"

	"go.uber.org/zap"

	"LocalPaint/internal/brush"
	"LocalPaint/internal/state"
)

// Controller owns the active brush and tool mode for one canvas and turns
// press/drag/release events into rendering commands.
type Controller struct {
	canvas   Canvas
	settings Settings
	tool     Tool
	brush    *brush.Brush
	opts     []brush.Option

	last    state.Point
	pressed bool
}

// NewController builds a controller with a brush made from s. An invalid
// size or kind in s is replaced by the default.
func NewController(c Canvas, s Settings, opts ...brush.Option) *Controller {
	def := DefaultSettings()
	if s.Size <= 0 {
		s.Size = def.Size
	}
	b, err := brush.New(s.Kind, s.Size, s.Color, opts...)
	if err != nil {
		zap.L().Named("tools").Warn("falling back to default brush",
			zap.Stringer("kind", s.Kind), zap.Error(err))
		s.Kind = def.Kind
		b, _ = brush.New(s.Kind, s.Size, s.Color, opts...)
	}
	return &Controller{
		canvas:   c,
		settings: s,
		tool:     ToolBrush,
		brush:    b,
		opts:     opts,
	}
}

func (c *Controller) Tool() Tool { return c.tool }

func (c *Controller) Brush() *brush.Brush { return c.brush }

func (c *Controller) Settings() Settings { return c.settings }

// SelectBrush replaces the active brush with a new one of the given kind.
// The tool mode is left alone. If the brush cannot be built the failure is
// logged and the active brush kept.
func (c *Controller) SelectBrush(kind brush.Kind) {
	b, err := brush.New(kind, c.settings.Size, c.settings.Color, c.opts...)
	if err != nil {
		zap.L().Named("tools").Error("brush selection failed",
			zap.Stringer("kind", kind), zap.Error(err))
		return
	}
	c.brush = b
	c.settings.Kind = kind
}

func (c *Controller) SelectEraser() {
	c.tool = ToolEraser
}

// SelectPen returns to brush mode.
func (c *Controller) SelectPen() {
	c.tool = ToolBrush
}

// SetSize updates the size for future marks and erasing. Non-positive
// values are ignored.
func (c *Controller) SetSize(size float64) {
	if size <= 0 {
		return
	}
	c.settings.Size = size
	c.brush.SetSize(size)
}

func (c *Controller) SetColor(col color.Color) {
	nc := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.settings.Color = nc
	c.brush.SetColor(nc)
}

// Press starts a gesture at (x, y).
func (c *Controller) Press(x, y float64) {
	p := state.Pt(x, y)
	c.last = p
	c.pressed = true

	switch c.tool {
	case ToolEraser:
		c.erase(p)
	default:
		c.brush.Begin(c.canvas, p)
	}
}

// Drag moves the gesture to (x, y). In brush mode the gap from the previous
// position is filled with interpolated points; erasing is not interpolated.
func (c *Controller) Drag(x, y float64) {
	if !c.pressed {
		return
	}
	p := state.Pt(x, y)

	switch c.tool {
	case ToolEraser:
		c.erase(p)
	default:
		for _, ip := range brush.Interpolate(c.last, p) {
			c.brush.Continue(c.canvas, ip)
		}
	}
	c.last = p
}

// Release ends the gesture. Finishing an erase gesture puts the controller
// back into brush mode.
func (c *Controller) Release() {
	if !c.pressed {
		return
	}
	c.pressed = false

	switch c.tool {
	case ToolEraser:
		c.tool = ToolBrush
	default:
		c.brush.End(c.canvas)
	}
}

// Clear wipes the whole canvas. Recorded strokes are kept.
func (c *Controller) Clear() {
	c.canvas.ClearRect(c.canvas.Bounds())
}

func (c *Controller) erase(p state.Point) {
	c.canvas.ClearRect(state.Square(p, c.settings.Size))
}
