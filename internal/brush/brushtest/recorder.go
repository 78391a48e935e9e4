// Package brushtest provides a Surface that records rendering commands
// instead of drawing them.
package brushtest

import (
	"image/color"

	"LocalPaint/internal/state"
)

type Op int

const (
	FillOval Op = iota
	FillRect
	StrokeOval
	ClearRect
)

func (o Op) String() string {
	switch o {
	case FillOval:
		return "FillOval"
	case FillRect:
		return "FillRect"
	case StrokeOval:
		return "StrokeOval"
	case ClearRect:
		return "ClearRect"
	}
	return "Op(?)"
}

// Command is one recorded surface call.
type Command struct {
	Op        Op
	Bounds    state.Rect
	Color     color.NRGBA
	LineWidth float64
}

// Recorder logs every call in order. The zero value has empty bounds.
type Recorder struct {
	Commands []Command
	Area     state.Rect
}

// NewRecorder returns a recorder reporting a w×h canvas.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Area: state.Rect{W: w, H: h}}
}

func (r *Recorder) FillOval(bounds state.Rect, c color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: FillOval, Bounds: bounds, Color: c})
}

func (r *Recorder) FillRect(bounds state.Rect, c color.NRGBA) {
	r.Commands = append(r.Commands, Command{Op: FillRect, Bounds: bounds, Color: c})
}

func (r *Recorder) StrokeOval(bounds state.Rect, c color.NRGBA, lineWidth float64) {
	r.Commands = append(r.Commands, Command{Op: StrokeOval, Bounds: bounds, Color: c, LineWidth: lineWidth})
}

func (r *Recorder) ClearRect(bounds state.Rect) {
	r.Commands = append(r.Commands, Command{Op: ClearRect, Bounds: bounds})
}

func (r *Recorder) Bounds() state.Rect {
	return r.Area
}

// Filter returns the recorded commands with the given op.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Commands = nil
}
