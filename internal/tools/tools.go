// Package tools routes pointer gestures to the active brush or the eraser.
package tools

import (
	"image/color"

	"LocalPaint/internal/brush"
	"LocalPaint/internal/state"
)

// Tool is the process-wide pointer mode.
type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	if t == ToolEraser {
		return "Eraser"
	}
	return "Brush"
}

// Slider range for the brush size.
const (
	MinSize = 1.0
	MaxSize = 50.0
)

// Settings are the user-selected drawing parameters. New brushes are built
// from them.
type Settings struct {
	Size  float64
	Color color.NRGBA
	Kind  brush.Kind
}

func DefaultSettings() Settings {
	return Settings{
		Size:  10,
		Color: color.NRGBA{A: 255},
		Kind:  brush.Round,
	}
}

// Canvas is the surface the controller draws into.
type Canvas interface {
	brush.Surface
	Bounds() state.Rect
}
