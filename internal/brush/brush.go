// Package brush implements the drawing brushes and the line interpolator
// that turns sparse pointer samples into a continuous stroke.
//
// A gesture drives a Brush through Begin, any number of Continue calls and
// End. Trail brushes (Round, Square, Graphite) stamp a mark at every point;
// shape brushes (Circle, Rectangle) repaint one shape spanning the gesture
// start and the latest point.
package brush

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"LocalPaint/internal/state"
)

var (
	ErrUnknownKind = errors.New("unknown brush kind")
	ErrInvalidSize = errors.New("brush size must be positive")
)

// Brush holds the settings shared by every variant, the strokes drawn with
// it and the per-variant gesture state.
type Brush struct {
	kind    Kind
	size    float64
	color   color.NRGBA
	strokes []*state.Stroke
	current *state.Stroke

	// shape brushes
	origin state.Point
	end    state.Point
	radius float64

	rnd *rand.Rand
}

// Option configures a Brush at construction.
type Option func(*Brush)

// WithRand sets the random source used by the Graphite brush.
func WithRand(r *rand.Rand) Option {
	return func(b *Brush) {
		b.rnd = r
	}
}

// New builds a brush of the given kind.
func New(kind Kind, size float64, c color.NRGBA, opts ...Option) (*Brush, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	b := &Brush{
		kind:  kind,
		size:  size,
		color: c,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rnd == nil {
		b.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return b, nil
}

func (b *Brush) Kind() Kind { return b.kind }

func (b *Brush) Size() float64 { return b.size }

func (b *Brush) Color() color.NRGBA { return b.color }

// SetSize changes the size used for future marks. Non-positive sizes are
// ignored.
func (b *Brush) SetSize(size float64) {
	if size > 0 {
		b.size = size
	}
}

func (b *Brush) SetColor(c color.NRGBA) {
	b.color = c
}

// Strokes returns the strokes drawn with b, oldest first. The stroke of a
// gesture still in progress is included.
func (b *Brush) Strokes() []state.Stroke {
	out := make([]state.Stroke, 0, len(b.strokes))
	for _, s := range b.strokes {
		out = append(out, *s)
	}
	return out
}

// Drawing reports whether a gesture is in progress.
func (b *Brush) Drawing() bool {
	return b.current != nil
}

// Begin starts a gesture at p.
func (b *Brush) Begin(s Surface, p state.Point) {
	b.current = state.NewStroke()
	b.strokes = append(b.strokes, b.current)
	b.current.Add(p)
	variants[b.kind].begin(b, s, p)
}

// Continue extends the gesture to p. Calls outside a gesture are ignored.
func (b *Brush) Continue(s Surface, p state.Point) {
	if b.current == nil {
		return
	}
	b.current.Add(p)
	variants[b.kind].cont(b, s, p)
}

// End finishes the gesture.
func (b *Brush) End(s Surface) {
	if b.current == nil {
		return
	}
	if end := variants[b.kind].end; end != nil {
		end(b, s)
	}
	b.current = nil
}

type variant struct {
	begin func(b *Brush, s Surface, p state.Point)
	cont  func(b *Brush, s Surface, p state.Point)
	end   func(b *Brush, s Surface)
}

var variants = map[Kind]variant{
	Round:     {begin: stampRound, cont: stampRound},
	Square:    {begin: stampSquare, cont: stampSquare},
	Graphite:  {begin: stampGraphite, cont: stampGraphite},
	Circle:    {begin: beginCircle, cont: continueCircle, end: endCircle},
	Rectangle: {begin: beginRectangle, cont: continueRectangle, end: endRectangle},
}
