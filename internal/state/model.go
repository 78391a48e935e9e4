package state

import (
	"math"
	"time"
)

// Point is a position on the canvas, origin top-left.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// AngleTo returns the angle of the vector from p to o in radians.
func (p Point) AngleTo(o Point) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X)
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned area of the canvas described by its min corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// RectFromCorners normalizes two opposite corners into a Rect with a
// min-corner origin and non-negative extent.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

// Square returns the side×side rect whose min corner is p.
func Square(p Point, side float64) Rect {
	return Rect{X: p.X, Y: p.Y, W: side, H: side}
}

// Contains reports whether p lies in [X, X+W) × [Y, Y+H).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Stroke is the recorded path of one gesture. Points are only ever appended.
type Stroke struct {
	ID      string
	Seq     uint64
	Started time.Time
	Points  []Point
}

func (s *Stroke) Add(p Point) {
	s.Points = append(s.Points, p)
}

func (s *Stroke) Len() int {
	return len(s.Points)
}

// Last returns the most recent point, or false for an empty stroke.
func (s *Stroke) Last() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}
