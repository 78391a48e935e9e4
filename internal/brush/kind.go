package brush

import "fmt"

// Kind selects one of the fixed brush variants.
type Kind int

const (
	Round Kind = iota
	Square
	Graphite
	Circle
	Rectangle
)

var kindNames = [...]string{
	Round:     "Round Brush",
	Square:    "Square Brush",
	Graphite:  "Graphite Brush",
	Circle:    "Circle Brush",
	Rectangle: "Rectangle Brush",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= Round && k <= Rectangle
}

// IsShape reports whether k draws one live-preview shape from the gesture
// start to the current point instead of stamping a trail.
func (k Kind) IsShape() bool {
	return k == Circle || k == Rectangle
}

// Kinds lists every brush kind in menu order.
func Kinds() []Kind {
	return []Kind{Round, Square, Graphite, Circle, Rectangle}
}

// ParseKind maps a display name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
