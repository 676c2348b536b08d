// Package layout computes the cell geometry of a review item from its
// content and the available width.
package layout

// Size is a width and height in terminal cells.
type Size struct {
	W int
	H int
}

// Rect is a cell rectangle with its origin at the top-left corner.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// At returns a rectangle of size s at (x, y).
func At(x, y int, s Size) Rect {
	return Rect{X: x, Y: y, W: s.W, H: s.H}
}

// MaxX is the first column to the right of r.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY is the first row below r.
func (r Rect) MaxY() int { return r.Y + r.H }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool { return r == Rect{} }

// Insets are distances from the edges of an item to its content.
type Insets struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}
