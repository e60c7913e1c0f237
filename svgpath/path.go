// Compiles SVG path data strings into an abstract
// sequence of drawing operations, which can then be
// consumed by painting drivers (rasterizers, pdf writers,
// glyph builders).
// Arc commands are out of scope and rejected: inputs are
// expected to have arcs flattened to bezier curves beforehand.
package svgpath

import (
	"fmt"
	"strings"
)

// This file defines the basic path structure

// Point is a pair of coordinates in output space.
type Point struct {
	X, Y float64
}

// Operation is one of the basic commands a path is made of
type Operation interface {
	// add itself on the drawer `d`
	drawTo(d Drawer)
}

type MoveTo Point

type LineTo Point

type QuadTo [2]Point // control point, endpoint

type CubicTo [3]Point // two control points, endpoint

type Close struct{}

// Path describes a sequence of basic drawing operations, which should not be nil.
// A Move starts a new contour, Line/Quad/Cubic extend the current contour,
// and Close connects back to the point of the last Move.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f",
				op[0].X, op[0].Y, op[1].X, op[1].Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f",
				op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new contour at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current contour.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current contour.
func (p *Path) QuadBezier(b, c Point) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current contour.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the contour
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
