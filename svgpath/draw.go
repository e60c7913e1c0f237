package svgpath

import (
	"golang.org/x/image/math/fixed"
)

// Given a compiled path, implements how to replay it
// into a painting driver, such as a rasterizer to output
// .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG knowledge.
// In particular, the output transform is already applied to the
// points before sending them to the Drawer.
type Drawer interface {
	// Start starts a new contour at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the contour
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the contour
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop closes the contour to the start point if `closeLoop` is true
	Stop(closeLoop bool)
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// starts a new contour at the given point.
func (op MoveTo) drawTo(d Drawer) {
	d.Stop(false) // implicit stop if currently in a contour
	d.Start(toFixedP(op.X, op.Y))
}

// draw a line
func (op LineTo) drawTo(d Drawer) {
	d.Line(toFixedP(op.X, op.Y))
}

// draw a quadratic bezier curve
func (op QuadTo) drawTo(d Drawer) {
	d.QuadBezier(toFixedP(op[0].X, op[0].Y), toFixedP(op[1].X, op[1].Y))
}

// draw a cubic bezier curve
func (op CubicTo) drawTo(d Drawer) {
	d.CubeBezier(toFixedP(op[0].X, op[0].Y), toFixedP(op[1].X, op[1].Y),
		toFixedP(op[2].X, op[2].Y))
}

func (op Close) drawTo(d Drawer) {
	d.Stop(true)
}

// Draw replays the compiled path into the drawer `d`.
func (p Path) Draw(d Drawer) {
	for _, op := range p {
		op.drawTo(d)
	}
	d.Stop(false)
}
