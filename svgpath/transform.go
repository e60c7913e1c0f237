package svgpath

// Transform maps model space coordinates to output space:
// a scale, an optional Y axis flip, then an offset.
// It is applied to every emitted coordinate, and never to the
// internal state used for relative resolution and shorthand
// reflection, which stays in model space.
type Transform struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
	FlipY            bool
}

// Identity leaves coordinates unchanged.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// Apply maps a point from model space to output space.
func (t Transform) Apply(x, y float64) (float64, float64) {
	if t.FlipY {
		y = -y
	}
	return t.OffsetX + t.ScaleX*x, t.OffsetY + t.ScaleY*y
}

func (t Transform) point(x, y float64) Point {
	x, y = t.Apply(x, y)
	return Point{X: x, Y: y}
}
