package svgpath

import (
	"errors"
	"fmt"
)

// Parsing errors. Parse returns either a complete path or one of
// these, wrapped with position information: there is no partial
// result.
var (
	// ErrBadNumber means a numeric argument was expected and none
	// could be scanned.
	ErrBadNumber = errors.New("invalid number in path data")

	// ErrArcUnsupported is returned for the A/a commands, which are
	// deliberately not implemented: flatten arcs to bezier curves
	// before compiling the path.
	ErrArcUnsupported = errors.New("arc commands are not supported")

	// ErrUnknownCommand is returned for command letters outside the
	// supported set M/L/H/V/C/S/Q/T/Z.
	ErrUnknownCommand = errors.New("unknown path data command")
)

// pathCursor is used while parsing path data strings.
// Each Parse call gets its own fresh instance.
type pathCursor struct {
	scan scanner
	path Path
	tr   Transform

	placeX, placeY         float64 // current point, model space
	pathStartX, pathStartY float64 // subpath start, restored on close
	cntlPtX, cntlPtY       float64 // control point of the last curve command,
	// anchoring the reflection of shorthand commands
	lastCmd byte // previous command letter, 0 before the first
}

// Parse compiles an SVG path data string into a sequence of drawing
// operations restricted to moves, lines, quadratic and cubic curves,
// applying tr to every emitted coordinate.
// Arc commands are rejected with ErrArcUnsupported; on any error the
// whole parse is aborted and no partial path is returned.
func Parse(data string, tr Transform) (Path, error) {
	c := pathCursor{scan: scanner{data: data}, tr: tr}
	for {
		cmd, implicit, ok := c.scan.readCommand(c.lastCmd)
		if !ok {
			return c.path, nil
		}
		if cmd == 0 {
			// numbers before the first command letter
			return nil, fmt.Errorf("expected command letter at position %d: %w",
				c.scan.pos, ErrUnknownCommand)
		}
		if err := c.step(cmd, implicit); err != nil {
			return nil, err
		}
		c.lastCmd = cmd
	}
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// step consumes one argument group of the command `cmd` and appends
// the resulting operation. Upper case means absolute coordinates,
// lower case relative to the current point. implicit is set when the
// letter was repeated rather than read from the input, which turns
// the extra pairs of an M run into line-to commands.
func (c *pathCursor) step(cmd byte, implicit bool) error {
	rel := 'a' <= cmd && cmd <= 'z'
	switch lower(cmd) {
	case 'm':
		x, y, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		if implicit {
			// bare pairs after the first M pair are lines
			c.line(x, y)
			break
		}
		c.placeX, c.placeY = x, y
		c.pathStartX, c.pathStartY = x, y
		c.path.Start(c.tr.point(x, y))
	case 'l':
		x, y, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		c.line(x, y)
	case 'h':
		x, err := c.scan.readNumber()
		if err != nil {
			return err
		}
		if rel {
			x += c.placeX
		}
		c.line(x, c.placeY)
	case 'v':
		y, err := c.scan.readNumber()
		if err != nil {
			return err
		}
		if rel {
			y += c.placeY
		}
		c.line(c.placeX, y)
	case 'c':
		x1, y1, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		x2, y2, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		x, y, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		c.cubic(x1, y1, x2, y2, x, y)
	case 's':
		x1, y1 := c.reflect('c', 's')
		x2, y2, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		x, y, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		c.cubic(x1, y1, x2, y2, x, y)
	case 'q':
		qx, qy, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		x, y, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		c.quad(qx, qy, x, y)
	case 't':
		qx, qy := c.reflect('q', 't')
		x, y, err := c.readPoint(rel)
		if err != nil {
			return err
		}
		c.quad(qx, qy, x, y)
	case 'z':
		if implicit {
			// Z takes no arguments, so a bare number here has no
			// command to bind to
			return fmt.Errorf("unexpected number after close at position %d: %w",
				c.scan.pos, ErrUnknownCommand)
		}
		c.path.Stop(true)
		c.placeX, c.placeY = c.pathStartX, c.pathStartY
	case 'a':
		return fmt.Errorf("%q at position %d, flatten arcs to bezier curves first: %w",
			cmd, c.scan.pos, ErrArcUnsupported)
	default:
		return fmt.Errorf("%q at position %d: %w", cmd, c.scan.pos, ErrUnknownCommand)
	}
	return nil
}

// readPoint scans a coordinate pair, resolved to absolute model space.
func (c *pathCursor) readPoint(rel bool) (x, y float64, err error) {
	x, err = c.scan.readNumber()
	if err != nil {
		return
	}
	y, err = c.scan.readNumber()
	if err != nil {
		return
	}
	if rel {
		x += c.placeX
		y += c.placeY
	}
	return
}

func (c *pathCursor) line(x, y float64) {
	c.path.Line(c.tr.point(x, y))
	c.placeX, c.placeY = x, y
}

func (c *pathCursor) cubic(x1, y1, x2, y2, x, y float64) {
	c.path.CubeBezier(c.tr.point(x1, y1), c.tr.point(x2, y2), c.tr.point(x, y))
	c.cntlPtX, c.cntlPtY = x2, y2
	c.placeX, c.placeY = x, y
}

func (c *pathCursor) quad(qx, qy, x, y float64) {
	c.path.QuadBezier(c.tr.point(qx, qy), c.tr.point(x, y))
	c.cntlPtX, c.cntlPtY = qx, qy
	c.placeX, c.placeY = x, y
}

// reflect returns the implied control point of a shorthand command:
// the last control point mirrored through the current point when the
// previous command belongs to the same curve family (k1 or k2), the
// current point itself otherwise. The mirror is computed in model
// space, before the output transform.
func (c *pathCursor) reflect(k1, k2 byte) (float64, float64) {
	if k := lower(c.lastCmd); k == k1 || k == k2 {
		return 2*c.placeX - c.cntlPtX, 2*c.placeY - c.cntlPtY
	}
	return c.placeX, c.placeY
}
