// Extracts path data from SVG documents and compiles it
// with the svgpath package.
// Only the structure needed to pull outlines out of a file is
// handled: styling, gradients and derived shapes are not
// interpreted, and elements outside the supported subset are
// skipped, logged or rejected depending on the error mode.
package svgextract

import (
	"encoding/xml"
	"errors"
	"io"
	"log"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/pathdata/svgpath"
)

// ErrorMode defines how unsupported elements are handled
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota // unsupported elements are skipped
	WarnErrorMode                    // unsupported elements are logged
	StrictErrorMode                  // unsupported elements abort the parse
)

var errParamMismatch = errors.New("param mismatch")

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// PathElement is one <path> element of the document.
type PathElement struct {
	ID   string
	Data string // raw content of the "d" attribute
	Path svgpath.Path
}

// Document holds the paths extracted from an SVG file.
type Document struct {
	ViewBox Bounds
	Paths   []PathElement
}

// container elements carry no geometry of their own
var containerElements = map[string]bool{
	"svg":   true,
	"g":     true,
	"defs":  true,
	"title": true,
	"desc":  true,
}

// docCursor is used while reading SVG files
type docCursor struct {
	doc       *Document
	tr        svgpath.Transform
	errorMode ErrorMode
}

func (c *docCursor) handleError(errStr string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(errStr)
	case WarnErrorMode:
		log.Println(errStr)
	}
	return nil
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	switch name := se.Name.Local; {
	case name == "path":
		return c.readPathElement(se.Attr)
	case name == "svg":
		return c.readViewBox(se.Attr)
	case !containerElements[name]:
		return c.handleError("cannot process svg element " + name)
	}
	return nil
}

func (c *docCursor) readPathElement(attrs []xml.Attr) error {
	var elem PathElement
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "id":
			elem.ID = attr.Value
		case "d":
			elem.Data = attr.Value
		}
	}
	path, err := svgpath.Parse(elem.Data, c.tr)
	if err != nil {
		return err
	}
	elem.Path = path
	c.doc.Paths = append(c.doc.Paths, elem)
	return nil
}

func (c *docCursor) readViewBox(attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "viewBox" {
			continue
		}
		pts, err := svgpath.Numbers(attr.Value)
		if err != nil {
			return err
		}
		if len(pts) != 4 {
			return errParamMismatch
		}
		c.doc.ViewBox = Bounds{X: pts[0], Y: pts[1], W: pts[2], H: pts[3]}
	}
	return nil
}

// ReadStream extracts and compiles the path elements of the SVG
// document read from `stream`, applying `tr` to every emitted
// coordinate. errMode determines if the reader ignores, errors out,
// or logs a warning when it does not handle an element found in the
// document; path data errors always abort.
func ReadStream(stream io.Reader, tr svgpath.Transform, errMode ErrorMode) (*Document, error) {
	doc := &Document{}
	cursor := &docCursor{doc: doc, tr: tr, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return nil, err
		}
		if se, ok := t.(xml.StartElement); ok {
			seenTag = true
			if err := cursor.readStartElement(se); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

// ReadFile extracts and compiles the path elements of the named SVG file.
// See ReadStream for the semantics of `tr` and `errMode`.
func ReadFile(svgFile string, tr svgpath.Transform, errMode ErrorMode) (*Document, error) {
	fin, err := os.Open(svgFile)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadStream(fin, tr, errMode)
}
