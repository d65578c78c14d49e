package render

import (
	"fmt"
	"strings"
)

// Document is a structured drawing model for one label: an ordered list of
// primitives serialized to SVG only at the end, so layout and escaping stay
// testable independently of string formatting.
type Document struct {
	Width  int
	Height int
	prims  []primitive
}

type primitive interface {
	writeSVG(b *strings.Builder)
}

type rect struct {
	x, y, w, h float64
}

func (r rect) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#000"/>`, r.x, r.y, r.w, r.h)
}

type text struct {
	x, y  float64
	size  int
	value string
}

func (t text) writeSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<text x="%.2f" y="%.2f" font-size="%d" font-family="monospace" text-anchor="middle">%s</text>`,
		t.x, t.y, t.size, EscapeMarkup(t.value))
}

// AddRect appends a filled rectangle primitive.
func (d *Document) AddRect(x, y, w, h float64) {
	d.prims = append(d.prims, rect{x, y, w, h})
}

// AddText appends a centred text primitive. The value is stored raw and
// escaped at serialization time.
func (d *Document) AddText(x, y float64, size int, value string) {
	d.prims = append(d.prims, text{x, y, size, value})
}

// SVG serializes the document to a self-contained SVG fragment.
func (d *Document) SVG() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		d.Width, d.Height, d.Width, d.Height)
	for _, p := range d.prims {
		p.writeSVG(&b)
	}
	b.WriteString("</svg>")
	return b.String()
}

// EscapeMarkup escapes the five reserved markup characters. The ampersand is
// replaced first so already-produced entities are never double-escaped.
func EscapeMarkup(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
