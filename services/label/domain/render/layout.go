// Package render lays out single labels as SVG fragments and assembles
// batches into one printable HTML document.
package render

import (
	"fmt"

	labeldomain "github.com/ghuser/labelpress/services/label/domain"
)

// LabelSize selects one of the two supported physical presets.
type LabelSize string

const (
	Size38x25 LabelSize = "38x25"
	Size50x30 LabelSize = "50x30"
)

// pixels per millimetre at the implied print density.
const pxPerMM = 8

// A4 printable width in millimetres, used to compute labels per row.
const pageWidthMM = 210

// layout carries the fixed physical and rendering constants for one preset.
type layout struct {
	WidthMM, HeightMM int
	WidthPx, HeightPx int
	Padding           int // px, all four sides
	BarcodeHeight     int // px
	BarcodeFontSize   int // px, digits under the bars
	TextFontSize      int // px, name and price lines
	MaxNameChars      int
}

var layouts = map[LabelSize]layout{
	Size38x25: {
		WidthMM: 38, HeightMM: 25,
		WidthPx: 38 * pxPerMM, HeightPx: 25 * pxPerMM,
		Padding:         8,
		BarcodeHeight:   96,
		BarcodeFontSize: 16,
		TextFontSize:    18,
		MaxNameChars:    22,
	},
	Size50x30: {
		WidthMM: 50, HeightMM: 30,
		WidthPx: 50 * pxPerMM, HeightPx: 30 * pxPerMM,
		Padding:         10,
		BarcodeHeight:   120,
		BarcodeFontSize: 18,
		TextFontSize:    22,
		MaxNameChars:    30,
	},
}

// layoutFor resolves a preset or fails with ErrUnknownLabelSize.
func layoutFor(size LabelSize) (layout, error) {
	l, ok := layouts[size]
	if !ok {
		return layout{}, fmt.Errorf("%w: %q", labeldomain.ErrUnknownLabelSize, size)
	}
	return l, nil
}

// truncateName shortens name to max characters, replacing the last two kept
// characters with the ".." marker when truncation is necessary. Counted in
// runes, not bytes: names are routinely multibyte and a byte slice could cut
// a rune in half.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-2]) + ".."
}
