package render

import (
	"strings"

	"github.com/ghuser/labelpress/services/label/domain/barcode"
)

// LabelRequest is the unit a single render consumes. Price is a whole-unit
// non-negative amount per the market convention.
type LabelRequest struct {
	Barcode     string
	ProductName string
	Price       int64
	Size        LabelSize
}

// Renderer draws labels. Stateless apart from its currency configuration.
type Renderer struct {
	currency CurrencyFormatter
}

// NewRenderer returns a Renderer using the given currency convention.
func NewRenderer(currency CurrencyFormatter) *Renderer {
	return &Renderer{currency: currency}
}

// RenderLabel lays out one label and returns it as an SVG fragment:
// the Code128 bar pattern drawn as proportioned rectangles across the
// available width, the raw barcode text beneath the bars, then the
// (possibly truncated) product name and the formatted price.
// It never fails on a well-formed request; the only error is an unknown size.
func (r *Renderer) RenderLabel(req LabelRequest) (string, error) {
	doc, err := r.buildDocument(req)
	if err != nil {
		return "", err
	}
	return doc.SVG(), nil
}

// buildDocument assembles the primitive model for one label.
func (r *Renderer) buildDocument(req LabelRequest) (*Document, error) {
	l, err := layoutFor(req.Size)
	if err != nil {
		return nil, err
	}

	doc := &Document{Width: l.WidthPx, Height: l.HeightPx}
	innerWidth := float64(l.WidthPx - 2*l.Padding)
	centerX := float64(l.WidthPx) / 2

	pattern := barcode.EncodeCode128(req.Barcode)
	if pattern != "" {
		module := innerWidth / float64(len(pattern))
		y := float64(l.Padding)
		// Adjacent bar modules merge into one rectangle per run.
		runStart := -1
		for i := 0; i <= len(pattern); i++ {
			bar := i < len(pattern) && pattern[i] == '1'
			switch {
			case bar && runStart < 0:
				runStart = i
			case !bar && runStart >= 0:
				x := float64(l.Padding) + float64(runStart)*module
				doc.AddRect(x, y, float64(i-runStart)*module, float64(l.BarcodeHeight))
				runStart = -1
			}
		}
	}

	textTop := float64(l.Padding + l.BarcodeHeight)
	doc.AddText(centerX, textTop+float64(l.BarcodeFontSize), l.BarcodeFontSize, req.Barcode)
	doc.AddText(centerX, textTop+float64(l.BarcodeFontSize+l.TextFontSize+4), l.TextFontSize,
		truncateName(req.ProductName, l.MaxNameChars))
	doc.AddText(centerX, textTop+float64(l.BarcodeFontSize+2*l.TextFontSize+8), l.TextFontSize,
		r.currency.Format(req.Price))

	return doc, nil
}

// ValidateLabelContent is the round-trip oracle for RenderLabel: it reports
// whether fragment contains the escaped barcode, the escaped
// truncation-applied product name, and the escaped formatted price.
func (r *Renderer) ValidateLabelContent(fragment string, req LabelRequest) bool {
	l, err := layoutFor(req.Size)
	if err != nil {
		return false
	}
	return strings.Contains(fragment, EscapeMarkup(req.Barcode)) &&
		strings.Contains(fragment, EscapeMarkup(truncateName(req.ProductName, l.MaxNameChars))) &&
		strings.Contains(fragment, EscapeMarkup(r.currency.Format(req.Price)))
}
