package render

import (
	"fmt"
	"strings"

	labeldomain "github.com/ghuser/labelpress/services/label/domain"
)

// BatchItem is a label request plus a repeat count.
type BatchItem struct {
	ProductID   string
	Barcode     string
	ProductName string
	Price       int64
	Quantity    int
}

// AssembleBatch expands every item into Quantity repeated label renders,
// preserving item order with no deduplication, and wraps the sequence into
// one self-contained HTML document sized for an A4 page. Labels per row is
// computed from page width and label width; each label avoids page breaks,
// and borders are visible on screen but suppressed when printing.
func (r *Renderer) AssembleBatch(items []BatchItem, size LabelSize) (string, error) {
	if len(items) == 0 {
		return "", labeldomain.ErrEmptyBatch
	}
	l, err := layoutFor(size)
	if err != nil {
		return "", err
	}

	perRow := pageWidthMM / l.WidthMM
	if perRow < 1 {
		perRow = 1
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Labels</title>\n<style>\n")
	fmt.Fprintf(&b, `body { margin: 0; font-family: sans-serif; }
.sheet { display: flex; flex-wrap: wrap; width: %dmm; }
.label {
  width: %dmm;
  height: %dmm;
  box-sizing: border-box;
  border: 1px dashed #999;
  page-break-inside: avoid;
}
.label svg { width: 100%%; height: 100%%; }
@media print {
  .label { border: none; }
}
`, perRow*l.WidthMM, l.WidthMM, l.HeightMM)
	b.WriteString("</style>\n</head>\n<body>\n<div class=\"sheet\">\n")

	for _, item := range items {
		req := LabelRequest{
			Barcode:     item.Barcode,
			ProductName: item.ProductName,
			Price:       item.Price,
			Size:        size,
		}
		svg, err := r.RenderLabel(req)
		if err != nil {
			return "", err
		}
		for n := 0; n < item.Quantity; n++ {
			b.WriteString("<div class=\"label\">")
			b.WriteString(svg)
			b.WriteString("</div>\n")
		}
	}

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String(), nil
}

// CountLabels returns the total number of label blocks a batch will produce.
func CountLabels(items []BatchItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
