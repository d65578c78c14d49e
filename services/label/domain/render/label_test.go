package render

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	labeldomain "github.com/ghuser/labelpress/services/label/domain"
)

func testRenderer() *Renderer {
	return NewRenderer(DefaultCurrencyFormatter())
}

func TestRenderLabel(t *testing.T) {
	r := testRenderer()

	t.Run("fragment carries barcode, name and formatted price", func(t *testing.T) {
		svg, err := r.RenderLabel(LabelRequest{
			Barcode:     "1234567890",
			ProductName: "Test Product",
			Price:       15000,
			Size:        Size38x25,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"1234567890", "Test Product", "15.000đ"} {
			if !strings.Contains(svg, want) {
				t.Errorf("fragment missing %q", want)
			}
		}
		if !strings.Contains(svg, "<rect") {
			t.Error("fragment has no bar rectangles")
		}
	})

	t.Run("both size presets render", func(t *testing.T) {
		for _, size := range []LabelSize{Size38x25, Size50x30} {
			if _, err := r.RenderLabel(LabelRequest{Barcode: "X1", ProductName: "P", Price: 1, Size: size}); err != nil {
				t.Errorf("size %s: unexpected error: %v", size, err)
			}
		}
	})

	t.Run("unknown size fails", func(t *testing.T) {
		_, err := r.RenderLabel(LabelRequest{Barcode: "X", ProductName: "P", Price: 1, Size: "60x40"})
		if !errors.Is(err, labeldomain.ErrUnknownLabelSize) {
			t.Fatalf("expected ErrUnknownLabelSize, got %v", err)
		}
	})

	t.Run("long names are truncated with the ellipsis marker", func(t *testing.T) {
		long := strings.Repeat("N", 40)
		svg, err := r.RenderLabel(LabelRequest{Barcode: "X", ProductName: long, Price: 1, Size: Size38x25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := strings.Repeat("N", 20) + ".."
		if !strings.Contains(svg, want) {
			t.Error("truncated name with marker not found")
		}
		if strings.Contains(svg, strings.Repeat("N", 23)) {
			t.Error("name rendered beyond the size's maximum")
		}
	})

	t.Run("multibyte names are measured in runes", func(t *testing.T) {
		// 12 characters, 36 bytes. Within the 22-character maximum, so it
		// must pass through untouched.
		short := strings.Repeat("ữ", 12)
		svg, err := r.RenderLabel(LabelRequest{Barcode: "X", ProductName: short, Price: 1, Size: Size38x25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(svg, short) {
			t.Error("multibyte name within the maximum was altered")
		}

		long := strings.Repeat("ữ", 30)
		svg, err = r.RenderLabel(LabelRequest{Barcode: "X", ProductName: long, Price: 1, Size: Size38x25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := strings.Repeat("ữ", 20) + ".."
		if !strings.Contains(svg, want) {
			t.Error("multibyte name not truncated on a rune boundary")
		}
		if !utf8.ValidString(svg) {
			t.Error("rendered SVG contains invalid UTF-8")
		}
	})

	t.Run("markup characters in fields are escaped", func(t *testing.T) {
		svg, err := r.RenderLabel(LabelRequest{
			Barcode:     `<">&'`,
			ProductName: "Bread & Butter",
			Price:       9000,
			Size:        Size50x30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(svg, "&lt;&quot;&gt;&amp;&#39;") {
			t.Errorf("barcode text not escaped: %s", svg)
		}
		if !strings.Contains(svg, "Bread &amp; Butter") {
			t.Error("product name not escaped")
		}
	})

	t.Run("empty barcode renders text only", func(t *testing.T) {
		svg, err := r.RenderLabel(LabelRequest{Barcode: "", ProductName: "No Code", Price: 500, Size: Size38x25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(svg, "<rect") {
			t.Error("expected no bars for empty barcode")
		}
		if !strings.Contains(svg, "No Code") {
			t.Error("product name missing")
		}
	})
}

func TestValidateLabelContent(t *testing.T) {
	r := testRenderer()

	t.Run("accepts everything RenderLabel produces", func(t *testing.T) {
		requests := []LabelRequest{
			{Barcode: "1234567890", ProductName: "Test Product", Price: 15000, Size: Size38x25},
			{Barcode: "5901234123457", ProductName: strings.Repeat("Long name ", 6), Price: 1250000, Size: Size50x30},
			{Barcode: `A&B<C>`, ProductName: `"Quoted"`, Price: 0, Size: Size38x25},
			{Barcode: "", ProductName: "n", Price: 1, Size: Size50x30},
		}
		for _, req := range requests {
			svg, err := r.RenderLabel(req)
			if err != nil {
				t.Fatalf("render %+v: %v", req, err)
			}
			if !r.ValidateLabelContent(svg, req) {
				t.Errorf("round-trip failed for %+v", req)
			}
		}
	})

	t.Run("rejects a fragment missing mandated fields", func(t *testing.T) {
		req := LabelRequest{Barcode: "123", ProductName: "Present", Price: 100, Size: Size38x25}
		if r.ValidateLabelContent("<svg></svg>", req) {
			t.Error("expected validation failure for empty fragment")
		}
	})

	t.Run("rejects unknown sizes", func(t *testing.T) {
		req := LabelRequest{Barcode: "123", ProductName: "P", Price: 1, Size: "huge"}
		if r.ValidateLabelContent("123 P 1đ", req) {
			t.Error("expected validation failure for unknown size")
		}
	})
}
