package render

import "testing"

func TestCurrencyFormatter(t *testing.T) {
	t.Run("default market convention", func(t *testing.T) {
		f := DefaultCurrencyFormatter()
		cases := []struct {
			amount int64
			want   string
		}{
			{0, "0đ"},
			{999, "999đ"},
			{1000, "1.000đ"},
			{15000, "15.000đ"},
			{1234567, "1.234.567đ"},
		}
		for _, tc := range cases {
			if got := f.Format(tc.amount); got != tc.want {
				t.Errorf("Format(%d) = %q, want %q", tc.amount, got, tc.want)
			}
		}
	})

	t.Run("symbol before with comma grouping", func(t *testing.T) {
		f := CurrencyFormatter{Symbol: "$", GroupSep: ",", SymbolBefore: true}
		if got := f.Format(1234567); got != "$1,234,567" {
			t.Errorf("Format = %q, want %q", got, "$1,234,567")
		}
	})

	t.Run("negative amounts clamp to zero", func(t *testing.T) {
		f := DefaultCurrencyFormatter()
		if got := f.Format(-5); got != "0đ" {
			t.Errorf("Format(-5) = %q, want %q", got, "0đ")
		}
	})
}
