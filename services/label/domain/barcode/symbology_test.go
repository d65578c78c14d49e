package barcode

import "testing"

func TestDetect(t *testing.T) {
	t.Run("empty and whitespace are unrecognized", func(t *testing.T) {
		for _, s := range []string{"", "   ", "\t\n"} {
			if _, ok := Detect(s, DefaultInternalPrefix); ok {
				t.Errorf("Detect(%q) recognized, want unrecognized", s)
			}
		}
	})

	t.Run("internal prefix wins over everything", func(t *testing.T) {
		got, ok := Detect("SP1234567890", DefaultInternalPrefix)
		if !ok || got != SymbologyInternal {
			t.Fatalf("Detect = %v, %v; want INTERNAL", got, ok)
		}
		// 8-digit legacy suffix still classifies.
		got, ok = Detect("SP12345678", DefaultInternalPrefix)
		if !ok || got != SymbologyInternal {
			t.Fatalf("Detect legacy = %v, %v; want INTERNAL", got, ok)
		}
	})

	t.Run("internal prefix with bad suffix falls through to Code128", func(t *testing.T) {
		for _, s := range []string{"SP123", "SP12345678901", "SPabcdefgh"} {
			got, ok := Detect(s, DefaultInternalPrefix)
			if !ok || got != SymbologyCode128 {
				t.Errorf("Detect(%q) = %v, %v; want CODE128", s, got, ok)
			}
		}
	})

	t.Run("standard symbologies by length and check digit", func(t *testing.T) {
		cases := []struct {
			in   string
			want Symbology
		}{
			{"5901234123457", SymbologyEAN13},
			{"96385074", SymbologyEAN8},
			{"012345678905", SymbologyUPCA},
		}
		for _, tc := range cases {
			got, ok := Detect(tc.in, DefaultInternalPrefix)
			if !ok || got != tc.want {
				t.Errorf("Detect(%q) = %v, %v; want %v", tc.in, got, ok, tc.want)
			}
		}
	})

	t.Run("checksum failure demotes numeric candidates to Code128", func(t *testing.T) {
		for _, s := range []string{"5901234123458", "96385071", "012345678906"} {
			got, ok := Detect(s, DefaultInternalPrefix)
			if !ok || got != SymbologyCode128 {
				t.Errorf("Detect(%q) = %v, %v; want CODE128", s, got, ok)
			}
		}
	})

	t.Run("printable ASCII classifies as Code128", func(t *testing.T) {
		for _, s := range []string{"ABC123", "item-42", "X", "1234567890"} {
			got, ok := Detect(s, DefaultInternalPrefix)
			if !ok || got != SymbologyCode128 {
				t.Errorf("Detect(%q) = %v, %v; want CODE128", s, got, ok)
			}
		}
	})

	t.Run("non-ASCII is unrecognized", func(t *testing.T) {
		for _, s := range []string{"sữa", "naïve", "日本"} {
			if _, ok := Detect(s, DefaultInternalPrefix); ok {
				t.Errorf("Detect(%q) recognized, want unrecognized", s)
			}
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		res := Validate("", DefaultInternalPrefix)
		if res.Valid || res.Format != "" || res.Err != "barcode must not be empty" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("unrecognized input", func(t *testing.T) {
		res := Validate("日本", DefaultInternalPrefix)
		if res.Valid || res.Err != "format not recognized, supported: EAN-13, EAN-8, UPC-A, Code128" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("recognized input carries format and no error", func(t *testing.T) {
		res := Validate("5901234123457", DefaultInternalPrefix)
		if !res.Valid || res.Format != SymbologyEAN13 || res.Err != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
