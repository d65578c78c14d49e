package barcode

import "testing"

func TestCheckDigits(t *testing.T) {
	t.Run("EAN-13 known value", func(t *testing.T) {
		if got := EAN13CheckDigit("590123412345"); got != '7' {
			t.Fatalf("expected '7', got %q", got)
		}
	})

	t.Run("EAN-8 known value", func(t *testing.T) {
		if got := EAN8CheckDigit("9638507"); got != '4' {
			t.Fatalf("expected '4', got %q", got)
		}
	})

	t.Run("UPC-A known value", func(t *testing.T) {
		if got := UPCACheckDigit("01234567890"); got != '5' {
			t.Fatalf("expected '5', got %q", got)
		}
	})

	t.Run("sum divisible by ten yields zero", func(t *testing.T) {
		// 4+0+0+... with weight 1 at even positions: "400000000000" sums to 4,
		// check digit 6; "000000000000" sums to 0, check digit 0.
		if got := EAN13CheckDigit("000000000000"); got != '0' {
			t.Fatalf("expected '0', got %q", got)
		}
	})
}

func TestCheckDigitPreconditions(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"EAN-13 wrong length", func() { EAN13CheckDigit("123") }},
		{"EAN-13 non-digit", func() { EAN13CheckDigit("59012341234X") }},
		{"EAN-8 wrong length", func() { EAN8CheckDigit("96385074") }},
		{"UPC-A wrong length", func() { UPCACheckDigit("0123456789") }},
		{"UPC-A non-digit", func() { UPCACheckDigit("0123456789a") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic, got none")
				}
			}()
			tc.fn()
		})
	}
}

func TestValidators(t *testing.T) {
	t.Run("appending computed check digit always validates", func(t *testing.T) {
		for _, body := range []string{"590123412345", "000000000000", "978014300723", "123456789012"} {
			full := body + string(EAN13CheckDigit(body))
			if !IsValidEAN13(full) {
				t.Errorf("IsValidEAN13(%q) = false, want true", full)
			}
		}
		for _, body := range []string{"9638507", "0000000", "1234567"} {
			full := body + string(EAN8CheckDigit(body))
			if !IsValidEAN8(full) {
				t.Errorf("IsValidEAN8(%q) = false, want true", full)
			}
		}
		for _, body := range []string{"01234567890", "03600029145", "88888888888"} {
			full := body + string(UPCACheckDigit(body))
			if !IsValidUPCA(full) {
				t.Errorf("IsValidUPCA(%q) = false, want true", full)
			}
		}
	})

	t.Run("wrong check digit fails", func(t *testing.T) {
		if IsValidEAN13("5901234123458") {
			t.Error("expected invalid EAN-13")
		}
		if IsValidEAN8("96385071") {
			t.Error("expected invalid EAN-8")
		}
		if IsValidUPCA("012345678906") {
			t.Error("expected invalid UPC-A")
		}
	})

	t.Run("wrong length or non-digit fails without panic", func(t *testing.T) {
		for _, s := range []string{"", "123", "59012341234X7", "abcdefghijklm"} {
			if IsValidEAN13(s) {
				t.Errorf("IsValidEAN13(%q) = true, want false", s)
			}
		}
	})
}
