package barcode

import "strings"

// Symbology identifies the barcode standard a value is classified under.
// Closed enumeration — never extended at runtime.
type Symbology string

const (
	SymbologyEAN13    Symbology = "EAN13"
	SymbologyEAN8     Symbology = "EAN8"
	SymbologyUPCA     Symbology = "UPCA"
	SymbologyCode128  Symbology = "CODE128"
	SymbologyInternal Symbology = "INTERNAL"
)

// DefaultInternalPrefix marks store-minted internal codes. Override per
// deployment through config; detection accepts any prefix passed to Detect.
const DefaultInternalPrefix = "SP"

const (
	errEmptyBarcode        = "barcode must not be empty"
	errUnrecognizedBarcode = "format not recognized, supported: EAN-13, EAN-8, UPC-A, Code128"
)

// ValidationResult is the structured verdict for a raw barcode string.
// Exactly one of {Valid with Format set, invalid with Err set} holds.
type ValidationResult struct {
	Valid  bool      `json:"is_valid"`
	Format Symbology `json:"format,omitempty"`
	Err    string    `json:"error,omitempty"`
}

// Detect classifies s into a Symbology using a strict precedence order:
//
//  1. empty / all-whitespace → unrecognized
//  2. internal prefix + \d{8,10} suffix → INTERNAL
//  3. all-digit strings of length 13/8/12 with a matching check digit →
//     EAN13 / EAN8 / UPCA
//  4. any other non-empty string within the 7-bit ASCII range → CODE128;
//     this includes standard-length digit strings whose check digit failed —
//     a numeric candidate demotes to Code128 rather than being rejected
//  5. anything containing a rune above ASCII 127 → unrecognized
//
// internalPrefix is the configured prefix for store-minted codes
// (DefaultInternalPrefix when in doubt).
func Detect(s, internalPrefix string) (Symbology, bool) {
	if strings.TrimSpace(s) == "" {
		return "", false
	}

	if IsValidInternalCode(s, internalPrefix) {
		return SymbologyInternal, true
	}

	if isDigits(s) {
		switch {
		case len(s) == 13 && IsValidEAN13(s):
			return SymbologyEAN13, true
		case len(s) == 8 && IsValidEAN8(s):
			return SymbologyEAN8, true
		case len(s) == 12 && IsValidUPCA(s):
			return SymbologyUPCA, true
		}
	}

	if isASCII(s) {
		return SymbologyCode128, true
	}

	return "", false
}

// Validate wraps Detect into a structured result suitable for user-facing
// error presentation. Unrecognized input is an expected runtime outcome,
// never an error value.
func Validate(s, internalPrefix string) ValidationResult {
	if strings.TrimSpace(s) == "" {
		return ValidationResult{Err: errEmptyBarcode}
	}
	format, ok := Detect(s, internalPrefix)
	if !ok {
		return ValidationResult{Err: errUnrecognizedBarcode}
	}
	return ValidationResult{Valid: true, Format: format}
}

// isASCII reports whether every byte of s is within the 7-bit ASCII range.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
