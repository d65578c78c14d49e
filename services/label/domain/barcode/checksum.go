// Package barcode implements the symbology-level core of the label engine:
// retail check digits, format detection, internal code minting, and a
// Code128 subset-B encoder.
package barcode

import "fmt"

// EAN13CheckDigit computes the EAN-13 check digit for exactly 12 digits.
// Weights alternate 1,3 starting at position 0. Panics on wrong length or
// non-digit input — callers must validate first; this is a programmer error.
func EAN13CheckDigit(digits string) byte {
	return checkDigit("EAN-13", digits, 12, 1, 3)
}

// EAN8CheckDigit computes the EAN-8 check digit for exactly 7 digits.
// Weights alternate 3,1 starting at position 0.
func EAN8CheckDigit(digits string) byte {
	return checkDigit("EAN-8", digits, 7, 3, 1)
}

// UPCACheckDigit computes the UPC-A check digit for exactly 11 digits.
// Weights alternate 3,1 starting at position 0.
func UPCACheckDigit(digits string) byte {
	return checkDigit("UPC-A", digits, 11, 3, 1)
}

// checkDigit is the shared modulo-10 weighted-sum kernel.
// evenWeight applies at even indexes, oddWeight at odd indexes.
func checkDigit(kind, digits string, wantLen, evenWeight, oddWeight int) byte {
	if len(digits) != wantLen {
		panic(fmt.Sprintf("barcode: %s check digit requires exactly %d digits, got %d", kind, wantLen, len(digits)))
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			panic(fmt.Sprintf("barcode: %s check digit input must be digits only, got %q at index %d", kind, c, i))
		}
		w := evenWeight
		if i%2 == 1 {
			w = oddWeight
		}
		sum += int(c-'0') * w
	}
	return byte('0' + (10-sum%10)%10)
}

// IsValidEAN13 reports whether s is a 13-digit string with a correct EAN-13 check digit.
func IsValidEAN13(s string) bool {
	return validLength(s, 13) && EAN13CheckDigit(s[:12]) == s[12]
}

// IsValidEAN8 reports whether s is an 8-digit string with a correct EAN-8 check digit.
func IsValidEAN8(s string) bool {
	return validLength(s, 8) && EAN8CheckDigit(s[:7]) == s[7]
}

// IsValidUPCA reports whether s is a 12-digit string with a correct UPC-A check digit.
func IsValidUPCA(s string) bool {
	return validLength(s, 12) && UPCACheckDigit(s[:11]) == s[11]
}

func validLength(s string, n int) bool {
	return len(s) == n && isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
