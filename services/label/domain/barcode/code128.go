package barcode

// Code128 subset-B encoder. Symbol values map through the standard 107-entry
// pattern table to 11-module bar/space runs ('1' = bar, '0' = space); the
// stop symbol carries a 13-module pattern including the termination bar.

const (
	startB     = 104
	stopSymbol = 106
)

// code128Patterns holds the module patterns for symbol values 0–106.
var code128Patterns = [107]string{
	"11011001100", "11001101100", "11001100110", "10010011000", "10010001100",
	"10001001100", "10011001000", "10011000100", "10001100100", "11001001000",
	"11001000100", "11000100100", "10110011100", "10011011100", "10011001110",
	"10111001100", "10011101100", "10011100110", "11001110010", "11001011100",
	"11001001110", "11011100100", "11001110100", "11101101110", "11101001100",
	"11100101100", "11100100110", "11101100100", "11100110100", "11100110010",
	"11011011000", "11011000110", "11000110110", "10100011000", "10001011000",
	"10001000110", "10110001000", "10001101000", "10001100010", "11010001000",
	"11000101000", "11000100010", "10110111000", "10110001110", "10001101110",
	"10111011000", "10111000110", "10001110110", "11101110110", "11010001110",
	"11000101110", "11011101000", "11011100010", "11011101110", "11101011000",
	"11101000110", "11100010110", "11101101000", "11101100010", "11100011010",
	"11101111010", "11001000010", "11110001010", "10100110000", "10100001100",
	"10010110000", "10010000110", "10000101100", "10000100110", "10110010000",
	"10110000100", "10011010000", "10011000010", "10000110100", "10000110010",
	"11000010010", "11001010000", "11110111010", "11000010100", "10001111010",
	"10100111100", "10010111100", "10010011110", "10111100100", "10011110100",
	"10011110010", "11110100100", "11110010100", "11110010010", "11011011110",
	"11011110110", "11110110110", "10101111000", "10100011110", "10001011110",
	"10111101000", "10111100010", "11110101000", "11110100010", "10111011110",
	"10111101110", "11101011110", "11110101110", "11010000100", "11010010000",
	"11010011100", "1100011101011",
}

// EncodeCode128 encodes text as a Code128 subset-B linear pattern.
// Characters with ASCII codes in [32,127) map to symbol value code−32;
// runes outside that range are skipped silently (pre-existing behavior kept
// deliberately — see Validate for upstream content checks). An empty input
// yields an empty pattern with no symbols at all.
func EncodeCode128(text string) string {
	if text == "" {
		return ""
	}

	values := []int{startB}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 32 || c >= 127 {
			continue
		}
		values = append(values, int(c)-32)
	}

	// Mod-103 checksum: the start symbol weighs 1, data symbols weigh their
	// 1-based position.
	sum := values[0]
	for i := 1; i < len(values); i++ {
		sum += values[i] * i
	}
	values = append(values, sum%103, stopSymbol)

	var pattern []byte
	for _, v := range values {
		pattern = append(pattern, code128Patterns[v]...)
	}
	return string(pattern)
}
