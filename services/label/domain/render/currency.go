package render

import (
	"strconv"
	"strings"
)

// CurrencyFormatter formats whole-unit prices for the target market.
// The engine's source market uses no fractional subunits, so amounts are
// plain non-negative integers. Keep formatting concerns here so reuse in
// another market is a config change, not a rendering change.
type CurrencyFormatter struct {
	// Symbol is the currency marker, e.g. "đ".
	Symbol string
	// GroupSep separates thousands groups, e.g. ".".
	GroupSep string
	// SymbolBefore places the symbol before the amount instead of after.
	SymbolBefore bool
}

// DefaultCurrencyFormatter matches the source market's convention: grouped
// thousands with "." and a trailing "đ".
func DefaultCurrencyFormatter() CurrencyFormatter {
	return CurrencyFormatter{Symbol: "đ", GroupSep: "."}
}

// Format renders amount per the formatter's convention, e.g. 15000 → "15.000đ".
// Negative amounts are clamped to zero; prices are non-negative by contract.
func (f CurrencyFormatter) Format(amount int64) string {
	if amount < 0 {
		amount = 0
	}
	grouped := groupThousands(strconv.FormatInt(amount, 10), f.GroupSep)
	if f.SymbolBefore {
		return f.Symbol + grouped
	}
	return grouped + f.Symbol
}

// groupThousands inserts sep every three digits from the right.
func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
