package models

import "fmt"

// Price is a whole-unit amount in the store's currency. The source market
// uses no fractional subunits, so the value is a plain non-negative integer.
type Price int64

// NewPrice constructs a valid Price or returns an error for negative amounts.
func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return 0, fmt.Errorf("price must not be negative, got %d", amount)
	}
	return Price(amount), nil
}

// Int64 returns the underlying amount.
func (p Price) Int64() int64 {
	return int64(p)
}
