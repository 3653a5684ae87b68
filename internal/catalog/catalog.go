package catalog

import "fmt"

// PriceTable maps a product style to its unit price in minor currency units.
// The table is fixed configuration: it is built once at startup and handed to
// the checkout service, never mutated afterwards.
type PriceTable map[string]int64

// Default returns the production price table (AUD cents).
func Default() PriceTable {
	return PriceTable{
		"Mens":       5000, // $50
		"Womens":     9500, // $95
		"Boys":       4500, // $45
		"Girls":      6500, // $65
		"Bucket Hat": 4500, // $45
	}
}

// UnknownStyleError is returned when a cart item names a style outside the
// catalog. It aborts the whole checkout before any external call is made.
type UnknownStyleError struct {
	Style string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("invalid style: %s", e.Style)
}

// Price resolves the unit price for a style.
func (t PriceTable) Price(style string) (int64, error) {
	price, ok := t[style]
	if !ok {
		return 0, &UnknownStyleError{Style: style}
	}
	return price, nil
}
