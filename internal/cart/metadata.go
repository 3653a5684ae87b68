// Package cart defines the cart item model and the metadata mini-protocol
// that round-trips a structured cart through the payment processor's flat
// string-to-string session metadata.
//
// Encoding: "customer_name", "item_count" (decimal string), and one
// "item_<i>" key per item in input order, each holding
// "<style>[ (<strapType>)] - <size>". Decoding splits on the first " - ";
// the style segment keeps any strap annotation verbatim.
package cart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	KeyCustomerName = "customer_name"
	KeyItemCount    = "item_count"

	delimiter = " - "

	// Stripe caps every metadata value at 500 characters.
	maxValueLen = 500
)

// ErrItemTooLong means a single encoded item cannot fit the metadata value
// bound. The whole request fails rather than silently truncating the cart.
var ErrItemTooLong = errors.New("encoded cart item exceeds metadata value limit")

// ItemKey returns the metadata key for the i-th item, 1-based.
func ItemKey(i int) string {
	return fmt.Sprintf("item_%d", i)
}

// Encode serializes a cart into the session metadata bag.
func Encode(customerName string, items []Item) (map[string]string, error) {
	metadata := map[string]string{
		KeyCustomerName: customerName,
		KeyItemCount:    strconv.Itoa(len(items)),
	}

	for i, item := range items {
		value := item.Label() + delimiter + item.Size
		if len(value) > maxValueLen {
			return nil, fmt.Errorf("item %d: %w", i+1, ErrItemTooLong)
		}
		metadata[ItemKey(i+1)] = value
	}

	return metadata, nil
}

// DecodeValue parses one encoded item value back into its style and size
// segments. The split happens on the first delimiter occurrence, so sizes
// never swallow a strap annotation embedded in the style segment.
func DecodeValue(value string) (style, size string, ok bool) {
	before, after, found := strings.Cut(value, delimiter)
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(before), strings.TrimSpace(after), true
}

// ItemCount reads the item_count key. A missing or unparsable count is
// treated as zero items.
func ItemCount(metadata map[string]string) int {
	count, err := strconv.Atoi(metadata[KeyItemCount])
	if err != nil || count < 0 {
		return 0
	}
	return count
}
