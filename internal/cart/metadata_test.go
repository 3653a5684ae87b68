package cart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KeysAndCount(t *testing.T) {
	items := []Item{
		{Style: "Mens", Size: "L"},
		{Style: "Womens", Size: "M"},
		{Style: "Bucket Hat", Size: "One Size"},
	}

	metadata, err := Encode("Jane Swimmer", items)
	require.NoError(t, err)

	assert.Equal(t, "Jane Swimmer", metadata[KeyCustomerName])
	assert.Equal(t, "3", metadata[KeyItemCount])
	assert.Equal(t, "Mens - L", metadata["item_1"])
	assert.Equal(t, "Womens - M", metadata["item_2"])
	assert.Equal(t, "Bucket Hat - One Size", metadata["item_3"])
	assert.Len(t, metadata, 5)
}

func TestEncode_StrapAnnotation(t *testing.T) {
	metadata, err := Encode("Jane", []Item{{Style: "Mens", Size: "XL", StrapType: "Clip"}})
	require.NoError(t, err)

	assert.Equal(t, "Mens (Clip) - XL", metadata["item_1"])
}

func TestEncode_ValueTooLongFailsWholeCart(t *testing.T) {
	items := []Item{
		{Style: "Mens", Size: "L"},
		{Style: "Womens", Size: strings.Repeat("x", 600)},
	}

	_, err := Encode("Jane", items)
	require.ErrorIs(t, err, ErrItemTooLong)
	assert.Contains(t, err.Error(), "item 2")
}

func TestRoundTrip(t *testing.T) {
	styles := []string{"Mens", "Womens", "Boys", "Girls", "Bucket Hat"}
	sizes := []string{"S", "M", "L", "XL", "One Size"}

	for _, style := range styles {
		for _, size := range sizes {
			metadata, err := Encode("Jane", []Item{{Style: style, Size: size}})
			require.NoError(t, err)

			gotStyle, gotSize, ok := DecodeValue(metadata["item_1"])
			require.True(t, ok)
			assert.Equal(t, style, gotStyle)
			assert.Equal(t, size, gotSize)
		}
	}
}

func TestDecodeValue_SplitsOnFirstDelimiter(t *testing.T) {
	style, size, ok := DecodeValue("Mens (Clip) - L - Long")
	require.True(t, ok)
	assert.Equal(t, "Mens (Clip)", style)
	assert.Equal(t, "L - Long", size)
}

func TestDecodeValue_Malformed(t *testing.T) {
	_, _, ok := DecodeValue("no delimiter here")
	assert.False(t, ok)
}

func TestItemCount(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]string
		want     int
	}{
		{"valid", map[string]string{KeyItemCount: "3"}, 3},
		{"absent", map[string]string{}, 0},
		{"garbage", map[string]string{KeyItemCount: "three"}, 0},
		{"negative", map[string]string{KeyItemCount: "-2"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemCount(tt.metadata))
		})
	}
}
