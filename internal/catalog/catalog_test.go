package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceTable_Price(t *testing.T) {
	prices := Default()

	price, err := prices.Price("Womens")
	require.NoError(t, err)
	assert.Equal(t, int64(9500), price)
}

func TestPriceTable_UnknownStyle(t *testing.T) {
	prices := Default()

	_, err := prices.Price("Snorkel")
	require.Error(t, err)

	var unknownErr *UnknownStyleError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "Snorkel", unknownErr.Style)
	assert.Equal(t, "invalid style: Snorkel", err.Error())
}
