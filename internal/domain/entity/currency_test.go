package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrencyCode(t *testing.T) {
	assert.Equal(t, CurrencyCode("USD"), NormalizeCurrencyCode("usd"))
	assert.Equal(t, CurrencyCode("EUR"), NormalizeCurrencyCode("  eUr \n"))
	assert.Equal(t, CurrencyCode(""), NormalizeCurrencyCode("   "))
}

func TestCurrencySet(t *testing.T) {
	set := NewCurrencySet("USD", "eur")

	// Duplicates collapse regardless of case
	set.Add("EUR", "usd", "CHF")
	assert.Equal(t, 3, set.Len())

	assert.True(t, set.Contains("usd"))
	assert.True(t, set.Contains("EUR"))
	assert.False(t, set.Contains("XYZ"))

	assert.Equal(t, []CurrencyCode{"CHF", "EUR", "USD"}, set.Sorted())
}

func TestCurrencySetEmpty(t *testing.T) {
	set := NewCurrencySet()
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains("USD"))
	assert.Empty(t, set.Sorted())
}
