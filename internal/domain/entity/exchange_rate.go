package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Table identifies one of the NBP rate-publishing series
type Table string

const (
	// TableA holds the most traded currencies, published every business day
	TableA Table = "A"
	// TableB holds the remaining currencies, published weekly
	TableB Table = "B"
)

// FallbackTables is the order in which tables are queried for a currency
var FallbackTables = []Table{TableA, TableB}

// ExchangeRatePoint is the mid rate of a currency against PLN on one day
type ExchangeRatePoint struct {
	Date time.Time       `json:"effectiveDate"`
	Mid  decimal.Decimal `json:"mid"`
}

// MidFloat returns the mid rate as a float64 for plotting
func (p ExchangeRatePoint) MidFloat() float64 {
	return p.Mid.InexactFloat64()
}
