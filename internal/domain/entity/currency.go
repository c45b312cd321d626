package entity

import (
	"sort"
	"strings"
)

// CurrencyCode is an ISO 4217 style code such as USD
type CurrencyCode string

// NormalizeCurrencyCode trims and upper-cases user input
func NormalizeCurrencyCode(raw string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// String returns the code as a plain string
func (c CurrencyCode) String() string {
	return string(c)
}

// CurrencySet is a deduplicated collection of currency codes
type CurrencySet map[CurrencyCode]struct{}

// NewCurrencySet creates a set holding the given codes
func NewCurrencySet(codes ...CurrencyCode) CurrencySet {
	s := make(CurrencySet, len(codes))
	for _, c := range codes {
		s.Add(c)
	}
	return s
}

// Add inserts codes into the set, normalizing each one
func (s CurrencySet) Add(codes ...CurrencyCode) {
	for _, c := range codes {
		s[NormalizeCurrencyCode(string(c))] = struct{}{}
	}
}

// Contains reports whether the set holds the code, ignoring case
func (s CurrencySet) Contains(code CurrencyCode) bool {
	_, ok := s[NormalizeCurrencyCode(string(code))]
	return ok
}

// Len returns the number of codes in the set
func (s CurrencySet) Len() int {
	return len(s)
}

// Sorted returns the codes in alphabetical order
func (s CurrencySet) Sorted() []CurrencyCode {
	codes := make([]CurrencyCode, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
