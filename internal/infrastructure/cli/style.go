package cli

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
)

var (
	headingStyle = color.New(color.FgCyan, color.Bold)
	errorStyle   = color.New(color.FgRed)
	resultStyle  = color.New(color.FgGreen)
)

// capitalize upper-cases the first letter of s and lower-cases the rest
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
