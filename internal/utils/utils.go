// Package utils holds small helpers shared across the CLI.
package utils

import (
	"strings"
	"unicode"
)

// MaskAPIKey masks a credential for display, keeping just enough of the
// token to recognize it.
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// TitleWords title-cases each space-separated word: first letter upper,
// the rest lower.
func TitleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}
