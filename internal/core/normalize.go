package core

import (
	"strings"
	"unicode"
)

// NormalizeSequence removes every whitespace character from raw, including
// whitespace inside the sequence.
func NormalizeSequence(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}
