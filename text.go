package tidy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// truncate cuts value to at most maxLen bytes. The cut backs off to the
// previous rune boundary so the result stays valid UTF-8.
func truncate(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}

// trimSpace strips leading and trailing whitespace.
func trimSpace(value string) string {
	return strings.TrimFunc(value, unicode.IsSpace)
}

// collapseSpaces replaces every maximal run of whitespace with a single space.
// Leading and trailing runs are collapsed too, not removed.
func collapseSpaces(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	inRun := false
	for i, r := range value {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		_, size := utf8.DecodeRuneInString(value[i:])
		b.WriteString(value[i : i+size])
	}

	return b.String()
}
