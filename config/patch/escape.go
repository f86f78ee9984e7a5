package patch

import "strings"

// EscapeKey escapes a map key for use as one gjson/sjson path element.
// Model ids carry dots ("gemini-2.5-flash") and wildcards would otherwise
// match more than one key.
func EscapeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch r {
		case '\\', '.', '|', '#', '@', '*', '?':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
