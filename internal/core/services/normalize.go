package services

import "strings"

// normalize canonicalises free text for comparison: lower-case, every
// maximal run of characters outside [a-z0-9] collapsed to a single
// space, leading/trailing space trimmed. Total over any input; empty
// or symbol-only input normalises to "".
func normalize(text string) string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))

	pendingSpace := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteByte(c)
		} else {
			pendingSpace = true
		}
	}

	return b.String()
}
