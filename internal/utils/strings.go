package utils

// TruncateRunes caps s at max runes. Cutting happens on rune boundaries so
// the result is always valid UTF-8 even when s contains multi-byte runes.
func TruncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}

	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}

	return s
}
