package util

import "strings"

// Slugify turns a display name into a URL-safe slug: lowercase, runs of
// non-alphanumerics collapsed to a single hyphen, leading/trailing hyphens
// trimmed.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
