package merchant

import "strings"

// NormalizeVendor canonicalizes a vendor or line-item name for use as a
// grouping key: lower-cased, trimmed, internal whitespace collapsed, and
// characters outside [a-z0-9 ] replaced with spaces. Total over all inputs
// and idempotent.
func NormalizeVendor(s string) string {
	lower := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
