package util

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// StringPtr returns nil for empty values so optional JSON fields render as
// null. Any other value, whitespace included, is kept verbatim.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
