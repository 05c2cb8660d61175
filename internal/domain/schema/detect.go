package schema

import "strings"

// Layout names a known export layout.
type Layout string

const (
	LayoutFull    Layout = "full"
	LayoutSimple  Layout = "simple"
	LayoutUnknown Layout = "unknown"
)

// Detect guesses which export produced text by looking at the not-null
// column of the first data line. It is informational only; Parse handles
// every layout the same way.
func Detect(text string) Layout {
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" || isHeader(line) {
			continue
		}
		fields := splitFields(line, !strings.Contains(line, "\t"))
		if len(fields) <= colNotNull {
			return LayoutUnknown
		}
		switch v := strings.ToLower(fields[colNotNull]); v {
		case "0", "-1", "1":
			return LayoutFull
		case "true", "false":
			return LayoutSimple
		default:
			return LayoutUnknown
		}
	}
	return LayoutUnknown
}
