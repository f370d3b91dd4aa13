package styles

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates s to fit within maxWidth terminal cells, adding
// an ellipsis when it had to cut. Wide (CJK) runes count as two cells.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// FormatIndex renders a 1-based position as a zero-padded two-digit label.
func FormatIndex(idx int) string {
	return fmt.Sprintf("%02d", idx+1)
}
