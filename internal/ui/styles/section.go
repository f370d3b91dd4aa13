package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// PanelConfig describes a bordered widget panel with a tag embedded in the
// top border and an optional right-aligned hint: ╭─ ARCADE ──── READY? ─╮
type PanelConfig struct {
	Rows    []string // Content rows, already styled
	Tag     string   // Already-styled tag text
	Hint    string   // Plain hint text, rendered muted
	Width   int      // Total width including borders
	Focused bool     // Use BorderFocusColor
}

// RenderPanel renders a bordered panel. Rows wider than the inner width
// are not wrapped; callers size them.
func RenderPanel(cfg PanelConfig) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if cfg.Focused {
		borderColor = BorderFocusColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	innerWidth := max(cfg.Width-2, 1)

	// ╭─ TAG ─────── HINT ─╮
	var top string
	if cfg.Tag == "" && cfg.Hint == "" {
		top = borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	} else {
		// "─ " + tag + " " + fill, then optionally " " + hint + " ─"
		used := 3 + lipgloss.Width(cfg.Tag)
		if cfg.Hint != "" {
			used += lipgloss.Width(cfg.Hint) + 3
		}
		fill := max(innerWidth-used, 0)

		top = borderStyle.Render(borderTopLeft+borderHorizontal+" ") + cfg.Tag +
			borderStyle.Render(" "+strings.Repeat(borderHorizontal, fill))
		if cfg.Hint != "" {
			top += " " + PanelHintStyle.Render(cfg.Hint) + " " + borderStyle.Render(borderHorizontal)
		}
		top += borderStyle.Render(borderTopRight)
	}

	lines := make([]string, 0, len(cfg.Rows)+2)
	lines = append(lines, top)
	for _, row := range cfg.Rows {
		pad := ""
		if w := lipgloss.Width(row); w < innerWidth {
			pad = strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, borderStyle.Render(borderVertical)+row+pad+borderStyle.Render(borderVertical))
	}
	lines = append(lines, borderStyle.Render(borderBottomLeft+strings.Repeat(borderHorizontal, innerWidth)+borderBottomRight))

	return strings.Join(lines, "\n")
}
