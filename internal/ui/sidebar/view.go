package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/folio/internal/ui/styles"
)

// Default outer widths, including the right border.
const (
	ExpandedWidth = 30
	CompactWidth  = 7
)

// View renders the sidebar. Zones are marked but not scanned; the root
// model calls zone.Scan on the full frame.
func (m Model) View() string {
	width := m.Width()
	inner := max(width-1, 1)

	var blocks []string
	if m.layout.Mode == ModeCompact {
		blocks = m.compactBlocks(inner)
	} else {
		blocks = m.expandedBlocks(inner)
	}

	content := strings.Join(blocks, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > inner {
			lines[i] = ansi.Truncate(line, inner, "")
		}
	}
	content = strings.Join(lines, "\n")

	borderColor := styles.BorderDefaultColor
	if m.focused {
		borderColor = styles.BorderFocusColor
	}
	frame := lipgloss.NewStyle().
		Width(inner).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(borderColor)
	if m.height > 0 {
		frame = frame.Height(m.height).MaxHeight(m.height)
	}
	return frame.Render(content)
}

func (m Model) expandedBlocks(inner int) []string {
	l := m.layout
	blocks := make([]string, 0, 8)

	// Header row: title, plus the close affordance on small viewports
	title := styles.HeaderTitleStyle.Render(l.Header.Title)
	if l.Close != nil {
		btn := m.mark(*l.Close, m.iconButton(*l.Close, l.Close.Icon))
		title = spread(title, btn, inner)
	}
	blocks = append(blocks, title)
	blocks = append(blocks, spread(
		styles.HeaderTagStyle.Render(l.Header.Tag),
		styles.HeaderSubtitleStyle.Render(l.Header.Subtitle),
		inner,
	))
	blocks = append(blocks, styles.MutedStyle.Render(strings.Repeat("─", inner)))

	for _, c := range l.Categories {
		blocks = append(blocks, m.mark(c, m.categoryBlock(c, inner)))
	}

	blocks = append(blocks, "", m.arcadePanel(inner), m.partnerPanel(inner))

	if l.Collapse != nil {
		label := l.Collapse.Icon + " " + l.Collapse.Label
		blocks = append(blocks, m.mark(*l.Collapse, m.iconButton(*l.Collapse, label)))
	}

	footer := styles.FooterStyle.Render(l.Footer)
	blocks = append(blocks, strings.Repeat(" ", max(inner-lipgloss.Width(footer), 0))+footer)
	return blocks
}

// categoryBlock renders a two-line category button:
//
//	› ✦ ALL              ▶
//	  01 総合
func (m Model) categoryBlock(c Control, inner int) string {
	cursor := m.isCursor(c)
	prefix := "  "
	if cursor {
		prefix = styles.SelectionIndicatorStyle.Render("›") + " "
	}

	chevron := ""
	if c.Active {
		chevron = " " + activeChevron
	}
	head := c.Icon + " "
	captionWidth := inner - 2 - lipgloss.Width(head) - lipgloss.Width(chevron)
	line1 := head + styles.TruncateString(strings.ToUpper(c.Label), captionWidth)
	line1 = padRight(line1, inner-2-lipgloss.Width(chevron)) + chevron

	line2 := "  " + c.Index
	if c.Secondary != "" {
		line2 += " " + c.Secondary
	}
	line2 = padRight(styles.TruncateString(line2, inner-2), inner-2)

	lineStyle, indexStyle := styles.CategoryStyle, styles.IndexStyle
	switch {
	case c.Active:
		lineStyle, indexStyle = styles.CategoryActiveStyle, styles.IndexActiveStyle
	case cursor:
		lineStyle = styles.CategoryCursorStyle
	}

	return prefix + lineStyle.Render(line1) + "\n" + "  " + indexStyle.Render(line2)
}

func (m Model) arcadePanel(inner int) string {
	rowWidth := inner - 2
	rows := make([]string, 0, len(m.layout.Games))
	for _, g := range m.layout.Games {
		hint := g.Hint + " " + activeChevron
		name := styles.TruncateString(g.Label, max(rowWidth-lipgloss.Width(hint)-lipgloss.Width(g.Icon)-4, 1))
		row := spread(" "+g.Icon+" "+name, hint+" ", rowWidth)

		style := styles.GameRowStyle
		if m.isCursor(g) {
			style = styles.GameRowCursorStyle
		}
		rows = append(rows, m.mark(g, style.Render(row)))
	}

	return styles.RenderPanel(styles.PanelConfig{
		Rows:    rows,
		Tag:     styles.PanelTagStyle.Render(arcadeTag),
		Hint:    arcadeHint,
		Width:   inner,
		Focused: m.focused && m.cursorIn(m.layout.Games),
	})
}

func (m Model) partnerPanel(inner int) string {
	l := m.layout
	rowWidth := inner - 2

	toggleStyle := styles.PetToggleOffStyle
	if l.PetToggle.On {
		toggleStyle = styles.PetToggleOnStyle
	}
	toggle := toggleStyle.Render("[" + l.PetToggle.Label + "]")
	if m.isCursor(l.PetToggle) {
		toggle = styles.SelectionIndicatorStyle.Render("›") + toggle
	} else {
		toggle = " " + toggle
	}
	current := ""
	if sel, ok := l.SelectedSwatch(); ok {
		current = styles.MutedStyle.Render(sel.Label + " ")
	}
	rows := []string{spread(m.mark(l.PetToggle, toggle), current, rowWidth)}

	if len(l.Swatches) > 0 {
		var badges, cells strings.Builder
		badges.WriteString(" ")
		cells.WriteString(" ")
		for i, s := range l.Swatches {
			if i > 0 {
				badges.WriteString(" ")
				cells.WriteString(" ")
			}
			if s.Selected {
				badges.WriteString(" " + styles.BadgeStyle.Render(selectedBadge) + " ")
			} else {
				badges.WriteString("    ")
			}
			cells.WriteString(m.mark(s, m.swatchCell(s, l.PetVisible)))
		}
		rows = append(rows, badges.String(), cells.String())
	}

	return styles.RenderPanel(styles.PanelConfig{
		Rows:    rows,
		Tag:     styles.PanelPetTagStyle.Render(partnerTag),
		Width:   inner,
		Focused: m.focused && (m.isCursor(l.PetToggle) || m.cursorIn(l.Swatches)),
	})
}

// swatchCell renders a four-cell color chip. The selected chip gets a
// bracket frame; a hidden pet greys every chip out.
func (m Model) swatchCell(s Control, visible bool) string {
	var color lipgloss.TerminalColor = lipgloss.Color(s.Color)
	if !visible {
		color = styles.TextMutedColor
	}
	chip := lipgloss.NewStyle().Foreground(color).Render("██")

	left, right := " ", " "
	if s.Selected {
		left, right = "▐", "▌"
	}
	if m.isCursor(s) {
		left, right = "[", "]"
	}
	frame := styles.MutedStyle
	if s.Selected || m.isCursor(s) {
		frame = lipgloss.NewStyle().Foreground(styles.BorderFocusColor)
	}
	return frame.Render(left) + chip + frame.Render(right)
}

func (m Model) compactBlocks(inner int) []string {
	l := m.layout
	blocks := make([]string, 0, len(l.Categories)+8)

	if l.Close != nil {
		blocks = append(blocks, m.mark(*l.Close, m.iconButton(*l.Close, center(l.Close.Icon, inner))))
	}
	mark := styles.HeaderMarkStyle.Render(l.Header.Mark)
	pad := max(inner-lipgloss.Width(mark), 0) / 2
	blocks = append(blocks, strings.Repeat(" ", pad)+mark)
	blocks = append(blocks, styles.MutedStyle.Render(strings.Repeat("─", inner)))

	for _, c := range l.Categories {
		style := styles.CategoryStyle
		switch {
		case c.Active:
			style = styles.CategoryActiveStyle
		case m.isCursor(c):
			style = styles.IconButtonCursorStyle
		}
		blocks = append(blocks, m.mark(c, style.Render(center(c.Icon, inner))))
	}

	blocks = append(blocks, "")
	if l.CompactGame != nil {
		g := *l.CompactGame
		blocks = append(blocks, m.mark(g, m.iconButton(g, center(g.Icon, inner))))
	}
	toggle := l.PetToggle
	style := styles.PetToggleOffStyle.Strikethrough(false)
	if toggle.On {
		style = styles.PetToggleOnStyle
	}
	if m.isCursor(toggle) {
		style = styles.IconButtonCursorStyle
	}
	blocks = append(blocks, m.mark(toggle, style.Render(center(toggle.Icon, inner))))

	if l.Collapse != nil {
		blocks = append(blocks, "", m.mark(*l.Collapse, m.iconButton(*l.Collapse, center(l.Collapse.Icon, inner))))
	}
	return blocks
}

func (m Model) iconButton(c Control, text string) string {
	if m.isCursor(c) {
		return styles.IconButtonCursorStyle.Render(text)
	}
	return styles.IconButtonStyle.Render(text)
}

func (m Model) mark(c Control, s string) string {
	return zone.Mark(m.ZoneID(c), s)
}

// center pads s on both sides to width cells. Emoji and CJK icons are two
// cells wide.
func center(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// spread places left and right at opposite ends of a width-cell line.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
