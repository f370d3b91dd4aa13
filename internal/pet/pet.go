// Package pet draws the companion shown next to the content pane.
package pet

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/i18n"
)

// Frames is the number of animation frames per sprite.
const Frames = 2

// FrameInterval is the animation period.
const FrameInterval = 700 * time.Millisecond

// sprites are 7 cells wide and 3 lines tall.
var sprites = map[catalog.PetSkinID][Frames][]string{
	"cat": {
		{` /\_/\ `, `( o.o )`, ` > ^ < `},
		{` /\_/\ `, `( -.- )`, ` > ^ < `},
	},
	"dog": {
		{` /^ ^\ `, `( o o )`, `  \w/  `},
		{` /^ ^\ `, `( ^ ^ )`, `  \w/  `},
	},
	"bot": {
		{` [===] `, ` |o_o| `, ` /| |\ `},
		{` [===] `, ` |-_-| `, ` /| |\ `},
	},
}

// blob is used for slimes and any skin without a sprite of its own.
var blob = [Frames][]string{
	{`  ___  `, ` (o o) `, `(_____)`},
	{`       `, ` (o o) `, `(_____)`},
}

// Sprite returns the raw lines of a skin's frame. frame wraps around.
func Sprite(id catalog.PetSkinID, frame int) []string {
	frames, ok := sprites[id]
	if !ok {
		frames = blob
	}
	f := frame % Frames
	if f < 0 {
		f += Frames
	}
	return frames[f]
}

// Render draws the skin's sprite tinted with its avatar color.
func Render(skin catalog.PetSkin, frame int) string {
	style := lipgloss.NewStyle()
	if skin.AvatarColor != "" {
		style = style.Foreground(lipgloss.Color(skin.AvatarColor))
	}
	return style.Render(strings.Join(Sprite(skin.ID, frame), "\n"))
}

// Speech returns the pet's line for the active category.
func Speech(t i18n.Translator, id catalog.CategoryID) string {
	key := "pet.speech." + string(id)
	if s := t.T(key); s != key {
		return s
	}
	return t.T("pet.speech.default")
}

// Bubble wraps text to width cells and draws a speech bubble around it.
// Words break at spaces; text without spaces (Japanese, Chinese) is cut at
// the cell limit.
func Bubble(text string, width int) string {
	inner := max(width-4, 8)
	wrapped := wrap.String(wordwrap.String(text, inner), inner)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(wrapped)
}

// TickMsg advances the animation.
type TickMsg struct{}

// Tick schedules the next animation frame.
func Tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
