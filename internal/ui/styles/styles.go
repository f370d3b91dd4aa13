// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#EEEEEE"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#9A9A9A", Dark: "#6C6C6C"}
	TextInverseColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#8C8C8C"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	// Accents
	AccentActiveColor = lipgloss.AdaptiveColor{Light: "#5ED3F3", Dark: "#5ED3F3"} // jinx blue
	AccentHoverColor  = lipgloss.AdaptiveColor{Light: "#CCFF00", Dark: "#CCFF00"} // neon green
	AccentPetColor    = lipgloss.AdaptiveColor{Light: "#FF6B9D", Dark: "#FF6B9D"} // jinx pink
	AccentBadgeColor  = lipgloss.AdaptiveColor{Light: "#CCFF00", Dark: "#CCFF00"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
)

// Styles derived from the colors above. Rebuilt by ApplyTheme.
var (
	HeaderTitleStyle    lipgloss.Style
	HeaderTagStyle      lipgloss.Style
	HeaderSubtitleStyle lipgloss.Style
	HeaderMarkStyle     lipgloss.Style

	CategoryStyle       lipgloss.Style
	CategoryActiveStyle lipgloss.Style
	CategoryCursorStyle lipgloss.Style
	IndexStyle          lipgloss.Style
	IndexActiveStyle    lipgloss.Style

	PanelTagStyle    lipgloss.Style
	PanelPetTagStyle lipgloss.Style
	PanelHintStyle   lipgloss.Style

	GameRowStyle       lipgloss.Style
	GameRowCursorStyle lipgloss.Style

	PetToggleOnStyle  lipgloss.Style
	PetToggleOffStyle lipgloss.Style
	BadgeStyle        lipgloss.Style

	IconButtonStyle       lipgloss.Style
	IconButtonCursorStyle lipgloss.Style

	MutedStyle  lipgloss.Style
	FooterStyle lipgloss.Style

	// Selection indicator style (used for ">" prefix on the focused control)
	SelectionIndicatorStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}
