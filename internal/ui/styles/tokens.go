// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"
	TokenTextInverse ColorToken = "text.inverse"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Accents
	TokenAccentActive ColorToken = "accent.active" // active category fill
	TokenAccentHover  ColorToken = "accent.hover"  // cursor / arcade highlight
	TokenAccentPet    ColorToken = "accent.pet"    // partner panel tag and visible toggle
	TokenAccentBadge  ColorToken = "accent.badge"  // selected swatch badge

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextMuted,
		TokenTextInverse,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenAccentActive,
		TokenAccentHover,
		TokenAccentPet,
		TokenAccentBadge,

		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
	}
}
