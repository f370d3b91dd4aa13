// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Same color for both modes once a theme is applied
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:   &TextPrimaryColor,
		TokenTextMuted:     &TextMutedColor,
		TokenTextInverse:   &TextInverseColor,
		TokenBorderDefault: &BorderDefaultColor,
		TokenBorderFocus:   &BorderFocusColor,
		TokenAccentActive:  &AccentActiveColor,
		TokenAccentHover:   &AccentHoverColor,
		TokenAccentPet:     &AccentPetColor,
		TokenAccentBadge:   &AccentBadgeColor,
		TokenToastSuccess:  &ToastBorderSuccessColor,
		TokenToastError:    &ToastBorderErrorColor,
		TokenToastInfo:     &ToastBorderInfoColor,
	}

	for token, target := range targets {
		if c, ok := colors[token]; ok {
			*target = makeColor(c)
		}
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// lipgloss.Style objects capture colors at creation time.
func rebuildStyles() {
	HeaderTitleStyle = lipgloss.NewStyle().Bold(true).Italic(true).Foreground(TextPrimaryColor)
	HeaderTagStyle = lipgloss.NewStyle().Bold(true).
		Foreground(TextInverseColor).
		Background(TextPrimaryColor)
	HeaderSubtitleStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	HeaderMarkStyle = lipgloss.NewStyle().Bold(true).
		Foreground(TextInverseColor).
		Background(TextPrimaryColor).
		Padding(0, 1)

	CategoryStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	CategoryActiveStyle = lipgloss.NewStyle().Bold(true).
		Foreground(TextInverseColor).
		Background(AccentActiveColor)
	CategoryCursorStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Underline(true)
	IndexStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	IndexActiveStyle = lipgloss.NewStyle().Bold(true).
		Foreground(TextInverseColor).
		Background(AccentActiveColor)

	PanelTagStyle = lipgloss.NewStyle().Bold(true).
		Foreground(TextInverseColor).
		Background(TextPrimaryColor).
		Padding(0, 1)
	PanelPetTagStyle = PanelTagStyle.Background(AccentPetColor)
	PanelHintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	GameRowStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	GameRowCursorStyle = lipgloss.NewStyle().Bold(true).
		Foreground(TextInverseColor).
		Background(AccentHoverColor)

	PetToggleOnStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentPetColor)
	PetToggleOffStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Strikethrough(true)
	BadgeStyle = lipgloss.NewStyle().Foreground(AccentBadgeColor)

	IconButtonStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	IconButtonCursorStyle = lipgloss.NewStyle().
		Foreground(TextInverseColor).
		Background(AccentHoverColor)

	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	FooterStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Faint(true)

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentHoverColor)
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}

// IsValidHexColor reports whether s is a #RGB or #RRGGBB color.
func IsValidHexColor(s string) bool {
	return isValidHexColor(s)
}
