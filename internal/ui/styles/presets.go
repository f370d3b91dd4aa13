// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"monochrome":    MonochromePreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset is the neon "battle menu" scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default folio theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary: "#EEEEEE",
		TokenTextMuted:   "#6C6C6C",
		TokenTextInverse: "#000000",

		TokenBorderDefault: "#8C8C8C",
		TokenBorderFocus:   "#FFFFFF",

		TokenAccentActive: "#5ED3F3",
		TokenAccentHover:  "#CCFF00",
		TokenAccentPet:    "#FF6B9D",
		TokenAccentBadge:  "#CCFF00",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
	},
}

// MonochromePreset drops every accent to greys.
var MonochromePreset = Preset{
	Name:        "monochrome",
	Description: "Greyscale, no accents",
	Colors: map[ColorToken]string{
		TokenAccentActive: "#DDDDDD",
		TokenAccentHover:  "#AAAAAA",
		TokenAccentPet:    "#BBBBBB",
		TokenAccentBadge:  "#FFFFFF",
		TokenToastSuccess: "#DDDDDD",
		TokenToastError:   "#FFFFFF",
		TokenToastInfo:    "#AAAAAA",
	},
}

// HighContrastPreset maximizes contrast for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextMuted:     "#C0C0C0",
		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",
		TokenAccentActive:  "#00FFFF",
		TokenAccentHover:   "#FFFF00",
		TokenAccentPet:     "#FF00FF",
		TokenAccentBadge:   "#FFFF00",
	},
}
