// Package config provides configuration types and defaults for folio.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/i18n"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/ui/styles"
)

// Config holds all configuration options for folio.
type Config struct {
	Language string        `mapstructure:"language"`
	UI       UIConfig      `mapstructure:"ui"`
	Theme    ThemeConfig   `mapstructure:"theme"`
	Sidebar  SidebarConfig `mapstructure:"sidebar"`
	Catalog  CatalogConfig `mapstructure:"catalog"`
	Games    GamesConfig   `mapstructure:"games"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// Breakpoint is the terminal width (columns) below which the layout is
	// treated as a small viewport: the sidebar shows its close affordance
	// instead of the collapse affordance.
	Breakpoint    int    `mapstructure:"breakpoint"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default), "light" or "ascii"
	ShowHelp      bool   `mapstructure:"show_help"`
	WatchConfig   bool   `mapstructure:"watch_config"` // Reload theme/catalog on file change
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "monochrome", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens. Supports both nested YAML
	// (accent: {pet: "#FF00FF"}) and quoted dot notation ("accent.pet").
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// SidebarConfig is the persisted view state owned by the app.
type SidebarConfig struct {
	Category   string `mapstructure:"category" yaml:"category"`
	Pet        string `mapstructure:"pet" yaml:"pet"`
	PetVisible bool   `mapstructure:"pet_visible" yaml:"pet_visible"`
	Collapsed  bool   `mapstructure:"collapsed" yaml:"collapsed"`
}

// CatalogConfig replaces the built-in pet skin and game catalogs when set.
type CatalogConfig struct {
	PetSkins []catalog.PetSkin `mapstructure:"pet_skins"`
	Games    []catalog.Game    `mapstructure:"games"`
}

// GamesConfig holds game host options.
type GamesConfig struct {
	// History records launched games in history.db next to the config
	// file so the recently played list survives restarts.
	History bool `mapstructure:"history"`
}

// HistoryPath returns the play history database beside configPath.
func HistoryPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "history.db")
}

// DefaultBreakpoint mirrors a "md" breakpoint in terminal columns.
const DefaultBreakpoint = 80

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Language: string(i18n.English),
		UI: UIConfig{
			Breakpoint:    DefaultBreakpoint,
			MarkdownStyle: "dark",
			ShowHelp:      true,
			WatchConfig:   true,
		},
		Sidebar: SidebarConfig{
			Category:   string(catalog.CategoryAll),
			Pet:        "cat",
			PetVisible: true,
			Collapsed:  false,
		},
		Games: GamesConfig{
			History: true,
		},
	}
}

// BuildCatalog returns the default catalog with configured overrides applied.
func (c Config) BuildCatalog() catalog.Catalog {
	return catalog.Default().WithOverrides(c.Catalog.PetSkins, c.Catalog.Games)
}

// StylesTheme converts to the styles package's mirror type.
func (t ThemeConfig) StylesTheme() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.FlattenedColors()}
}

// Validate checks the configuration for errors.
// Empty values are valid and fall back to defaults.
func Validate(cfg Config) error {
	if _, err := i18n.ParseLanguage(cfg.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	if cfg.UI.Breakpoint < 0 {
		return fmt.Errorf("ui.breakpoint must not be negative, got %d", cfg.UI.Breakpoint)
	}
	switch cfg.UI.MarkdownStyle {
	case "", "dark", "light", "ascii":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\", \"light\" or \"ascii\", got %q", cfg.UI.MarkdownStyle)
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	if err := ValidateCatalog(cfg.Catalog); err != nil {
		return err
	}
	return nil
}

// ValidateTheme checks preset names and color overrides.
func ValidateTheme(theme ThemeConfig) error {
	if theme.Preset != "" {
		if _, ok := styles.Presets[theme.Preset]; !ok {
			return fmt.Errorf("theme.preset: unknown preset %q", theme.Preset)
		}
	}
	for key, value := range theme.FlattenedColors() {
		if !styles.IsValidHexColor(value) {
			return fmt.Errorf("theme.colors.%s: invalid hex color %q", key, value)
		}
	}
	return nil
}

// ValidateCatalog checks catalog overrides for duplicate or missing ids.
func ValidateCatalog(c CatalogConfig) error {
	cat := catalog.Catalog{PetSkins: c.PetSkins, Games: c.Games}
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	for i, s := range c.PetSkins {
		if s.AvatarColor != "" && !styles.IsValidHexColor(s.AvatarColor) {
			return fmt.Errorf("catalog: pet skin %d (%s): invalid avatar_color %q", i, s.ID, s.AvatarColor)
		}
	}
	return nil
}

// DefaultConfigPath returns ~/.config/folio/config.yaml or empty string if
// the home dir is unavailable.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "folio", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# folio configuration

# Display language: en (default), ja, zh
language: en

# UI settings
ui:
  breakpoint: 80          # Below this width the sidebar shows a close button instead of collapse
  markdown_style: dark    # Markdown rendering style: "dark" (default), "light" or "ascii"
  show_help: true         # Show key help at the bottom
  watch_config: true      # Reload theme and catalogs when this file changes

# Theme configuration
theme:
  # preset: monochrome
  #
  # Available presets:
  #   default        - Neon battle menu
  #   monochrome     - Greyscale, no accents
  #   high-contrast  - Maximum contrast
  #
  # Override specific colors:
  # colors:
  #   accent.active: "#5ED3F3"
  #   accent.pet: "#FF6B9D"

# Game launcher
games:
  history: true           # Remember recently played games in history.db

# Sidebar state. Updated automatically as you navigate.
sidebar:
  category: ALL
  pet: cat
  pet_visible: true
  collapsed: false

# Catalog overrides (optional). Replaces the built-in lists when set.
# catalog:
#   pet_skins:
#     - id: fox
#       name: Kitsune
#       avatar_color: "#FF9F43"
#   games:
#     - id: snake
#       name: Snake
#       icon: "🐍"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
