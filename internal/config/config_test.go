package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/folio/internal/catalog"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestDefaults_SidebarState(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, "ALL", cfg.Sidebar.Category)
	require.True(t, cfg.Sidebar.PetVisible)
	require.False(t, cfg.Sidebar.Collapsed, "sidebar defaults to expanded")
	require.Equal(t, DefaultBreakpoint, cfg.UI.Breakpoint)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad language", func(c *Config) { c.Language = "klingon" }, "language"},
		{"negative breakpoint", func(c *Config) { c.UI.Breakpoint = -1 }, "ui.breakpoint"},
		{"bad markdown style", func(c *Config) { c.UI.MarkdownStyle = "sepia" }, "ui.markdown_style"},
		{"unknown preset", func(c *Config) { c.Theme.Preset = "dracula" }, "theme.preset"},
		{"bad color", func(c *Config) {
			c.Theme.Colors = map[string]any{"accent": map[string]any{"pet": "pink"}}
		}, "theme.colors.accent.pet"},
		{"duplicate game", func(c *Config) {
			c.Catalog.Games = []catalog.Game{{ID: "snake"}, {ID: "snake"}}
		}, "duplicate id"},
		{"bad avatar color", func(c *Config) {
			c.Catalog.PetSkins = []catalog.PetSkin{{ID: "fox", AvatarColor: "orange"}}
		}, "invalid avatar_color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFlattenedColors_NestedAndDotted(t *testing.T) {
	theme := ThemeConfig{Colors: map[string]any{
		"accent":       map[string]any{"pet": "#FF00FF"},
		"text.primary": "#FFFFFF",
		"border":       map[any]any{"focus": "#FFFF00"},
	}}

	require.Equal(t, map[string]string{
		"accent.pet":   "#FF00FF",
		"text.primary": "#FFFFFF",
		"border.focus": "#FFFF00",
	}, theme.FlattenedColors())
}

func TestBuildCatalog_AppliesOverrides(t *testing.T) {
	cfg := Defaults()
	cfg.Catalog.Games = []catalog.Game{{ID: "pong", Name: "Pong"}}

	cat := cfg.BuildCatalog()

	require.Equal(t, cfg.Catalog.Games, cat.Games)
	require.Equal(t, catalog.DefaultPetSkins(), cat.PetSkins)
}

func TestDefaultConfigTemplate_ParsesToDefaults(t *testing.T) {
	var parsed struct {
		Language string        `yaml:"language"`
		Sidebar  SidebarConfig `yaml:"sidebar"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))

	require.Equal(t, Defaults().Language, parsed.Language)
	require.Equal(t, Defaults().Sidebar, parsed.Sidebar)
}

func TestWriteDefaultConfig_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".folio", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
