package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults registers Defaults() on v so keys missing from the file keep
// their default values after Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("language", d.Language)
	v.SetDefault("ui.breakpoint", d.UI.Breakpoint)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.show_help", d.UI.ShowHelp)
	v.SetDefault("ui.watch_config", d.UI.WatchConfig)
	v.SetDefault("sidebar.category", d.Sidebar.Category)
	v.SetDefault("sidebar.pet", d.Sidebar.Pet)
	v.SetDefault("sidebar.pet_visible", d.Sidebar.PetVisible)
	v.SetDefault("sidebar.collapsed", d.Sidebar.Collapsed)
	v.SetDefault("games.history", d.Games.History)
}

// Load reads and validates the config file at path with a private viper
// instance. Used for hot reload, where the global instance holds flag
// bindings that must not be re-applied.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
