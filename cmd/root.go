package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/folio/internal/app"
	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/games"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config directory.
const localConfigPath = ".folio/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "folio",
	Short:   "A terminal portfolio with a pet and a pocket arcade",
	Long:    `folio is a terminal portfolio browser: pick a category from the sidebar, keep a pet companion and launch small games.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/folio/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs to debug.log (or $FOLIO_LOG)")
	rootCmd.Flags().String("lang", "", "display language: en, ja, zh")
	rootCmd.Flags().Bool("collapsed", false, "start with the sidebar collapsed")

	// Bind flags to viper
	_ = viper.BindPFlag("language", rootCmd.Flags().Lookup("lang"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .folio/config.yaml (current directory)
		// 2. ~/.config/folio/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "folio"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if defaultPath := config.DefaultConfigPath(); defaultPath != "" {
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, _ []string) error {
	debug := os.Getenv("FOLIO_DEBUG") != "" || debugFlag
	if debug {
		logPath := os.Getenv("FOLIO_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}

		cleanup, err := log.InitWithTeaLog(logPath, "folio")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()

		if level, err := log.ParseLevel(os.Getenv("FOLIO_LOG_LEVEL")); err == nil {
			log.SetMinLevel(level)
		} else {
			log.Warn(log.CatConfig, "ignoring FOLIO_LOG_LEVEL", "error", err)
		}

		log.Info(log.CatConfig, "folio starting", "debug", true, "logPath", logPath, "config", viper.ConfigFileUsed())
	}

	if collapsed, _ := cmd.Flags().GetBool("collapsed"); collapsed {
		cfg.Sidebar.Collapsed = true
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := styles.ApplyTheme(cfg.Theme.StylesTheme()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	configPath := configFilePath()
	opts := app.Options{
		Config:     cfg,
		ConfigPath: configPath,

		LanguagePinned: cmd.Flags().Changed("lang"),
	}
	if cfg.Games.History && configPath != "" {
		history, err := games.OpenHistory(config.HistoryPath(configPath))
		if err != nil {
			// The launcher works without history
			log.ErrorErr(log.CatGame, "opening play history", err)
		} else {
			defer func() { _ = history.Close() }()
			opts.History = history
		}
	}

	model := app.New(opts)
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// configFilePath is where sidebar state is saved: the file that was read,
// or the default user config when none was.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return config.DefaultConfigPath()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
