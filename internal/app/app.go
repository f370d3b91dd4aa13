// Package app contains the root application model.
package app

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/games"
	"github.com/zjrosen/folio/internal/i18n"
	"github.com/zjrosen/folio/internal/keys"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/pet"
	"github.com/zjrosen/folio/internal/ui/content"
	"github.com/zjrosen/folio/internal/ui/sidebar"
	"github.com/zjrosen/folio/internal/ui/styles"
	"github.com/zjrosen/folio/internal/ui/toaster"
	"github.com/zjrosen/folio/internal/watcher"
)

// gameOpenTimeout bounds a single call into the game host.
const gameOpenTimeout = 5 * time.Second

type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

// Options configures New.
type Options struct {
	Config     config.Config
	ConfigPath string

	// Host opens games. Defaults to a Launcher over the configured catalog.
	Host games.Host

	// History backs the launcher's recently played list. Optional.
	History games.History

	// Save persists sidebar state. Defaults to config.SaveSidebarState.
	Save func(path string, state config.SidebarConfig) error

	// Load reads the config file on hot reload. Defaults to config.Load.
	Load func(path string) (config.Config, error)

	// LanguagePinned reports that Config.Language came from the command
	// line. Reloads keep it instead of the file's value.
	LanguagePinned bool
}

// Model is the root application state. It owns the sidebar view state and
// passes it down as props; the sidebar only reports intents back.
type Model struct {
	cfg        config.Config
	configPath string

	state       State
	catalog     catalog.Catalog
	translator  i18n.Table
	sidebarOpen bool
	focus       focusArea

	sidebar sidebar.Model
	content content.Model
	help    help.Model
	toaster toaster.Model

	launcher *games.Launcher
	host     games.Host
	saver    *stateSaver
	load     func(path string) (config.Config, error)

	languagePinned bool

	width  int
	height int

	watcherHandle *watcher.Watcher
	changes       <-chan struct{}
}

// New creates the root model. The config watcher is started when hot
// reload is enabled and a config path is known; failures only disable it.
func New(opts Options) Model {
	cfg := opts.Config
	lang, err := i18n.ParseLanguage(cfg.Language)
	if err != nil {
		log.Warn(log.CatConfig, "falling back to English", "language", cfg.Language)
		lang = i18n.English
	}

	cat := cfg.BuildCatalog()
	var launcherOpts []games.Option
	if opts.History != nil {
		launcherOpts = append(launcherOpts, games.WithHistory(opts.History))
	}
	launcher := games.NewLauncher(cat.Games, launcherOpts...)
	host := opts.Host
	if host == nil {
		host = launcher
	}
	save := opts.Save
	if save == nil {
		save = config.SaveSidebarState
	}
	load := opts.Load
	if load == nil {
		load = config.Load
	}

	m := Model{
		cfg:         cfg,
		configPath:  opts.ConfigPath,
		state:       StateFromConfig(cfg.Sidebar),
		catalog:     cat,
		translator:  i18n.New(lang),
		sidebarOpen: true,
		focus:       focusSidebar,
		help:        help.New(),
		toaster:     toaster.New(),
		launcher:    launcher,
		host:        host,
		saver:       &stateSaver{path: opts.ConfigPath, save: save},
		load:        load,

		languagePinned: opts.LanguagePinned,
	}
	m.sidebar = sidebar.New(m.sidebarProps()).Focus()
	m.content = content.New(m.contentProps())

	if cfg.UI.WatchConfig && opts.ConfigPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(opts.ConfigPath))
		if err == nil {
			ch, err := w.Start()
			if err == nil {
				m.watcherHandle = w
				m.changes = ch
			} else {
				log.ErrorErr(log.CatWatcher, "starting config watcher", err, "path", opts.ConfigPath)
				_ = w.Stop()
			}
		} else {
			log.ErrorErr(log.CatWatcher, "creating config watcher", err)
		}
	}

	return m
}

// State returns the current sidebar view state.
func (m Model) State() State {
	return m.state
}

// SidebarOpen reports whether the sidebar is shown. On large viewports it
// is always shown.
func (m Model) SidebarOpen() bool {
	return m.sidebarOpen || !m.smallViewport()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.content.Init(), waitForChange(m.changes))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.relayout(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case sidebar.SelectCategoryMsg, sidebar.SelectPetMsg,
		sidebar.TogglePetVisibilityMsg, sidebar.ToggleCollapseMsg:
		next, changed := m.state.Apply(msg)
		if !changed {
			return m, nil
		}
		log.Debug(log.CatUI, "state changed", "msg", fmt.Sprintf("%T", msg))
		m.state = next
		return m.relayout(), m.persist()

	case sidebar.OpenGameMsg:
		log.Info(log.CatGame, "opening game", "id", msg.ID)
		return m, openGame(m.host, msg.ID)

	case sidebar.CloseMsg:
		m.sidebarOpen = false
		m = m.setFocus(focusContent)
		return m.relayout(), nil

	case sidebar.FocusMsg:
		return m.setFocus(focusSidebar), nil

	case gameOpenedMsg:
		m.content = m.content.SetProps(m.contentProps())
		text := fmt.Sprintf(m.translator.T("toast.game_started"), msg.Session.Game.Name)
		return m.showToast(text, toaster.StyleSuccess)

	case gameFailedMsg:
		log.ErrorErr(log.CatGame, "opening game failed", msg.Err, "id", msg.ID)
		keyName := "toast.game_failed"
		if errors.Is(msg.Err, games.ErrUnknownGame) {
			keyName = "toast.game_unknown"
		}
		return m.showToast(fmt.Sprintf(m.translator.T(keyName), msg.ID), toaster.StyleError)

	case stateSavedMsg:
		if msg.Err != nil {
			log.ErrorErr(log.CatConfig, "saving sidebar state", msg.Err, "path", m.configPath)
			return m.showToast(fmt.Sprintf(m.translator.T("toast.save_error"), msg.Err), toaster.StyleError)
		}
		return m, nil

	case configChangedMsg:
		log.Info(log.CatConfig, "config changed on disk", "path", m.configPath)
		return m, tea.Batch(reloadConfig(m.load, m.configPath), waitForChange(m.changes))

	case configLoadedMsg:
		if msg.Err != nil {
			log.ErrorErr(log.CatConfig, "reloading config", msg.Err, "path", m.configPath)
			return m.showToast(fmt.Sprintf(m.translator.T("toast.config_error"), msg.Err), toaster.StyleError)
		}
		cfg := m.keepRuntimeFields(msg.Config)
		if reflect.DeepEqual(cfg, m.cfg) {
			// Our own state save touched the file.
			return m, nil
		}
		m = m.applyConfig(cfg)
		return m.showToast(m.translator.T("toast.config_reload"), toaster.StyleInfo)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case pet.TickMsg:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.App.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.App.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.relayout(), nil

	case key.Matches(msg, keys.App.Language):
		m.translator = m.translator.Cycle()
		log.Info(log.CatI18n, "language changed", "lang", m.translator.Language())
		return m.relayout(), nil

	case key.Matches(msg, keys.App.OpenSidebar):
		if !m.SidebarOpen() {
			m.sidebarOpen = true
			m = m.setFocus(focusSidebar)
			return m.relayout(), nil
		}
		if m.focus == focusSidebar {
			return m.setFocus(focusContent), nil
		}
		return m.setFocus(focusSidebar), nil

	case key.Matches(msg, keys.App.FocusSidebar):
		if m.SidebarOpen() {
			return m.setFocus(focusSidebar), nil
		}
		return m, nil

	case key.Matches(msg, keys.App.FocusContent):
		return m.setFocus(focusContent), nil
	}

	var cmd tea.Cmd
	if m.focus == focusSidebar && m.SidebarOpen() {
		m.sidebar, cmd = m.sidebar.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.SidebarOpen() {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		if cmd != nil {
			return m, cmd
		}
		if m.sidebar.Contains(msg) {
			return m, nil
		}
	}

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
		m = m.setFocus(focusContent)
	}
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m Model) setFocus(f focusArea) Model {
	m.focus = f
	if f == focusSidebar {
		m.sidebar = m.sidebar.Focus()
		m.content = m.content.Blur()
	} else {
		m.sidebar = m.sidebar.Blur()
		m.content = m.content.Focus()
	}
	return m
}

func (m Model) smallViewport() bool {
	return m.width < m.cfg.UI.Breakpoint
}

func (m Model) sidebarProps() sidebar.Props {
	return sidebar.Props{
		Catalog:        m.catalog,
		ActiveCategory: m.state.ActiveCategory,
		CurrentPet:     m.state.CurrentPet,
		PetVisible:     m.state.PetVisible,
		Collapsed:      m.state.Collapsed,
		Collapsible:    true,
		ViewportWidth:  m.width,
		Breakpoint:     m.cfg.UI.Breakpoint,
		Translator:     m.translator,
	}
}

func (m Model) contentProps() content.Props {
	return content.Props{
		Catalog:        m.catalog,
		ActiveCategory: m.state.ActiveCategory,
		CurrentPet:     m.state.CurrentPet,
		PetVisible:     m.state.PetVisible,
		Recent:         m.launcher.Recent(),
		Translator:     m.translator,
		MarkdownStyle:  m.cfg.UI.MarkdownStyle,
	}
}

// relayout pushes the current state down as props and recomputes pane
// sizes.
func (m Model) relayout() Model {
	m.sidebar = m.sidebar.SetProps(m.sidebarProps())
	m.content = m.content.SetProps(m.contentProps())
	m.help.Width = m.width

	bodyHeight := m.height
	if m.cfg.UI.ShowHelp {
		bodyHeight -= lipgloss.Height(m.help.View(keys.Help()))
	}
	bodyHeight = max(bodyHeight, 1)

	contentWidth := m.width
	if m.SidebarOpen() {
		sidebarWidth := sidebar.DefaultWidth(m.sidebar.Layout().Mode)
		m.sidebar = m.sidebar.SetSize(sidebarWidth, bodyHeight).SetOrigin(0, 0)
		contentWidth -= sidebarWidth
	} else if m.focus == focusSidebar {
		m = m.setFocus(focusContent)
	}
	m.content = m.content.SetSize(max(contentWidth, 1), bodyHeight)
	return m
}

// keepRuntimeFields copies the fields the running app owns onto a config
// read from disk: the live sidebar state and any command-line overrides.
func (m Model) keepRuntimeFields(cfg config.Config) config.Config {
	cfg.Sidebar = m.cfg.Sidebar
	if m.languagePinned {
		cfg.Language = m.cfg.Language
	}
	return cfg
}

// applyConfig re-applies a reloaded config. The sidebar section is ignored:
// the running app is the source of truth for view state.
func (m Model) applyConfig(cfg config.Config) Model {
	if err := styles.ApplyTheme(cfg.Theme.StylesTheme()); err != nil {
		log.ErrorErr(log.CatConfig, "applying theme", err)
	}
	if lang, err := i18n.ParseLanguage(cfg.Language); err == nil && cfg.Language != m.cfg.Language {
		m.translator = i18n.New(lang)
	}

	m.cfg = cfg
	m.catalog = cfg.BuildCatalog()
	m.launcher.SetGames(m.catalog.Games)
	m.content = m.content.Invalidate()
	return m.relayout()
}

func (m Model) showToast(text string, style toaster.Style) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, style)
	return m, cmd
}

// persist writes the current state to the config file.
func (m Model) persist() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	seq := m.saver.issue()
	state := m.state.Config()
	saver := m.saver
	return func() tea.Msg {
		return stateSavedMsg{Err: saver.write(seq, state)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.content.View()
	if m.SidebarOpen() {
		view = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), view)
	}
	if m.cfg.UI.ShowHelp {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.help.View(keys.Help()))
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	return zone.Scan(view)
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
		m.watcherHandle = nil
	}
	return nil
}

// stateSaver serializes config writes. Saves run as commands and may
// finish out of order; a save older than the last written one is skipped.
type stateSaver struct {
	mu      sync.Mutex
	path    string
	save    func(path string, state config.SidebarConfig) error
	issued  int
	written int
}

func (s *stateSaver) issue() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

func (s *stateSaver) write(seq int, state config.SidebarConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.written {
		log.Debug(log.CatConfig, "skipping stale save", "seq", seq, "written", s.written)
		return nil
	}
	s.written = seq
	return s.save(s.path, state)
}
