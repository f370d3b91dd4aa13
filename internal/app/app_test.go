package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/games"
	"github.com/zjrosen/folio/internal/i18n"
	"github.com/zjrosen/folio/internal/ui/sidebar"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// saveRecorder captures persisted sidebar states.
type saveRecorder struct {
	mu     sync.Mutex
	states []config.SidebarConfig
	err    error
}

func (r *saveRecorder) save(_ string, state config.SidebarConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
	return r.err
}

func (r *saveRecorder) saved() []config.SidebarConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]config.SidebarConfig(nil), r.states...)
}

type mockHost struct {
	mock.Mock
}

func (h *mockHost) Open(ctx context.Context, id catalog.GameID) (games.Session, error) {
	args := h.Called(ctx, id)
	return args.Get(0).(games.Session), args.Error(1)
}

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.UI.WatchConfig = false
	return cfg
}

// createTestModel creates a sized Model that persists into rec.
func createTestModel(t *testing.T, rec *saveRecorder, width int) Model {
	t.Helper()
	m := New(Options{
		Config:     testConfig(),
		ConfigPath: "folio-test.yaml",
		Save:       rec.save,
	})
	t.Cleanup(func() { _ = m.Close() })
	return update(t, m, tea.WindowSizeMsg{Width: width, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	newModel, _ := m.Update(msg)
	return newModel.(Model)
}

// updateCmd applies msg and then feeds the resulting command's message back.
func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Msg) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	m = newModel.(Model)
	require.NotNil(t, cmd, "expected a command for %T", msg)
	out := cmd()
	newModel, _ = m.Update(out)
	return newModel.(Model), out
}

func TestApp_InitialStateFromConfig(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	assert.Equal(t, catalog.CategoryAll, m.State().ActiveCategory)
	assert.Equal(t, catalog.PetSkinID("cat"), m.State().CurrentPet)
	assert.True(t, m.State().PetVisible)
	assert.False(t, m.State().Collapsed)
	assert.True(t, m.sidebar.Focused())
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)
	m = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 60})

	assert.Equal(t, 150, m.width)
	assert.Equal(t, 60, m.height)
	assert.Equal(t, 150, m.sidebar.Props().ViewportWidth)
}

func TestApp_SelectCategoryPersists(t *testing.T) {
	rec := &saveRecorder{}
	m := createTestModel(t, rec, 120)

	m, out := updateCmd(t, m, sidebar.SelectCategoryMsg{ID: catalog.CategoryAI})
	require.Equal(t, stateSavedMsg{}, out)

	assert.Equal(t, catalog.CategoryAI, m.State().ActiveCategory)
	assert.Equal(t, catalog.CategoryID("AI"), m.sidebar.Props().ActiveCategory, "props follow state")
	require.Len(t, rec.saved(), 1)
	assert.Equal(t, "AI", rec.saved()[0].Category)
}

func TestApp_ToggleCollapseKeepsOtherState(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)
	before := m.State()

	m = update(t, m, sidebar.ToggleCollapseMsg{})

	after := m.State()
	assert.True(t, after.Collapsed)
	assert.Equal(t, before.ActiveCategory, after.ActiveCategory)
	assert.Equal(t, before.CurrentPet, after.CurrentPet)
	assert.Equal(t, before.PetVisible, after.PetVisible)
	assert.Equal(t, sidebar.ModeCompact, m.sidebar.Layout().Mode)
	assert.Equal(t, sidebar.CompactWidth, m.sidebar.Width())
}

func TestApp_SelectSamePetIsNoop(t *testing.T) {
	rec := &saveRecorder{}
	m := createTestModel(t, rec, 120)

	newModel, cmd := m.Update(sidebar.SelectPetMsg{ID: "cat"})
	assert.Nil(t, cmd, "no save for an unchanged state")
	assert.Equal(t, m.State(), newModel.(Model).State())
}

func TestApp_NoConfigPathSkipsPersist(t *testing.T) {
	m := New(Options{Config: testConfig()})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	newModel, cmd := m.Update(sidebar.TogglePetVisibilityMsg{})
	assert.Nil(t, cmd)
	assert.False(t, newModel.(Model).State().PetVisible)
}

func TestApp_SaveErrorShowsToast(t *testing.T) {
	rec := &saveRecorder{err: errors.New("disk full")}
	m := createTestModel(t, rec, 120)

	m, out := updateCmd(t, m, sidebar.TogglePetVisibilityMsg{})
	require.Error(t, out.(stateSavedMsg).Err)

	assert.True(t, m.toaster.Visible())
	assert.Contains(t, m.toaster.Message(), "disk full")
}

func TestStateSaver_SkipsStaleWrites(t *testing.T) {
	rec := &saveRecorder{}
	s := &stateSaver{path: "x.yaml", save: rec.save}

	first := s.issue()
	second := s.issue()

	require.NoError(t, s.write(second, config.SidebarConfig{Category: "AI"}))
	require.NoError(t, s.write(first, config.SidebarConfig{Category: "ALL"}))

	saved := rec.saved()
	require.Len(t, saved, 1)
	assert.Equal(t, "AI", saved[0].Category, "latest state wins")
}

func TestApp_CloseAndReopenOnSmallViewport(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 60)
	require.True(t, m.SidebarOpen())
	require.NotNil(t, m.sidebar.Layout().Close)

	m = update(t, m, sidebar.CloseMsg{})
	assert.False(t, m.SidebarOpen())
	assert.False(t, m.sidebar.Focused())
	assert.Equal(t, focusContent, m.focus)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.SidebarOpen())
	assert.True(t, m.sidebar.Focused())
}

func TestApp_EscClosesThroughSidebar(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 60)

	m, out := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, sidebar.CloseMsg{}, out)
	assert.False(t, m.SidebarOpen())
}

func TestApp_LargeViewportAlwaysShowsSidebar(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)
	m = update(t, m, sidebar.CloseMsg{})

	assert.True(t, m.SidebarOpen())
}

func TestApp_TabSwitchesFocus(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusContent, m.focus)
	assert.False(t, m.sidebar.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	assert.Equal(t, focusSidebar, m.focus)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	assert.Equal(t, focusContent, m.focus)

	m = update(t, m, sidebar.FocusMsg{})
	assert.Equal(t, focusSidebar, m.focus)
}

func TestApp_KeyboardSelectsCategory(t *testing.T) {
	rec := &saveRecorder{}
	m := createTestModel(t, rec, 120)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m, out := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, sidebar.SelectCategoryMsg{ID: catalog.CategoryAI}, out)
	assert.Equal(t, catalog.CategoryAI, m.State().ActiveCategory)
}

func TestApp_ClickCategory(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	var target sidebar.Control
	for _, c := range m.sidebar.Layout().Categories {
		if c.ID == string(catalog.CategoryDesign) {
			target = c
		}
	}

	var z *zone.ZoneInfo
	for retries := 0; retries < 10; retries++ {
		_ = m.View()
		time.Sleep(time.Millisecond)
		z = zone.Get(m.sidebar.ZoneID(target))
		if z != nil && !z.IsZero() {
			break
		}
	}
	require.NotNil(t, z)
	require.False(t, z.IsZero())

	click := tea.MouseMsg{X: z.StartX + 2, Y: z.StartY, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
	m, out := updateCmd(t, m, click)
	assert.Equal(t, sidebar.SelectCategoryMsg{ID: catalog.CategoryDesign}, out)
	assert.Equal(t, catalog.CategoryDesign, m.State().ActiveCategory)
}

func TestApp_ClickContentFocusesContent(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	m = update(t, m, tea.MouseMsg{X: 80, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Equal(t, focusContent, m.focus)
}

func TestApp_OpenGame(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	m, out := updateCmd(t, m, sidebar.OpenGameMsg{ID: "snake"})
	require.IsType(t, gameOpenedMsg{}, out)

	assert.True(t, m.toaster.Visible())
	assert.Equal(t, "Starting Snake", m.toaster.Message())
	require.Len(t, m.launcher.Recent(), 1)
	assert.Equal(t, catalog.GameID("snake"), m.launcher.Recent()[0].ID)
}

func TestApp_OpenUnknownGame(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	m, out := updateCmd(t, m, sidebar.OpenGameMsg{ID: "pong"})
	require.ErrorIs(t, out.(gameFailedMsg).Err, games.ErrUnknownGame)

	assert.Equal(t, "No such game: pong", m.toaster.Message())
	assert.Empty(t, m.launcher.Recent())
}

func TestApp_OpenGameThroughHost(t *testing.T) {
	host := &mockHost{}
	host.On("Open", mock.Anything, catalog.GameID("tetris")).Return(games.Session{}, errors.New("busy"))

	m := New(Options{Config: testConfig(), Host: host})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = updateCmd(t, m, sidebar.OpenGameMsg{ID: "tetris"})
	assert.Equal(t, "Could not start tetris", m.toaster.Message())
	host.AssertExpectations(t)
}

func TestApp_LanguageCycles(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})
	assert.Equal(t, i18n.Japanese, m.translator.Language())
	assert.Contains(t, m.View(), "人工知能")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})
	assert.Equal(t, i18n.English, m.translator.Language())
}

func TestApp_QuitKey(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_ConfigReload(t *testing.T) {
	reloaded := testConfig()
	reloaded.Catalog.Games = []catalog.Game{{ID: "pong", Name: "Pong", Icon: "🏓"}}
	reloaded.Sidebar.Category = "MEDIA"

	m := New(Options{
		Config:     testConfig(),
		ConfigPath: "folio-test.yaml",
		Save:       (&saveRecorder{}).save,
		Load:       func(string) (config.Config, error) { return reloaded, nil },
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	newModel, cmd := m.Update(configChangedMsg{})
	m = newModel.(Model)
	require.NotNil(t, cmd)
	m = update(t, m, reloadConfig(m.load, m.configPath)())

	require.Len(t, m.sidebar.Layout().Games, 1)
	assert.Equal(t, "pong", m.sidebar.Layout().Games[0].ID)
	assert.Equal(t, catalog.CategoryAll, m.State().ActiveCategory, "sidebar section on disk is ignored")
	assert.Equal(t, "Config reloaded", m.toaster.Message())
}

func TestApp_ConfigReloadUnchangedIsSilent(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	m = update(t, m, configLoadedMsg{Config: testConfig()})
	assert.False(t, m.toaster.Visible())
}

func TestApp_ConfigReloadKeepsPinnedLanguage(t *testing.T) {
	running := testConfig()
	running.Language = "ja"
	onDisk := testConfig()
	onDisk.Language = "en"

	rec := &saveRecorder{}
	m := New(Options{
		Config:         running,
		ConfigPath:     "folio-test.yaml",
		Save:           rec.save,
		Load:           func(string) (config.Config, error) { return onDisk, nil },
		LanguagePinned: true,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	// Our own save touches the file and the watcher fires.
	m, saved := updateCmd(t, m, sidebar.ToggleCollapseMsg{})
	require.Equal(t, stateSavedMsg{}, saved)
	m = update(t, m, reloadConfig(m.load, m.configPath)())

	assert.Equal(t, i18n.Japanese, m.translator.Language())
	assert.Equal(t, "ja", m.cfg.Language)
	assert.False(t, m.toaster.Visible(), "own save must not announce a reload")
}

func TestApp_ConfigReloadUnpinnedLanguageFollowsFile(t *testing.T) {
	onDisk := testConfig()
	onDisk.Language = "ja"

	m := New(Options{
		Config:     testConfig(),
		ConfigPath: "folio-test.yaml",
		Save:       (&saveRecorder{}).save,
		Load:       func(string) (config.Config, error) { return onDisk, nil },
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, reloadConfig(m.load, m.configPath)())

	assert.Equal(t, i18n.Japanese, m.translator.Language())
	assert.True(t, m.toaster.Visible())
}

func TestApp_ConfigReloadError(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	m = update(t, m, configLoadedMsg{Err: errors.New("bad yaml")})
	assert.True(t, m.toaster.Visible())
	assert.Contains(t, m.toaster.Message(), "bad yaml")
}

func TestApp_ViewLayout(t *testing.T) {
	m := createTestModel(t, &saveRecorder{}, 120)

	view := m.View()
	assert.Contains(t, view, "MENU")
	assert.Contains(t, view, "quit")
	assert.Equal(t, 40, lipgloss.Height(view))

	m.cfg.UI.ShowHelp = false
	m = m.relayout()
	assert.NotContains(t, m.View(), "quit")
}

func TestApp_Program(t *testing.T) {
	rec := &saveRecorder{}
	m := New(Options{Config: testConfig(), ConfigPath: "folio-test.yaml", Save: rec.save})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("SELECT_MODE"))
	}, teatest.WithDuration(3*time.Second))

	tm.Type("j")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Type("[")
	// Saves may race; a stale one is skipped, so only the newest is certain.
	teatest.WaitFor(t, tm.Output(), func([]byte) bool {
		saved := rec.saved()
		return len(saved) > 0 && saved[len(saved)-1].Collapsed
	}, teatest.WithDuration(3*time.Second))

	tm.Type("q")
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)

	assert.Equal(t, State{
		ActiveCategory: catalog.CategoryAI,
		CurrentPet:     "cat",
		PetVisible:     true,
		Collapsed:      true,
	}, final.State())
	saved := rec.saved()
	assert.Equal(t, "AI", saved[len(saved)-1].Category)
}
