package sidebar

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/folio/internal/catalog"
)

// TestMain initializes the global zone manager for all tests in this package.
func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func focused(p Props) Model {
	return New(p).Focus()
}

// findControl returns the control with the given kind and id.
func findControl(t *testing.T, m Model, kind ControlKind, id string) Control {
	t.Helper()
	for _, c := range m.Layout().Controls() {
		if c.Kind == kind && c.ID == id {
			return c
		}
	}
	t.Fatalf("no %s control with id %q", kind, id)
	return Control{}
}

// zoneOf renders and scans the view until the control's zone is registered.
func zoneOf(t *testing.T, m Model, c Control) *zone.ZoneInfo {
	t.Helper()
	var z *zone.ZoneInfo
	for retries := 0; retries < 10; retries++ {
		_ = zone.Scan(m.View())
		// Zone registration is asynchronous via a channel worker in bubblezone.
		time.Sleep(time.Millisecond)
		z = zone.Get(m.ZoneID(c))
		if z != nil && !z.IsZero() {
			break
		}
	}
	require.NotNil(t, z, "zone should be registered after View()")
	require.False(t, z.IsZero(), "zone should not be zero")
	return z
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
}

// clickControl clicks the middle of a control's first line.
func clickControl(t *testing.T, m Model, c Control) tea.Msg {
	t.Helper()
	z := zoneOf(t, m, c)
	x := z.StartX
	if z.StartY == z.EndY {
		x += (z.EndX - z.StartX) / 2
	}
	_, cmd := m.Update(click(x, z.StartY))
	require.NotNil(t, cmd, "click on %s should produce a command", c.Key())
	return cmd()
}

func TestModel_KeysIgnoredWhenBlurred(t *testing.T) {
	m := New(defaultProps())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	_, cmd = m.Update(runes("v"))
	require.Nil(t, cmd)
}

func TestModel_NavigateAndActivate(t *testing.T) {
	m := focused(defaultProps())

	c, ok := m.CursorControl()
	require.True(t, ok)
	require.Equal(t, "category:ALL", c.Key(), "large viewport starts on the first category")

	m, _ = m.Update(runes("j"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, SelectCategoryMsg{ID: catalog.CategoryAI}, cmd())

	m, _ = m.Update(runes("k"))
	m, _ = m.Update(runes("k"))
	c, _ = m.CursorControl()
	require.Equal(t, "category:ALL", c.Key(), "cursor stops at the top")
}

func TestModel_CursorStopsAtBottom(t *testing.T) {
	m := focused(defaultProps())
	n := len(m.Layout().Controls())
	for i := 0; i < n+5; i++ {
		m, _ = m.Update(runes("j"))
	}
	c, _ := m.CursorControl()
	require.Equal(t, KindCollapse, c.Kind)
}

func TestModel_SpaceActivatesSwatch(t *testing.T) {
	m := focused(defaultProps())
	for {
		c, _ := m.CursorControl()
		if c.Kind == KindSwatch && c.ID == "bot" {
			break
		}
		m, _ = m.Update(runes("j"))
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd)
	require.Equal(t, SelectPetMsg{ID: "bot"}, cmd())
}

func TestModel_ShortcutKeys(t *testing.T) {
	m := focused(defaultProps())

	_, cmd := m.Update(runes("v"))
	require.Equal(t, TogglePetVisibilityMsg{}, cmd())

	_, cmd = m.Update(runes("["))
	require.Equal(t, ToggleCollapseMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, cmd, "no close affordance on a large viewport")
}

func TestModel_ShortcutKeys_SmallViewport(t *testing.T) {
	p := defaultProps()
	p.ViewportWidth = 50
	m := focused(p)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, CloseMsg{}, cmd())

	_, cmd = m.Update(runes("["))
	require.Nil(t, cmd, "no collapse affordance on a small viewport")
}

func TestModel_SetPropsKeepsCursorOnControl(t *testing.T) {
	p := defaultProps()
	m := focused(p)
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))

	p.Collapsed = true
	m = m.SetProps(p)

	c, ok := m.CursorControl()
	require.True(t, ok)
	require.Equal(t, "category:DESIGN", c.Key())
}

func TestModel_SetPropsClampsCursor(t *testing.T) {
	p := defaultProps()
	m := focused(p)
	for i := 0; i < 30; i++ {
		m, _ = m.Update(runes("j"))
	}

	p.Catalog = catalog.Catalog{}
	p.Collapsible = false
	m = m.SetProps(p)

	c, ok := m.CursorControl()
	require.True(t, ok)
	require.Equal(t, KindPetToggle, c.Kind)
}

func TestModel_ClickCategory(t *testing.T) {
	m := New(defaultProps())

	msg := clickControl(t, m, findControl(t, m, KindCategory, "AI"))
	require.Equal(t, SelectCategoryMsg{ID: catalog.CategoryAI}, msg)
}

func TestModel_ClickCategory_Compact(t *testing.T) {
	p := defaultProps()
	p.Collapsed = true
	m := New(p)

	msg := clickControl(t, m, findControl(t, m, KindCategory, "MEDIA"))
	require.Equal(t, SelectCategoryMsg{ID: catalog.CategoryMedia}, msg)
}

func TestModel_ClickGame(t *testing.T) {
	m := New(defaultProps())

	msg := clickControl(t, m, findControl(t, m, KindGame, "snake"))
	require.Equal(t, OpenGameMsg{ID: "snake"}, msg)
}

func TestModel_ClickCompactGame(t *testing.T) {
	p := defaultProps()
	p.Collapsed = true
	m := New(p)

	msg := clickControl(t, m, findControl(t, m, KindCompactGame, "snake"))
	require.Equal(t, OpenGameMsg{ID: "snake"}, msg)
}

func TestModel_ClickSelectedSwatchStillEmits(t *testing.T) {
	m := New(defaultProps())

	msg := clickControl(t, m, findControl(t, m, KindSwatch, "cat"))
	require.Equal(t, SelectPetMsg{ID: "cat"}, msg)
}

func TestModel_ClickPetToggleDoesNotFocus(t *testing.T) {
	m := New(defaultProps())

	msg := clickControl(t, m, findControl(t, m, KindPetToggle, ""))
	require.Equal(t, TogglePetVisibilityMsg{}, msg)
}

func TestModel_ClickCollapseAndClose(t *testing.T) {
	m := New(defaultProps())
	msg := clickControl(t, m, findControl(t, m, KindCollapse, ""))
	require.Equal(t, ToggleCollapseMsg{}, msg)

	p := defaultProps()
	p.ViewportWidth = 40
	m = New(p)
	msg = clickControl(t, m, findControl(t, m, KindClose, ""))
	require.Equal(t, CloseMsg{}, msg)
}

func TestModel_ClickFrameFocuses(t *testing.T) {
	m := New(defaultProps())
	_ = zoneOf(t, m, findControl(t, m, KindCategory, "ALL"))

	// The title row holds no control on a large viewport.
	_, cmd := m.Update(click(1, 0))
	require.NotNil(t, cmd)
	require.Equal(t, FocusMsg{}, cmd())
}

func TestModel_ClickOutsideIgnored(t *testing.T) {
	m := New(defaultProps()).SetOrigin(0, 0)

	_, cmd := m.Update(click(ExpandedWidth+10, 0))
	require.Nil(t, cmd)
}

func TestModel_NonReleaseMouseIgnored(t *testing.T) {
	m := New(defaultProps())
	z := zoneOf(t, m, findControl(t, m, KindCategory, "AI"))

	_, cmd := m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	require.Nil(t, cmd)
	_, cmd = m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Button: tea.MouseButtonRight, Action: tea.MouseActionRelease})
	require.Nil(t, cmd)
}

func TestView_Expanded(t *testing.T) {
	view := zone.Scan(New(defaultProps()).View())

	for _, want := range []string{"MENU", "SELECT_MODE", "メニュー", "ALL", "01", "総合", "ARCADE", "READY?", "Snake", "START GAME", "PARTNER", "[VISIBLE]", "Neko", "⚡", "Collapse", "SYS.VER.3.1"} {
		require.Contains(t, view, want)
	}
}

func TestView_Compact(t *testing.T) {
	p := defaultProps()
	p.Collapsed = true
	view := zone.Scan(New(p).View())

	require.Contains(t, view, " M ")
	require.Contains(t, view, compactGameIcon)
	require.Contains(t, view, petVisibleIcon)
	require.Contains(t, view, expandIcon)
	for _, absent := range []string{"MENU", "ARCADE", "PARTNER", "SYS.VER.3.1", "Snake"} {
		require.NotContains(t, view, absent)
	}
}

func TestView_EmptyGameCatalog(t *testing.T) {
	p := defaultProps()
	p.Catalog.Games = nil
	view := zone.Scan(New(p).View())

	require.Contains(t, view, "ARCADE")
	require.NotContains(t, view, "START GAME")
}

func TestView_LinesFitWidth(t *testing.T) {
	for _, collapsed := range []bool{false, true} {
		p := defaultProps()
		p.Collapsed = collapsed
		m := New(p).SetSize(0, 40)

		lines := strings.Split(zone.Scan(m.View()), "\n")
		require.Len(t, lines, 40)
		for _, line := range lines {
			require.LessOrEqual(t, lipgloss.Width(line), m.Width(), "line %q overflows", line)
		}
	}
}
