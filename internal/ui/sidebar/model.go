package sidebar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/folio/internal/keys"
	"github.com/zjrosen/folio/internal/log"
)

// Model wraps a Layout with keyboard focus and mouse hit testing.
// The cursor is ephemeral focus, not view state: it survives re-renders
// by control identity and is never reported to the parent.
type Model struct {
	props  Props
	layout Layout

	cursor  int
	focused bool

	width  int
	height int

	// Screen position of the top-left corner, for frame clicks.
	originX int
	originY int

	zonePrefix string
}

// New creates a sidebar for props.
func New(props Props) Model {
	m := Model{zonePrefix: zone.NewPrefix()}
	return m.SetProps(props)
}

// SetProps rebuilds the layout. The cursor stays on the same control when
// it still exists, otherwise it is clamped.
func (m Model) SetProps(props Props) Model {
	var prev string
	if c, ok := m.CursorControl(); ok {
		prev = c.Key()
	}

	m.props = props
	m.layout = Build(props)

	controls := m.layout.Controls()
	m.cursor = min(m.cursor, len(controls)-1)
	if prev != "" {
		for i, c := range controls {
			if c.Key() == prev {
				m.cursor = i
				break
			}
		}
	}
	return m
}

// Props returns the props the current layout was built from.
func (m Model) Props() Props {
	return m.props
}

// Layout returns the current layout.
func (m Model) Layout() Layout {
	return m.layout
}

// SetSize sets the outer dimensions. A zero width selects the default for
// the current mode.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetOrigin records where the parent draws the sidebar.
func (m Model) SetOrigin(x, y int) Model {
	m.originX = x
	m.originY = y
	return m
}

// Width returns the outer width in cells.
func (m Model) Width() int {
	if m.width > 0 {
		return m.width
	}
	return DefaultWidth(m.layout.Mode)
}

// DefaultWidth returns the outer width for mode.
func DefaultWidth(mode Mode) int {
	if mode == ModeCompact {
		return CompactWidth
	}
	return ExpandedWidth
}

// Focus gives the sidebar keyboard focus.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes keyboard focus.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Focused reports whether the sidebar has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// CursorControl returns the control under the keyboard cursor.
func (m Model) CursorControl() (Control, bool) {
	controls := m.layout.Controls()
	if m.cursor < 0 || m.cursor >= len(controls) {
		return Control{}, false
	}
	return controls[m.cursor], true
}

// ZoneID returns the bubblezone id used for c.
func (m Model) ZoneID(c Control) string {
	return m.zonePrefix + c.Key()
}

func (m Model) isCursor(c Control) bool {
	if !m.focused {
		return false
	}
	cur, ok := m.CursorControl()
	return ok && cur.Key() == c.Key()
}

func (m Model) cursorIn(cs []Control) bool {
	for _, c := range cs {
		if m.isCursor(c) {
			return true
		}
	}
	return false
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys (when focused) and mouse clicks. Intents come back
// as commands; the model itself never changes props.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	n := len(m.layout.Controls())
	switch {
	case key.Matches(msg, keys.Sidebar.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Sidebar.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Sidebar.Activate):
		if c, ok := m.CursorControl(); ok {
			return m, m.intent(c)
		}
	case key.Matches(msg, keys.Sidebar.ToggleCollapse):
		if m.layout.Collapse != nil {
			return m, m.intent(*m.layout.Collapse)
		}
	case key.Matches(msg, keys.Sidebar.TogglePet):
		return m, m.intent(m.layout.PetToggle)
	case key.Matches(msg, keys.Sidebar.Close):
		if m.layout.Close != nil {
			return m, m.intent(*m.layout.Close)
		}
	}
	return m, nil
}

// HitTest returns the control under a mouse event. Controls never overlap,
// so the first match is the innermost element that was clicked.
func (m Model) HitTest(msg tea.MouseMsg) (Control, bool) {
	for _, c := range m.layout.Controls() {
		if z := zone.Get(m.ZoneID(c)); z != nil && z.InBounds(msg) {
			return c, true
		}
	}
	return Control{}, false
}

// Contains reports whether a mouse event falls inside the sidebar frame.
func (m Model) Contains(msg tea.MouseMsg) bool {
	if msg.X < m.originX || msg.X >= m.originX+m.Width() {
		return false
	}
	if msg.Y < m.originY {
		return false
	}
	return m.height <= 0 || msg.Y < m.originY+m.height
}

// handleMouse resolves a click to exactly one message: the clicked
// control's intent, or FocusMsg when the click hit the frame between
// controls. A click on a control never also focuses the panel.
func (m Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return nil
	}
	if c, ok := m.HitTest(msg); ok {
		return m.intent(c)
	}
	if m.Contains(msg) {
		return emit(FocusMsg{})
	}
	return nil
}

func (m Model) intent(c Control) tea.Cmd {
	msg := Intent(c)
	if msg == nil {
		return nil
	}
	log.Debug(log.CatSidebar, "intent", "control", c.Key(), "msg", fmt.Sprintf("%T", msg))
	return emit(msg)
}
