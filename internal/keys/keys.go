// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// SidebarKeyMap defines the keybindings handled by the sidebar while it
// has focus.
type SidebarKeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Activate       key.Binding
	ToggleCollapse key.Binding
	TogglePet      key.Binding
	Close          key.Binding
}

// AppKeyMap defines the keybindings handled by the root model.
type AppKeyMap struct {
	FocusSidebar key.Binding
	FocusContent key.Binding
	OpenSidebar  key.Binding
	Language     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// Sidebar holds the default sidebar bindings.
var Sidebar = SidebarKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	ToggleCollapse: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "collapse/expand"),
	),
	TogglePet: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "show/hide partner"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close menu"),
	),
}

// App holds the default root bindings.
var App = AppKeyMap{
	FocusSidebar: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "focus menu"),
	),
	FocusContent: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "focus content"),
	),
	OpenSidebar: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "open menu"),
	),
	Language: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "language"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HelpMap joins sidebar and app bindings for bubbles/help.
type HelpMap struct {
	Sidebar SidebarKeyMap
	App     AppKeyMap
}

// ShortHelp returns keybindings for the short help view.
func (h HelpMap) ShortHelp() []key.Binding {
	return []key.Binding{h.Sidebar.Activate, h.Sidebar.ToggleCollapse, h.Sidebar.TogglePet, h.App.Help, h.App.Quit}
}

// FullHelp returns keybindings for the full help view.
func (h HelpMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Sidebar.Up, h.Sidebar.Down, h.App.FocusSidebar, h.App.FocusContent},
		{h.Sidebar.Activate, h.Sidebar.ToggleCollapse, h.Sidebar.TogglePet, h.Sidebar.Close},
		{h.App.OpenSidebar, h.App.Language, h.App.Help, h.App.Quit},
	}
}

// Help returns the default help map.
func Help() HelpMap {
	return HelpMap{Sidebar: Sidebar, App: App}
}
