package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/ui/sidebar"
)

// State is the sidebar view state. The app is its only writer.
type State struct {
	ActiveCategory catalog.CategoryID
	CurrentPet     catalog.PetSkinID
	PetVisible     bool
	Collapsed      bool
}

// StateFromConfig reads persisted state.
func StateFromConfig(c config.SidebarConfig) State {
	return State{
		ActiveCategory: catalog.CategoryID(c.Category),
		CurrentPet:     catalog.PetSkinID(c.Pet),
		PetVisible:     c.PetVisible,
		Collapsed:      c.Collapsed,
	}
}

// Config converts state back to its persisted form.
func (s State) Config() config.SidebarConfig {
	return config.SidebarConfig{
		Category:   string(s.ActiveCategory),
		Pet:        string(s.CurrentPet),
		PetVisible: s.PetVisible,
		Collapsed:  s.Collapsed,
	}
}

// Apply returns the state after a sidebar intent and whether anything
// changed. Each intent touches exactly one field.
func (s State) Apply(msg tea.Msg) (State, bool) {
	next := s
	switch msg := msg.(type) {
	case sidebar.SelectCategoryMsg:
		next.ActiveCategory = msg.ID
	case sidebar.SelectPetMsg:
		next.CurrentPet = msg.ID
	case sidebar.TogglePetVisibilityMsg:
		next.PetVisible = !s.PetVisible
	case sidebar.ToggleCollapseMsg:
		next.Collapsed = !s.Collapsed
	default:
		return s, false
	}
	return next, next != s
}
