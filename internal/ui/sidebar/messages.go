package sidebar

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/catalog"
)

// SelectCategoryMsg asks the parent to make ID the active category.
type SelectCategoryMsg struct {
	ID catalog.CategoryID
}

// SelectPetMsg asks the parent to select pet skin ID. Sent even when ID is
// already selected.
type SelectPetMsg struct {
	ID catalog.PetSkinID
}

// OpenGameMsg asks the game host to open game ID.
type OpenGameMsg struct {
	ID catalog.GameID
}

// CloseMsg asks the parent to dismiss the sidebar on a small viewport.
type CloseMsg struct{}

// TogglePetVisibilityMsg asks the parent to flip pet visibility.
type TogglePetVisibilityMsg struct{}

// ToggleCollapseMsg asks the parent to flip the collapse flag.
type ToggleCollapseMsg struct{}

// FocusMsg is sent when a click lands on the sidebar but on no control.
type FocusMsg struct{}

// Intent returns the message activating c sends.
func Intent(c Control) tea.Msg {
	switch c.Kind {
	case KindCategory:
		return SelectCategoryMsg{ID: catalog.CategoryID(c.ID)}
	case KindGame, KindCompactGame:
		return OpenGameMsg{ID: catalog.GameID(c.ID)}
	case KindPetToggle:
		return TogglePetVisibilityMsg{}
	case KindSwatch:
		return SelectPetMsg{ID: catalog.PetSkinID(c.ID)}
	case KindClose:
		return CloseMsg{}
	case KindCollapse:
		return ToggleCollapseMsg{}
	default:
		return nil
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
