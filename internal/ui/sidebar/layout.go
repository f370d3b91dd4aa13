// Package sidebar renders the navigation sidebar: category buttons, the
// arcade launcher and the partner (pet) panel.
//
// The sidebar is fully controlled. It never stores the active category,
// the selected pet, pet visibility or the collapse flag; the parent passes
// them in through Props and receives intents back as messages:
//
//	SelectCategoryMsg, SelectPetMsg, OpenGameMsg,
//	CloseMsg, TogglePetVisibilityMsg, ToggleCollapseMsg
//
// Build maps Props to a Layout with no side effects. Model wraps the Layout
// with keyboard focus and mouse hit testing.
package sidebar

import (
	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/i18n"
	"github.com/zjrosen/folio/internal/ui/styles"
)

// Mode is the layout mode, driven entirely by Props.Collapsed.
type Mode int

const (
	ModeExpanded Mode = iota
	ModeCompact
)

func (m Mode) String() string {
	if m == ModeCompact {
		return "compact"
	}
	return "expanded"
}

// Props is everything the sidebar renders from.
type Props struct {
	Catalog catalog.Catalog

	ActiveCategory catalog.CategoryID
	CurrentPet     catalog.PetSkinID
	PetVisible     bool
	Collapsed      bool

	// Collapsible is true when the parent handles ToggleCollapseMsg.
	// Without it the collapse affordance is omitted, not disabled.
	Collapsible bool

	// ViewportWidth is the full terminal width. Below Breakpoint the
	// sidebar shows its close affordance; at or above it, the collapse
	// affordance.
	ViewportWidth int
	Breakpoint    int

	Translator i18n.Translator
}

// SmallViewport reports whether the viewport is below the breakpoint.
func (p Props) SmallViewport() bool {
	return p.ViewportWidth < p.Breakpoint
}

// ControlKind identifies what an interactive control does.
type ControlKind int

const (
	KindCategory ControlKind = iota
	KindGame
	KindCompactGame
	KindPetToggle
	KindSwatch
	KindClose
	KindCollapse
)

func (k ControlKind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindGame:
		return "game"
	case KindCompactGame:
		return "compact-game"
	case KindPetToggle:
		return "pet-toggle"
	case KindSwatch:
		return "swatch"
	case KindClose:
		return "close"
	case KindCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// Control is one interactive element of the layout.
type Control struct {
	Kind ControlKind
	ID   string // category, game or pet skin id; empty for singletons

	Icon      string
	Label     string // caption, game name, toggle label or tooltip
	Index     string // "01", categories only
	Secondary string // decorative subtitle, categories only
	Hint      string // "START GAME", games only
	Color     string // avatar color, swatches only

	Active   bool // category matches ActiveCategory
	Selected bool // swatch matches CurrentPet
	On       bool // pet toggle reflects PetVisible
}

// Key identifies a control across re-renders.
func (c Control) Key() string {
	return c.Kind.String() + ":" + c.ID
}

// Header is the non-interactive title block.
type Header struct {
	Title    string // expanded only
	Tag      string // expanded only
	Subtitle string // expanded only
	Mark     string // compact only
}

// Layout is the presentation derived from Props.
type Layout struct {
	Mode   Mode
	Header Header

	Close    *Control // small viewports only
	Collapse *Control // large viewports with Collapsible only

	Categories []Control

	// Expanded widgets
	Games    []Control
	Swatches []Control

	// Compact widget
	CompactGame *Control

	PetToggle  Control
	PetVisible bool

	Footer string // expanded only
}

// Header and widget text. Decorative, not localized.
const (
	headerTitle    = "MENU"
	headerTag      = "SELECT_MODE"
	headerSubtitle = "メニュー"
	headerMark     = "M"

	arcadeTag     = "ARCADE"
	arcadeHint    = "READY?"
	partnerTag    = "PARTNER"
	gameStartHint = "START GAME"

	petVisibleLabel = "VISIBLE"
	petHiddenLabel  = "HIDDEN"

	compactGameIcon = "🎮"
	petVisibleIcon  = "◉"
	petHiddenIcon   = "○"
	closeIcon       = "✕"
	expandIcon      = "»"
	collapseIcon    = "«"
	activeChevron   = "▶"
	selectedBadge   = "⚡"

	footerText = "SYS.VER.3.1"
)

// Build derives the layout from props. It performs no I/O, never fails and
// does not modify props.
func Build(p Props) Layout {
	l := Layout{
		Mode:       ModeExpanded,
		PetVisible: p.PetVisible,
	}
	if p.Collapsed {
		l.Mode = ModeCompact
	}
	compact := l.Mode == ModeCompact

	if compact {
		l.Header = Header{Mark: headerMark}
	} else {
		l.Header = Header{Title: headerTitle, Tag: headerTag, Subtitle: headerSubtitle}
		l.Footer = footerText
	}

	if p.SmallViewport() {
		l.Close = &Control{Kind: KindClose, Icon: closeIcon, Label: translate(p.Translator, "sidebar.close")}
	} else if p.Collapsible {
		c := Control{Kind: KindCollapse, Icon: collapseIcon, Label: translate(p.Translator, "sidebar.collapse")}
		if compact {
			c.Icon = expandIcon
			c.Label = translate(p.Translator, "sidebar.expand")
		}
		l.Collapse = &c
	}

	l.Categories = mapControls(p.Catalog.Categories, func(idx int, cat catalog.Category) Control {
		c := Control{
			Kind:   KindCategory,
			ID:     string(cat.ID),
			Icon:   cat.Icon,
			Active: cat.ID == p.ActiveCategory,
		}
		if !compact {
			c.Label = translate(p.Translator, cat.Key)
			c.Index = styles.FormatIndex(idx)
			c.Secondary = i18n.Secondary(cat.ID)
		}
		return c
	})

	l.PetToggle = Control{Kind: KindPetToggle, On: p.PetVisible}

	if compact {
		l.CompactGame = &Control{Kind: KindCompactGame, ID: string(catalog.DefaultGameID), Icon: compactGameIcon}
		l.PetToggle.Icon = petHiddenIcon
		if p.PetVisible {
			l.PetToggle.Icon = petVisibleIcon
		}
		return l
	}

	l.Games = mapControls(p.Catalog.Games, func(_ int, g catalog.Game) Control {
		return Control{Kind: KindGame, ID: string(g.ID), Icon: g.Icon, Label: g.Name, Hint: gameStartHint}
	})

	l.PetToggle.Label = petHiddenLabel
	if p.PetVisible {
		l.PetToggle.Label = petVisibleLabel
	}

	l.Swatches = mapControls(p.Catalog.PetSkins, func(_ int, s catalog.PetSkin) Control {
		return Control{
			Kind:     KindSwatch,
			ID:       string(s.ID),
			Label:    s.Name,
			Color:    s.AvatarColor,
			Selected: s.ID == p.CurrentPet,
		}
	})

	return l
}

// mapControls maps an ordered catalog sequence to controls, preserving order.
func mapControls[T any](items []T, fn func(int, T) Control) []Control {
	out := make([]Control, 0, len(items))
	for i, item := range items {
		out = append(out, fn(i, item))
	}
	return out
}

// translate is total: a nil translator yields the key itself.
func translate(t i18n.Translator, key string) string {
	if t == nil {
		return key
	}
	return t.T(key)
}

// Controls returns every interactive control in focus order.
func (l Layout) Controls() []Control {
	out := make([]Control, 0, len(l.Categories)+len(l.Games)+len(l.Swatches)+4)
	if l.Close != nil {
		out = append(out, *l.Close)
	}
	out = append(out, l.Categories...)
	out = append(out, l.Games...)
	if l.CompactGame != nil {
		out = append(out, *l.CompactGame)
	}
	out = append(out, l.PetToggle)
	out = append(out, l.Swatches...)
	if l.Collapse != nil {
		out = append(out, *l.Collapse)
	}
	return out
}

// WidgetControls returns the controls of the widget stack (arcade and
// partner panels, or their compact replacements).
func (l Layout) WidgetControls() []Control {
	var out []Control
	out = append(out, l.Games...)
	if l.CompactGame != nil {
		out = append(out, *l.CompactGame)
	}
	out = append(out, l.PetToggle)
	out = append(out, l.Swatches...)
	return out
}

// ActiveCategory returns the highlighted category, if any.
func (l Layout) ActiveCategory() (Control, bool) {
	for _, c := range l.Categories {
		if c.Active {
			return c, true
		}
	}
	return Control{}, false
}

// SelectedSwatch returns the marked swatch, if any.
func (l Layout) SelectedSwatch() (Control, bool) {
	for _, c := range l.Swatches {
		if c.Selected {
			return c, true
		}
	}
	return Control{}, false
}
