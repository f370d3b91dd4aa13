// Package content renders the page for the active category next to the
// sidebar: localized title, markdown description, recently played games
// and the pet companion.
package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/folio/internal/cachemanager"
	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/i18n"
	"github.com/zjrosen/folio/internal/keys"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/pet"
	"github.com/zjrosen/folio/internal/ui/markdown"
	"github.com/zjrosen/folio/internal/ui/styles"
)

// petColumnWidth is the width of the companion column in wide layouts.
const petColumnWidth = 24

// minTwoColumnWidth is the narrowest pane that still fits the pet beside
// the page.
const minTwoColumnWidth = 56

const pageTTL = 30 * time.Minute

// Props is the state the pane renders from.
type Props struct {
	Catalog        catalog.Catalog
	ActiveCategory catalog.CategoryID
	CurrentPet     catalog.PetSkinID
	PetVisible     bool
	Recent         []catalog.Game
	Translator     i18n.Translator
	MarkdownStyle  string
}

type pageKey string

type pageInput struct {
	Markdown string
	Width    int
	Style    string
}

// Model is the content pane.
type Model struct {
	props   Props
	width   int
	height  int
	frame   int
	focused bool
	ready   bool

	viewport viewport.Model
	pages    *cachemanager.ReadThroughCache[pageKey, string, pageInput]
}

// New creates a content pane. Rendered descriptions are cached per
// category, width and style.
func New(props Props) Model {
	cache := cachemanager.NewInMemoryCacheManager[pageKey, string]("pages", pageTTL, cachemanager.DefaultCleanupInterval)
	return Model{
		props: props,
		pages: cachemanager.NewReadThroughCache[pageKey, string, pageInput](cache, renderPage, pageTTL, false),
	}
}

func renderPage(_ context.Context, in pageInput) (string, error) {
	r, err := markdown.New(in.Width, in.Style)
	if err != nil {
		return "", err
	}
	out, err := r.Render(in.Markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// SetProps replaces the props. The scroll position resets when the
// category changes.
func (m Model) SetProps(props Props) Model {
	changed := props.ActiveCategory != m.props.ActiveCategory
	m.props = props
	if m.ready {
		m.viewport.SetContent(m.renderPage())
		if changed {
			m.viewport.GotoTop()
		}
	}
	return m
}

// SetSize updates dimensions and the viewport.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height

	pageWidth := m.pageWidth()
	if !m.ready {
		m.viewport = viewport.New(pageWidth, max(height, 1))
		m.ready = true
	} else {
		m.viewport.Width = pageWidth
		m.viewport.Height = max(height, 1)
	}
	if !m.twoColumns() {
		m.viewport.Height = max(height-lipgloss.Height(m.renderPet()), 1)
	}
	m.viewport.SetContent(m.renderPage())
	return m
}

// Focus gives the pane keyboard focus for scrolling.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes keyboard focus.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Invalidate drops cached pages, e.g. after a config reload.
func (m Model) Invalidate() Model {
	if err := m.pages.Invalidate(context.Background()); err != nil {
		log.ErrorErr(log.CatCache, "invalidating pages", err)
	}
	if m.ready {
		m.viewport.SetContent(m.renderPage())
	}
	return m
}

// Init starts the pet animation.
func (m Model) Init() tea.Cmd {
	return pet.Tick()
}

// Update handles scrolling and animation ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pet.TickMsg:
		m.frame = (m.frame + 1) % pet.Frames
		return m, pet.Tick()
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Sidebar.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, keys.Sidebar.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the pane.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	page := m.viewport.View()
	if m.twoColumns() {
		return lipgloss.JoinHorizontal(lipgloss.Top, page, m.renderPet())
	}
	return lipgloss.JoinVertical(lipgloss.Left, page, m.renderPet())
}

func (m Model) twoColumns() bool {
	return m.width >= minTwoColumnWidth
}

func (m Model) pageWidth() int {
	w := m.width - 2
	if m.twoColumns() {
		w -= petColumnWidth
	}
	return max(w, 1)
}

func (m Model) translate(key string) string {
	if m.props.Translator == nil {
		return key
	}
	return m.props.Translator.T(key)
}

// renderPage builds the scrollable page text.
func (m Model) renderPage() string {
	width := m.pageWidth()
	cat, ok := m.props.Catalog.Category(m.props.ActiveCategory)
	if !ok {
		return styles.MutedStyle.Render(string(m.props.ActiveCategory))
	}

	var b strings.Builder
	title := cat.Icon + " " + strings.ToUpper(m.translate(cat.Key))
	b.WriteString(" " + styles.HeaderTitleStyle.Render(styles.TruncateString(title, width-1)))
	if sub := i18n.Secondary(cat.ID); sub != "" {
		b.WriteString("  " + styles.HeaderSubtitleStyle.Render(sub))
	}
	b.WriteString("\n\n")

	body, err := m.pages.Get(context.Background(), pageKey(fmt.Sprintf("%s/%d/%s", cat.ID, width, m.props.MarkdownStyle)), pageInput{
		Markdown: cat.Description,
		Width:    width,
		Style:    m.props.MarkdownStyle,
	})
	if err != nil {
		log.ErrorErr(log.CatUI, "rendering category page", err, "category", cat.ID)
		body = cat.Description
	}
	b.WriteString(body)

	if len(m.props.Recent) > 0 {
		names := make([]string, 0, len(m.props.Recent))
		for _, g := range m.props.Recent {
			names = append(names, g.Icon+" "+g.Name)
		}
		b.WriteString("\n\n " + styles.PanelHintStyle.Render(m.translate("content.recent_games")+":") + " ")
		b.WriteString(strings.Join(names, " · "))
	}
	return b.String()
}

// renderPet renders the companion column, or a note when hidden.
func (m Model) renderPet() string {
	width := petColumnWidth
	if !m.twoColumns() {
		width = max(m.width, 1)
	}
	col := lipgloss.NewStyle().Width(width).Padding(0, 1)

	if !m.props.PetVisible {
		return col.Render(styles.MutedStyle.Render(m.translate("content.pet_hidden")))
	}

	skin, ok := m.props.Catalog.PetSkin(m.props.CurrentPet)
	if !ok {
		skin = catalog.PetSkin{ID: m.props.CurrentPet}
	}
	speech := pet.Speech(translatorOrDefault(m.props.Translator), m.props.ActiveCategory)
	return col.Render(lipgloss.JoinVertical(lipgloss.Left,
		pet.Bubble(speech, width-2),
		lipgloss.NewStyle().PaddingLeft(2).Render(pet.Render(skin, m.frame)),
		styles.MutedStyle.Render("  "+skin.Name),
	))
}

func translatorOrDefault(t i18n.Translator) i18n.Translator {
	if t == nil {
		return i18n.New(i18n.English)
	}
	return t
}
