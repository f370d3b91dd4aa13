// Package catalog holds the ordered, immutable records the sidebar reads:
// navigation categories, pet skins and built-in games.
package catalog

import "fmt"

// CategoryID identifies a top-level navigation section.
type CategoryID string

const (
	CategoryAll      CategoryID = "ALL"
	CategoryAI       CategoryID = "AI"
	CategoryDesign   CategoryID = "DESIGN"
	CategoryFrontend CategoryID = "FRONTEND"
	CategoryMedia    CategoryID = "MEDIA"
	CategoryTools    CategoryID = "TOOLS"
	CategoryGame     CategoryID = "GAME"
)

// KnownCategories is the fixed enumerated set of category ids.
var KnownCategories = []CategoryID{
	CategoryAll, CategoryAI, CategoryDesign, CategoryFrontend,
	CategoryMedia, CategoryTools, CategoryGame,
}

// IsKnown reports whether id belongs to the enumerated set.
func (id CategoryID) IsKnown() bool {
	for _, k := range KnownCategories {
		if k == id {
			return true
		}
	}
	return false
}

// Category is one navigation entry.
type Category struct {
	ID          CategoryID
	Icon        string
	Key         string // localization key, e.g. "category.AI"
	Description string // markdown shown in the content pane
}

// PetSkinID identifies a pet skin.
type PetSkinID string

// PetSkin is a selectable visual variant of the companion widget.
type PetSkin struct {
	ID          PetSkinID `mapstructure:"id" yaml:"id"`
	Name        string    `mapstructure:"name" yaml:"name"`
	AvatarColor string    `mapstructure:"avatar_color" yaml:"avatar_color"` // hex color
}

// GameID identifies a built-in game.
type GameID string

// DefaultGameID is the game launched by the compact-mode arcade button.
const DefaultGameID GameID = "snake"

// Game is a launchable embedded mini-game.
type Game struct {
	ID   GameID `mapstructure:"id" yaml:"id"`
	Name string `mapstructure:"name" yaml:"name"`
	Icon string `mapstructure:"icon" yaml:"icon"`
}

// Catalog bundles the three ordered sequences.
type Catalog struct {
	Categories []Category
	PetSkins   []PetSkin
	Games      []Game
}

// CategoryKey returns the localization key for a category id.
func CategoryKey(id CategoryID) string {
	return "category." + string(id)
}

// Default returns the built-in catalogs.
func Default() Catalog {
	return Catalog{
		Categories: DefaultCategories(),
		PetSkins:   DefaultPetSkins(),
		Games:      DefaultGames(),
	}
}

// DefaultCategories returns the built-in category list in display order.
func DefaultCategories() []Category {
	return []Category{
		{ID: CategoryAll, Icon: "✦", Key: CategoryKey(CategoryAll),
			Description: "Everything in one place. Pick a section on the left to narrow it down."},
		{ID: CategoryAI, Icon: "◉", Key: CategoryKey(CategoryAI),
			Description: "## Models and agents\n\nExperiments with **language models**, retrieval and small agents."},
		{ID: CategoryDesign, Icon: "✎", Key: CategoryKey(CategoryDesign),
			Description: "## Design\n\nType studies, palettes and layout sketches."},
		{ID: CategoryFrontend, Icon: "⌘", Key: CategoryKey(CategoryFrontend),
			Description: "## Frontend\n\nComponents, terminal UIs and the tooling around them."},
		{ID: CategoryMedia, Icon: "▶", Key: CategoryKey(CategoryMedia),
			Description: "## Media\n\nVideo, audio and image pipelines."},
		{ID: CategoryTools, Icon: "⚙", Key: CategoryKey(CategoryTools),
			Description: "## Tools\n\nCLIs and utilities that make the rest possible."},
		{ID: CategoryGame, Icon: "♠", Key: CategoryKey(CategoryGame),
			Description: "## Games\n\nSmall arcade games. Launch one from the panel below the menu."},
	}
}

// DefaultPetSkins returns the built-in pet skins.
func DefaultPetSkins() []PetSkin {
	return []PetSkin{
		{ID: "cat", Name: "Neko", AvatarColor: "#FF6B9D"},
		{ID: "dog", Name: "Shiba", AvatarColor: "#FECA57"},
		{ID: "bot", Name: "Robo", AvatarColor: "#54A0FF"},
		{ID: "slime", Name: "Slime", AvatarColor: "#CCFF00"},
	}
}

// DefaultGames returns the built-in game list.
func DefaultGames() []Game {
	return []Game{
		{ID: DefaultGameID, Name: "Snake", Icon: "🐍"},
		{ID: "tetris", Name: "Blocks", Icon: "🧱"},
		{ID: "2048", Name: "2048", Icon: "🔢"},
	}
}

// Category looks up a category by id.
func (c Catalog) Category(id CategoryID) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// PetSkin looks up a pet skin by id.
func (c Catalog) PetSkin(id PetSkinID) (PetSkin, bool) {
	for _, s := range c.PetSkins {
		if s.ID == id {
			return s, true
		}
	}
	return PetSkin{}, false
}

// Game looks up a game by id.
func (c Catalog) Game(id GameID) (Game, bool) {
	for _, g := range c.Games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// WithOverrides returns a copy of c with non-empty pet skin and game
// sequences replaced.
func (c Catalog) WithOverrides(skins []PetSkin, games []Game) Catalog {
	if len(skins) > 0 {
		c.PetSkins = append([]PetSkin(nil), skins...)
	}
	if len(games) > 0 {
		c.Games = append([]Game(nil), games...)
	}
	return c
}

// Validate checks uniqueness-by-id within each sequence and that every
// category id is in the enumerated set.
func (c Catalog) Validate() error {
	seenCat := make(map[CategoryID]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if !cat.ID.IsKnown() {
			return fmt.Errorf("category %d: unknown id %q", i, cat.ID)
		}
		if seenCat[cat.ID] {
			return fmt.Errorf("category %d: duplicate id %q", i, cat.ID)
		}
		seenCat[cat.ID] = true
	}

	seenSkin := make(map[PetSkinID]bool, len(c.PetSkins))
	for i, s := range c.PetSkins {
		if s.ID == "" {
			return fmt.Errorf("pet skin %d: id is required", i)
		}
		if seenSkin[s.ID] {
			return fmt.Errorf("pet skin %d: duplicate id %q", i, s.ID)
		}
		seenSkin[s.ID] = true
	}

	seenGame := make(map[GameID]bool, len(c.Games))
	for i, g := range c.Games {
		if g.ID == "" {
			return fmt.Errorf("game %d: id is required", i)
		}
		if seenGame[g.ID] {
			return fmt.Errorf("game %d: duplicate id %q", i, g.ID)
		}
		seenGame[g.ID] = true
	}
	return nil
}
