// Package games hosts the built-in mini-games launched from the sidebar.
package games

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/log"
)

// ErrUnknownGame is returned when an id is not in the game catalog.
var ErrUnknownGame = errors.New("unknown game")

// DefaultRecentLimit bounds the recently played list.
const DefaultRecentLimit = 5

// Session is a started game.
type Session struct {
	ID        string
	Game      catalog.Game
	StartedAt time.Time
}

// Host opens games by id. The sidebar only ever sees the id; callers
// decide what to do with the outcome.
type Host interface {
	Open(ctx context.Context, id catalog.GameID) (Session, error)
}

// Launcher is the built-in Host. It is safe for concurrent use.
type Launcher struct {
	mu      sync.Mutex
	games   []catalog.Game
	recent  []catalog.Game
	limit   int
	now     func() time.Time
	history History
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithRecentLimit sets how many recently played games are kept.
func WithRecentLimit(n int) Option {
	return func(l *Launcher) {
		if n > 0 {
			l.limit = n
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Launcher) {
		l.now = now
	}
}

// WithHistory persists opened sessions to h and seeds the recent list
// from it.
func WithHistory(h History) Option {
	return func(l *Launcher) {
		l.history = h
	}
}

// NewLauncher creates a launcher for the given catalog.
func NewLauncher(games []catalog.Game, opts ...Option) *Launcher {
	l := &Launcher{
		games: append([]catalog.Game(nil), games...),
		limit: DefaultRecentLimit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.history != nil {
		l.seed()
	}
	return l
}

// seed loads the recent list from history. Ids missing from the catalog
// are skipped.
func (l *Launcher) seed() {
	ids, err := l.history.Recent(context.Background(), l.limit)
	if err != nil {
		log.ErrorErr(log.CatGame, "loading play history", err)
		return
	}
	for _, id := range ids {
		if g, ok := l.lookup(id); ok {
			l.recent = append(l.recent, g)
		}
	}
}

// Open starts game id and moves it to the front of the recent list.
func (l *Launcher) Open(ctx context.Context, id catalog.GameID) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, fmt.Errorf("opening game %q: %w", id, err)
	}

	l.mu.Lock()
	game, ok := l.lookup(id)
	if !ok {
		l.mu.Unlock()
		log.Warn(log.CatGame, "open unknown game", "id", id)
		return Session{}, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	l.touch(game)
	session := Session{ID: uuid.NewString(), Game: game, StartedAt: l.now()}
	l.mu.Unlock()

	// A failed write only loses history; the game still opens.
	if l.history != nil {
		if err := l.history.Record(ctx, session); err != nil {
			log.ErrorErr(log.CatGame, "recording session", err, "id", id)
		}
	}

	log.Info(log.CatGame, "game opened", "id", id, "session", session.ID)
	return session, nil
}

// Recent returns recently opened games, most recent first.
func (l *Launcher) Recent() []catalog.Game {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]catalog.Game(nil), l.recent...)
}

// SetGames replaces the catalog. Recent entries no longer in the catalog
// are dropped; the rest pick up renamed names and icons.
func (l *Launcher) SetGames(games []catalog.Game) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.games = append([]catalog.Game(nil), games...)
	kept := l.recent[:0]
	for _, g := range l.recent {
		if cur, ok := l.lookup(g.ID); ok {
			kept = append(kept, cur)
		}
	}
	l.recent = kept
}

func (l *Launcher) lookup(id catalog.GameID) (catalog.Game, bool) {
	for _, g := range l.games {
		if g.ID == id {
			return g, true
		}
	}
	return catalog.Game{}, false
}

func (l *Launcher) touch(game catalog.Game) {
	recent := make([]catalog.Game, 0, l.limit)
	recent = append(recent, game)
	for _, g := range l.recent {
		if g.ID != game.ID && len(recent) < l.limit {
			recent = append(recent, g)
		}
	}
	l.recent = recent
}
