package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/games"
)

type gameOpenedMsg struct {
	Session games.Session
}

type gameFailedMsg struct {
	ID  catalog.GameID
	Err error
}

type stateSavedMsg struct {
	Err error
}

type configChangedMsg struct{}

type configLoadedMsg struct {
	Config config.Config
	Err    error
}

func openGame(host games.Host, id catalog.GameID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gameOpenTimeout)
		defer cancel()

		session, err := host.Open(ctx, id)
		if err != nil {
			return gameFailedMsg{ID: id, Err: err}
		}
		return gameOpenedMsg{Session: session}
	}
}

func reloadConfig(load func(string) (config.Config, error), path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := load(path)
		return configLoadedMsg{Config: cfg, Err: err}
	}
}

// waitForChange blocks until the watcher signals. Re-issued after every
// change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}
