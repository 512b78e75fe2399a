// Package tui renders the article feed as a vertically paged terminal
// reader, one story per screen.
package tui

import (
	"finshorts/feed"
	"finshorts/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model for the reader. It holds only snapshots
// synced from feed.State events; the feed state owns the data.
type Model struct {
	state *feed.State

	articles     []models.Article
	index        int
	showOriginal bool
	loading      bool

	errMsg string
	retry  func()

	width  int
	height int
}

func NewModel(state *feed.State) Model {
	return Model{
		state:    state,
		articles: state.Articles(),
	}
}

// Init kicks off the first fetch and starts listening for feed events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForEvent(m.state.Events()),
		fetchCmd(m.state),
	)
}
