package tui

import (
	"finshorts/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case feedEventMsg:
		return m.handleFeedEvent(msg.event)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "j", "down", " ", "pgdown":
		if m.index < len(m.articles)-1 {
			m.index++
			m.showOriginal = false
		}
		// Report every position change; the feed decides whether it is
		// close enough to the end to load more.
		return m, onVisibleCmd(m.state, m.index)

	case "k", "up", "pgup":
		if m.index > 0 {
			m.index--
			m.showOriginal = false
		}
		return m, nil

	case "o":
		m.showOriginal = !m.showOriginal
		return m, nil

	case "r":
		return m, refreshCmd(m.state)

	case "u":
		return m, forceUpdateCmd(m.state)

	case "enter":
		if m.errMsg != "" && m.retry != nil {
			retry := m.retry
			m.errMsg = ""
			m.retry = nil
			return m, retryCmd(retry)
		}
	}
	return m, nil
}

func (m Model) handleFeedEvent(event any) (tea.Model, tea.Cmd) {
	switch event := event.(type) {
	case models.FetchStartedEvent:
		m.loading = true

	case models.ArticlesReplacedEvent:
		m.loading = false
		m.errMsg = ""
		m.retry = nil
		m.articles = event.Articles
		if m.index >= len(m.articles) {
			m.index = len(m.articles) - 1
		}
		if m.index < 0 {
			m.index = 0
		}

	case models.FetchFinishedEvent:
		m.loading = false

	case models.FetchFailedEvent:
		m.loading = false
		m.errMsg = "Failed to load articles"
		m.retry = event.Retry
	}

	return m, waitForEvent(m.state.Events())
}
