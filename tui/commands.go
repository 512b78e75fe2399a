package tui

import (
	"context"

	"finshorts/feed"

	tea "github.com/charmbracelet/bubbletea"
)

// waitForEvent blocks on the feed event channel and forwards the next
// event into the update loop. Re-issued after every received event.
func waitForEvent(events <-chan any) tea.Cmd {
	return func() tea.Msg {
		return feedEventMsg{event: <-events}
	}
}

// The feed state publishes outcomes on its event channel, so these
// commands have no message of their own to return.

func fetchCmd(state *feed.State) tea.Cmd {
	return func() tea.Msg {
		state.Fetch(context.Background())
		return nil
	}
}

func refreshCmd(state *feed.State) tea.Cmd {
	return func() tea.Msg {
		state.Refresh(context.Background())
		return nil
	}
}

func forceUpdateCmd(state *feed.State) tea.Cmd {
	return func() tea.Msg {
		state.ForceUpdate(context.Background())
		return nil
	}
}

func onVisibleCmd(state *feed.State, index int) tea.Cmd {
	return func() tea.Msg {
		state.OnVisible(context.Background(), index)
		return nil
	}
}

func retryCmd(retry func()) tea.Cmd {
	return func() tea.Msg {
		retry()
		return nil
	}
}
