package tui

// feedEventMsg wraps an event published by the feed state so it can
// travel through the bubbletea update loop.
type feedEventMsg struct {
	event any
}
