package feed_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"finshorts/feed"
	"finshorts/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu          sync.Mutex
	fetchCalls  int
	updateCalls int

	articles  []models.RawArticle
	fetchErr  error
	updateErr error

	// When set, FetchArticles blocks until the channel is closed.
	block chan struct{}
}

func (f *fakeAPI) FetchArticles(ctx context.Context, refresh bool) ([]models.RawArticle, error) {
	f.mu.Lock()
	f.fetchCalls++
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.articles, f.fetchErr
}

func (f *fakeAPI) ForceUpdate(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	return f.updateErr
}

func (f *fakeAPI) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls, f.updateCalls
}

// drainEvents empties the buffered event channel. Operations on the
// state are synchronous, so everything they emitted is already there.
func drainEvents(s *feed.State) []any {
	var events []any
	for {
		select {
		case event := <-s.Events():
			events = append(events, event)
		default:
			return events
		}
	}
}

func findEvent[T any](events []any) (T, bool) {
	for _, event := range events {
		if typed, ok := event.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func TestStateSeededBeforeFirstFetch(t *testing.T) {
	state := feed.New(&fakeAPI{})

	articles := state.Articles()
	require.Len(t, articles, 2)
	assert.False(t, state.IsLoading())
}

func TestFetchReplacesArticles(t *testing.T) {
	api := &fakeAPI{articles: []models.RawArticle{
		{ID: "1", Title: "First", Snippet: "Something happened.", Source: "Wire"},
		{ID: "2", Title: "Second"},
	}}
	state := feed.New(api)

	state.Fetch(context.Background())

	articles := state.Articles()
	require.Len(t, articles, 2)
	assert.Equal(t, "First", articles[0].Title)
	// Defaults applied during mapping
	assert.Equal(t, feed.DefaultSummary, articles[1].Summary)

	events := drainEvents(state)
	replaced, ok := findEvent[models.ArticlesReplacedEvent](events)
	require.True(t, ok)
	assert.Len(t, replaced.Articles, 2)
}

func TestFetchSingleFlight(t *testing.T) {
	api := &fakeAPI{
		articles: []models.RawArticle{{ID: "1", Title: "Only"}},
		block:    make(chan struct{}),
	}
	state := feed.New(api)

	done := make(chan struct{})
	go func() {
		state.Fetch(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool {
		fetches, _ := api.counts()
		return fetches == 1
	}, time.Second, time.Millisecond)

	// Second call while the first is outstanding is dropped
	state.Fetch(context.Background())

	close(api.block)
	<-done

	fetches, _ := api.counts()
	assert.Equal(t, 1, fetches)
}

func TestEmptyResponseKeepsArticles(t *testing.T) {
	api := &fakeAPI{articles: nil}
	state := feed.New(api)
	before := state.Articles()

	state.Fetch(context.Background())

	assert.Equal(t, before, state.Articles())

	events := drainEvents(state)
	_, replaced := findEvent[models.ArticlesReplacedEvent](events)
	assert.False(t, replaced)
	_, finished := findEvent[models.FetchFinishedEvent](events)
	assert.True(t, finished)
}

func TestFetchFailureKeepsArticlesAndRetries(t *testing.T) {
	api := &fakeAPI{fetchErr: errors.New("boom")}
	state := feed.New(api)
	before := state.Articles()

	state.Fetch(context.Background())

	assert.Equal(t, before, state.Articles())

	events := drainEvents(state)
	failed, ok := findEvent[models.FetchFailedEvent](events)
	require.True(t, ok)
	require.NotNil(t, failed.Retry)

	// Clear the failure and retry; exactly one new fetch goes out
	api.mu.Lock()
	api.fetchErr = nil
	api.articles = []models.RawArticle{{ID: "1", Title: "Recovered"}}
	api.mu.Unlock()

	failed.Retry()

	fetches, _ := api.counts()
	assert.Equal(t, 2, fetches)
	require.Len(t, state.Articles(), 1)
	assert.Equal(t, "Recovered", state.Articles()[0].Title)
}

func TestForceUpdateTriggersSingleFetch(t *testing.T) {
	api := &fakeAPI{articles: []models.RawArticle{{ID: "1", Title: "Fresh"}}}
	state := feed.New(api)

	state.ForceUpdate(context.Background())

	fetches, updates := api.counts()
	assert.Equal(t, 1, updates)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Fresh", state.Articles()[0].Title)
}

func TestForceUpdateFailureSurfaces(t *testing.T) {
	api := &fakeAPI{updateErr: errors.New("upstream down")}
	state := feed.New(api)

	state.ForceUpdate(context.Background())

	fetches, updates := api.counts()
	assert.Equal(t, 1, updates)
	assert.Equal(t, 0, fetches)

	events := drainEvents(state)
	failed, ok := findEvent[models.FetchFailedEvent](events)
	require.True(t, ok)
	assert.Error(t, failed.Err)
}

func TestOnVisiblePagination(t *testing.T) {
	raws := make([]models.RawArticle, 6)
	for i := range raws {
		raws[i] = models.RawArticle{ID: string(rune('a' + i)), Title: "Article"}
	}
	api := &fakeAPI{articles: raws}
	state := feed.New(api)

	state.Fetch(context.Background())
	fetches, _ := api.counts()
	require.Equal(t, 1, fetches)

	// Far from the end: no trigger
	state.OnVisible(context.Background(), 1)
	fetches, _ = api.counts()
	assert.Equal(t, 1, fetches)

	// Within two positions of the end: trigger
	state.OnVisible(context.Background(), 3)
	fetches, _ = api.counts()
	assert.Equal(t, 2, fetches)

	// Level trigger repeats, absorbed only while a fetch is in flight
	state.OnVisible(context.Background(), 4)
	fetches, _ = api.counts()
	assert.Equal(t, 3, fetches)
}
