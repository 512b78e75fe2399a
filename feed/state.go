package feed

import (
	"context"
	"sync"
	"sync/atomic"

	"finshorts/models"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// How close to the end of the feed the visible item has to be before a
// pagination fetch is triggered.
const paginationWindow = 2

// Fetcher is the slice of the API client the feed state needs.
type Fetcher interface {
	FetchArticles(ctx context.Context, refresh bool) ([]models.RawArticle, error)
	ForceUpdate(ctx context.Context) error
}

// State owns the ordered article list and drives all network requests
// against the news API. At most one request is in flight at any time;
// calls made while one is outstanding are dropped, not queued. The
// presentation layer observes state changes through the event channel
// and reads article snapshots, never the mutable fields.
type State struct {
	api Fetcher

	mu       sync.RWMutex
	articles []models.Article

	inFlight atomic.Bool
	events   chan any
}

func New(api Fetcher) *State {
	return &State{
		api:      api,
		articles: seedArticles(),
		events:   make(chan any, 16),
	}
}

// Events returns the channel state change events are published on.
// Events are dropped if the subscriber falls behind.
func (s *State) Events() <-chan any {
	return s.events
}

// Articles returns a snapshot of the current feed.
func (s *State) Articles() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// IsLoading reports whether a network call is outstanding.
func (s *State) IsLoading() bool {
	return s.inFlight.Load()
}

// Fetch loads the next feed snapshot. A no-op while another request is
// in flight.
func (s *State) Fetch(ctx context.Context) {
	s.fetch(ctx, false)
}

// Refresh behaves like Fetch but asks the server to bypass its cache.
func (s *State) Refresh(ctx context.Context) {
	s.fetch(ctx, true)
}

func (s *State) fetch(ctx context.Context, refresh bool) {
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Debug("Fetch already in flight, dropping request")
		return
	}
	defer s.inFlight.Store(false)

	s.emit(models.FetchStartedEvent{Refresh: refresh})

	raws, err := s.api.FetchArticles(ctx, refresh)
	if err != nil {
		log.WithFields(log.Fields{
			"refresh": refresh,
			"error":   err,
		}).Warn("Failed to fetch articles")
		s.emit(models.FetchFailedEvent{
			Err:   err,
			Retry: func() { s.fetch(context.Background(), refresh) },
		})
		return
	}

	// An empty successful response means "nothing new"; the previous
	// list is kept as-is.
	if len(raws) == 0 {
		s.emit(models.FetchFinishedEvent{})
		return
	}

	articles := lo.Map(raws, func(raw models.RawArticle, _ int) models.Article {
		return ToArticle(raw)
	})

	s.mu.Lock()
	s.articles = articles
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"count":   len(articles),
		"refresh": refresh,
	}).Info("Replaced feed")

	s.emit(models.ArticlesReplacedEvent{Articles: articles})
}

// ForceUpdate asks the server to regenerate its feed and, on success,
// immediately fetches the fresh data. Failures surface through the same
// event as fetch failures, with a retry bound to the update itself.
func (s *State) ForceUpdate(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Debug("Request already in flight, dropping force update")
		return
	}

	err := s.api.ForceUpdate(ctx)
	s.inFlight.Store(false)

	if err != nil {
		log.WithFields(log.Fields{
			"error": err,
		}).Warn("Force update failed")
		s.emit(models.FetchFailedEvent{
			Err:   err,
			Retry: func() { s.ForceUpdate(context.Background()) },
		})
		return
	}

	s.fetch(ctx, false)
}

// OnVisible implements level-trigger pagination: the presentation layer
// reports every visible index change and a fetch fires whenever the
// index is within two positions of the end. Repeated triggers while a
// request is outstanding are absorbed by the in-flight guard.
func (s *State) OnVisible(ctx context.Context, index int) {
	s.mu.RLock()
	last := len(s.articles) - 1
	s.mu.RUnlock()

	if index >= last-paginationWindow {
		s.fetch(ctx, false)
	}
}

func (s *State) emit(event any) {
	select {
	case s.events <- event:
	default:
		log.Warnf("Event channel full, dropping %T", event)
	}
}

// seedArticles is the built-in list shown before the first fetch
// resolves.
func seedArticles() []models.Article {
	seeds := []models.RawArticle{
		{
			ID:      "seed-welcome",
			Title:   "Welcome to finshorts",
			Snippet: "Short market news, one story at a time. The latest headlines are on their way.",
			Source:  "finshorts",
		},
		{
			ID:      "seed-loading",
			Title:   "Loading the feed",
			Snippet: "Hang tight while the first batch of articles is fetched from the server.",
			Source:  "finshorts",
		},
	}
	return lo.Map(seeds, func(raw models.RawArticle, _ int) models.Article {
		return ToArticle(raw)
	})
}
