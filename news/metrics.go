package news

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finshorts_refresh_total",
		Help: "The total number of feed refresh runs",
	})
	refreshErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finshorts_refresh_errors_total",
		Help: "The total number of failed feed refresh runs",
	})
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finshorts_upstream_requests_total",
		Help: "Upstream source requests by source type and outcome",
	}, []string{"source", "outcome"})
	articlesStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finshorts_articles_stored_total",
		Help: "The total number of articles written to the store",
	})
	summarizeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "finshorts_summarize_duration_seconds",
		Help:    "Time spent summarizing a single article",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
)
