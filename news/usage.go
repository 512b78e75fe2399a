package news

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// UsageTracker enforces the upstream provider's daily request budget
// (the free tier allows a fixed number of requests per day). Usage is
// persisted to a JSON file so restarts do not reset the counter.
type UsageTracker struct {
	mu     sync.Mutex
	path   string
	budget int
	now    func() time.Time
	data   usageData
}

type usageData struct {
	LastReset     time.Time `json:"last_reset"`
	RequestsToday int       `json:"requests_today"`
	TotalRequests int       `json:"total_requests"`
}

func NewUsageTracker(path string, budget int) *UsageTracker {
	t := &UsageTracker{
		path:   path,
		budget: budget,
		now:    time.Now,
	}
	t.data = t.load()
	return t
}

func (t *UsageTracker) load() usageData {
	raw, err := os.ReadFile(t.path)
	if err == nil {
		var data usageData
		if err := json.Unmarshal(raw, &data); err == nil {
			return data
		} else {
			log.WithFields(log.Fields{
				"path":  t.path,
				"error": err,
			}).Warn("Corrupt usage file, starting fresh")
		}
	}
	return usageData{LastReset: t.now()}
}

func (t *UsageTracker) save() {
	raw, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err == nil {
		if err := os.WriteFile(t.path, raw, 0o644); err != nil {
			log.WithFields(log.Fields{
				"path":  t.path,
				"error": err,
			}).Warn("Failed to persist usage data")
		}
	}
}

// resetIfNewDay zeroes the daily counter at the first use after
// midnight. Callers hold the mutex.
func (t *UsageTracker) resetIfNewDay() {
	now := t.now()
	if now.YearDay() != t.data.LastReset.YearDay() || now.Year() != t.data.LastReset.Year() {
		t.data.LastReset = now
		t.data.RequestsToday = 0
		t.save()
	}
}

// CanRequest reports whether another upstream request fits in today's
// budget.
func (t *UsageTracker) CanRequest() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetIfNewDay()
	return t.data.RequestsToday < t.budget
}

// Record counts one upstream request.
func (t *UsageTracker) Record() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetIfNewDay()
	t.data.RequestsToday++
	t.data.TotalRequests++
	t.save()
}

// Remaining returns the number of requests left today.
func (t *UsageTracker) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetIfNewDay()
	return t.budget - t.data.RequestsToday
}
