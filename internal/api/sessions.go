package api

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/abhisek/keizoku/internal/metrics"
	"github.com/abhisek/keizoku/internal/session"
)

// sessionEntry is one browser's quiz. mu serializes every read-modify-write
// of state, including the classification that follows the last answer.
type sessionEntry struct {
	mu    sync.Mutex
	state session.State
}

// sessionStore is a bounded table of live sessions. The least recently used
// session is dropped when the table is full, and idle sessions expire after
// the configured TTL.
type sessionStore struct {
	cache   *expirable.LRU[string, *sessionEntry]
	live    atomic.Int64
	metrics *metrics.Metrics
}

func newSessionStore(size int, ttl time.Duration, m *metrics.Metrics) *sessionStore {
	s := &sessionStore{metrics: m}
	s.cache = expirable.NewLRU[string, *sessionEntry](size, func(string, *sessionEntry) {
		s.metrics.SetSessionsActive(int(s.live.Add(-1)))
	}, ttl)
	return s
}

// create starts a new session and returns its ID.
func (s *sessionStore) create() (string, *sessionEntry) {
	id := uuid.NewString()
	e := &sessionEntry{state: session.New()}
	s.cache.Add(id, e)
	s.metrics.SetSessionsActive(int(s.live.Add(1)))
	return id, e
}

// get returns the session and renews its TTL.
func (s *sessionStore) get(id string) (*sessionEntry, bool) {
	e, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	s.cache.Add(id, e)
	return e, true
}

func (s *sessionStore) len() int {
	return s.cache.Len()
}
