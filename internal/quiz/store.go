package quiz

import (
	"strings"
	"sync"
	"time"
)

// QuestionStore holds generated questions between generation and answer
// validation, keyed by (sessionID, wordID). true_false answers cannot be
// recomputed from vocabulary alone, so the exact generated question must
// survive until the session completes. The interface lets callers swap
// the default in-memory store for one backed by the session database or
// a distributed cache.
type QuestionStore interface {
	Put(sessionID string, q Question)
	Get(sessionID, wordID string) (Question, bool)
	DeleteSession(sessionID string)
}

type storedQuestion struct {
	question Question
	storedAt time.Time
}

// MemoryQuestionStore is the default process-local QuestionStore. Entries
// for abandoned sessions are evicted after the TTL so the map stays
// bounded; completed sessions are removed explicitly.
type MemoryQuestionStore struct {
	mu      sync.RWMutex
	entries map[string]storedQuestion
	ttl     time.Duration
}

// NewMemoryQuestionStore creates a store whose entries expire after ttl.
// A background janitor sweeps expired entries.
func NewMemoryQuestionStore(ttl time.Duration) *MemoryQuestionStore {
	s := &MemoryQuestionStore{
		entries: make(map[string]storedQuestion),
		ttl:     ttl,
	}
	go s.evictLoop()
	return s
}

func storeKey(sessionID, wordID string) string {
	return sessionID + ":" + wordID
}

// Put stores a generated question for later validation
func (s *MemoryQuestionStore) Put(sessionID string, q Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[storeKey(sessionID, q.WordID)] = storedQuestion{
		question: q,
		storedAt: time.Now(),
	}
}

// Get retrieves the stored question for a session+word pair
func (s *MemoryQuestionStore) Get(sessionID, wordID string) (Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[storeKey(sessionID, wordID)]
	if !ok {
		return Question{}, false
	}
	return entry.question, true
}

// DeleteSession removes every entry belonging to a session
func (s *MemoryQuestionStore) DeleteSession(sessionID string) {
	prefix := sessionID + ":"
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
}

// evictLoop periodically removes entries older than the TTL
func (s *MemoryQuestionStore) evictLoop() {
	interval := s.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for key, entry := range s.entries {
			if entry.storedAt.Before(cutoff) {
				delete(s.entries, key)
			}
		}
		s.mu.Unlock()
	}
}
