package store

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-lookup/internal/coordinator"
)

var (
	// ErrNotFound is returned when no session exists for an id.
	ErrNotFound = errors.New("no session for id")
)

// Session is one browser's pipeline state.
type Session struct {
	ID          string
	Coordinator *coordinator.Coordinator
	CreatedAt   time.Time
	lastSeen    time.Time
}

// Factory builds the coordinator of a new session.
type Factory func() *coordinator.Coordinator

// MemoryStore is a concurrency-safe in-memory session registry.
type MemoryStore struct {
	mu sync.RWMutex

	// key: session id
	data map[string]*Session

	newCoordinator Factory
	now            func() time.Time

	// retention configuration
	maxSessions int           // max number of live sessions
	idleTTL     time.Duration // sessions unused for longer are swept
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxSessions is <= 0, it is treated as unlimited; likewise idleTTL.
func NewMemoryStore(factory Factory, maxSessions int, idleTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		data:           make(map[string]*Session),
		newCoordinator: factory,
		now:            time.Now,
		maxSessions:    maxSessions,
		idleTTL:        idleTTL,
	}
}

// Create registers a new session, evicting the least recently used one when full.
func (s *MemoryStore) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:          uuid.NewString(),
		Coordinator: s.newCoordinator(),
		CreatedAt:   now,
		lastSeen:    now,
	}

	var evicted *Session

	s.mu.Lock()
	if s.maxSessions > 0 && len(s.data) >= s.maxSessions {
		evicted = s.oldestLocked()
		if evicted != nil {
			delete(s.data, evicted.ID)
		}
	}
	s.data[sess.ID] = sess
	s.mu.Unlock()

	if evicted != nil {
		log.Printf("INFO: session store full, evicting %s", evicted.ID)
		go evicted.Coordinator.Close()
	}
	return sess
}

// Get returns a session and marks it as used.
func (s *MemoryStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.lastSeen = s.now()
	return sess, nil
}

// Delete closes and removes a session.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.data[id]
	delete(s.data, id)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	sess.Coordinator.Close()
	return nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Sweep removes sessions idle for longer than the configured TTL and
// returns how many were removed.
func (s *MemoryStore) Sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTTL)

	var expired []*Session
	s.mu.Lock()
	for id, sess := range s.data {
		if sess.lastSeen.Before(cutoff) {
			expired = append(expired, sess)
			delete(s.data, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Coordinator.Close()
	}
	return len(expired)
}

// CloseAll closes every session.
func (s *MemoryStore) CloseAll() {
	s.mu.Lock()
	sessions := s.data
	s.data = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Coordinator.Close()
	}
}

func (s *MemoryStore) oldestLocked() *Session {
	var oldest *Session
	for _, sess := range s.data {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	return oldest
}
