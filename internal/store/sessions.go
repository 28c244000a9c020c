package store

import (
	"sync"

	"github.com/shrusti-bit/AI-Study-Hub/internal/models"
)

// Sessions is a get-or-create session store over an injected
// persistence backend. Each user's hub is guarded by its own mutex so
// concurrent requests for the same session never interleave a
// read-modify-write.
type Sessions struct {
	mu      sync.Mutex
	backend Store
	locks   map[string]*sync.Mutex
}

func NewSessions(backend Store) *Sessions {
	return &Sessions{
		backend: backend,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Sessions) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// View loads the hub for userID and calls fn with it. The hub is not
// saved afterwards.
func (s *Sessions) View(userID string, fn func(*models.HubData) error) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	data, err := s.backend.Load(userID)
	if err != nil {
		return err
	}
	return fn(data)
}

// Update loads the hub for userID, calls fn to mutate it, and persists
// the result if fn succeeds.
func (s *Sessions) Update(userID string, fn func(*models.HubData) error) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	data, err := s.backend.Load(userID)
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return s.backend.Save(userID, data)
}
