package resumes

import (
	"context"
	"sync"
	"time"
)

const defaultSweepInterval = time.Minute

type memoryEntry struct {
	resume   Resume
	lastSeen time.Time
}

// MemoryStore is an in-memory Store. Entries idle for longer than the TTL
// are treated as absent and reclaimed by a background sweep.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryEntry // sessionID -> current resume
	ttl  time.Duration
	now  func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore constructs a MemoryStore. A ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration, now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  now,
		stop: make(chan struct{}),
	}
}

// StartJanitor sweeps expired sessions every interval until Close is called.
func (s *MemoryStore) StartJanitor(interval time.Duration) {
	if s.ttl <= 0 {
		return
	}
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Put stores/overwrites the current resume for a session.
func (s *MemoryStore) Put(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if resume.SessionID == "" {
		return ErrInvalidInput
	}
	now := s.now()
	if resume.UploadedAt.IsZero() {
		resume.UploadedAt = now.UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[resume.SessionID] = memoryEntry{resume: resume, lastSeen: now}
	return nil
}

// Get returns the current resume for a session and refreshes its idle timer.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if sessionID == "" {
		return Resume{}, ErrNotFound
	}
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.data[sessionID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	if s.expired(entry, now) {
		delete(s.data, sessionID)
		return Resume{}, ErrNotFound
	}
	entry.lastSeen = now
	s.data[sessionID] = entry
	return entry.resume, nil
}

// Sweep removes expired sessions and reports how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.data {
		if s.expired(entry, now) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions, including not-yet-swept ones.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MemoryStore) expired(entry memoryEntry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(entry.lastSeen) > s.ttl
}

var _ Store = (*MemoryStore)(nil)
