package downloads

import (
	"sync"
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/google/uuid"
)

const DefaultTTL = 15 * time.Minute

type entry struct {
	artifact  *domain.Artifact
	expiresAt time.Time
}

// Store keeps generated artifacts in memory behind one-off tokens until they
// expire.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items map[string]entry
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry),
	}
}

// Put stores the artifact and returns its token and expiry.
func (s *Store) Put(a *domain.Artifact) (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeExpiredLocked(now)

	token := uuid.NewString()
	expiresAt := now.Add(s.ttl)
	s.items[token] = entry{artifact: a, expiresAt: expiresAt}
	return token, expiresAt
}

func (s *Store) Get(token string) (*domain.Artifact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeExpiredLocked(now)

	v, ok := s.items[token]
	if !ok {
		return nil, false
	}
	return v.artifact, true
}

func (s *Store) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}
