// Package session holds ephemeral per-session state. Its only current use is
// remembering that a user already confirmed edits to a locked project, so they
// are not re-prompted on every field change within the same session.
package session

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// AckStore tracks per-session guard acknowledgments. Entries expire with the
// session TTL; there is no persistence across restarts by design.
type AckStore interface {
	Has(key string) bool
	Set(key string)
	Clear(key string)
}

// AckKey builds the acknowledgment key for a session/project pair.
func AckKey(sessionID, projectID string) string {
	return fmt.Sprintf("ack:%s:%s", sessionID, projectID)
}

type inMemoryAckStore struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewInMemoryAckStore creates an AckStore whose entries expire after ttl.
func NewInMemoryAckStore(ttl time.Duration) AckStore {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &inMemoryAckStore{
		store: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (s *inMemoryAckStore) Has(key string) bool {
	_, found := s.store.Get(key)
	return found
}

func (s *inMemoryAckStore) Set(key string) {
	s.store.Set(key, struct{}{}, s.ttl)
}

func (s *inMemoryAckStore) Clear(key string) {
	s.store.Delete(key)
}
