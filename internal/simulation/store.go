package simulation

import (
	"sync"
	"time"
)

// Store keeps the live session per user. Get, Put and Delete assume the
// caller holds the user's lock obtained from Lock; this serializes
// concurrent messages from the same user while leaving different users
// fully independent.
type Store interface {
	Lock(userID string) (unlock func())
	Get(userID string) *Session
	Put(userID string, s *Session)
	Delete(userID string)
	// Evict drops sessions idle for longer than idleFor. It only takes
	// locks it can get immediately, so an in-flight request is never
	// interrupted. Returns the evicted sessions.
	Evict(idleFor time.Duration) []*Session
}

// slot.refs counts outstanding Lock holders, guarded by MemoryStore.mu.
// An empty slot is only removed once refs drops to zero, so a goroutine
// that already fetched the slot can never write into an orphaned copy.
type slot struct {
	mu   sync.Mutex
	refs int
	sess *Session
}

// MemoryStore is the in-process Store used in production and tests.
// Slots for users with no session and no lock holders are reclaimed, so
// the map only grows with concurrently active users.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string]*slot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string]*slot{}}
}

func (st *MemoryStore) Lock(userID string) func() {
	st.mu.Lock()
	sl, ok := st.slots[userID]
	if !ok {
		sl = &slot{}
		st.slots[userID] = sl
	}
	sl.refs++
	st.mu.Unlock()

	sl.mu.Lock()
	return func() {
		sl.mu.Unlock()
		st.mu.Lock()
		sl.refs--
		if sl.refs == 0 && sl.sess == nil && st.slots[userID] == sl {
			delete(st.slots, userID)
		}
		st.mu.Unlock()
	}
}

// lookup never creates a slot. Get, Put and Delete run under the
// caller's user lock, whose outstanding reference keeps the slot alive.
func (st *MemoryStore) lookup(userID string) *slot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.slots[userID]
}

func (st *MemoryStore) Get(userID string) *Session {
	sl := st.lookup(userID)
	if sl == nil {
		return nil
	}
	return sl.sess
}

func (st *MemoryStore) Put(userID string, s *Session) {
	if sl := st.lookup(userID); sl != nil {
		sl.sess = s
	}
}

func (st *MemoryStore) Delete(userID string) {
	if sl := st.lookup(userID); sl != nil {
		sl.sess = nil
	}
}

func (st *MemoryStore) Evict(idleFor time.Duration) []*Session {
	cutoff := time.Now().Add(-idleFor)

	st.mu.Lock()
	candidates := make(map[string]*slot, len(st.slots))
	for id, sl := range st.slots {
		candidates[id] = sl
	}
	st.mu.Unlock()

	var evicted []*Session
	for id, sl := range candidates {
		if !sl.mu.TryLock() {
			continue
		}
		if sl.sess != nil && sl.sess.LastActivity.Before(cutoff) {
			evicted = append(evicted, sl.sess)
			sl.sess = nil
		}
		sl.mu.Unlock()

		// Reclaim the slot unless a Lock holder arrived in the
		// meantime; the identity check guards against a replacement
		// slot created after an earlier reclaim.
		st.mu.Lock()
		if sl.refs == 0 && sl.sess == nil && st.slots[id] == sl {
			delete(st.slots, id)
		}
		st.mu.Unlock()
	}
	return evicted
}
