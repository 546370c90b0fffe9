package simulation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotCount(st *MemoryStore) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.slots)
}

func TestStoreReclaimsSlotAfterEmptyLock(t *testing.T) {
	st := NewMemoryStore()

	// A status probe for an unknown user must not leave a slot behind.
	unlock := st.Lock("ghost")
	assert.Nil(t, st.Get("ghost"))
	assert.Equal(t, 1, slotCount(st))
	unlock()

	assert.Equal(t, 0, slotCount(st))
}

func TestStoreKeepsSlotWhileSessionLives(t *testing.T) {
	st := NewMemoryStore()

	unlock := st.Lock("u1")
	st.Put("u1", &Session{UserID: "u1", LastActivity: time.Now()})
	unlock()
	assert.Equal(t, 1, slotCount(st))

	unlock = st.Lock("u1")
	require.NotNil(t, st.Get("u1"))
	st.Delete("u1")
	unlock()
	assert.Equal(t, 0, slotCount(st))
}

func TestEvictReclaimsIdleSlots(t *testing.T) {
	st := NewMemoryStore()
	now := time.Now()

	unlock := st.Lock("stale")
	st.Put("stale", &Session{UserID: "stale", LastActivity: now.Add(-2 * time.Hour)})
	unlock()
	unlock = st.Lock("fresh")
	st.Put("fresh", &Session{UserID: "fresh", LastActivity: now})
	unlock()

	evicted := st.Evict(time.Hour)
	require.Len(t, evicted, 1)
	assert.Equal(t, "stale", evicted[0].UserID)
	assert.Equal(t, 1, slotCount(st))

	unlock = st.Lock("fresh")
	assert.NotNil(t, st.Get("fresh"))
	unlock()
}

func TestStoreChurnDoesNotAccumulateSlots(t *testing.T) {
	st := NewMemoryStore()
	var wg sync.WaitGroup

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				unlock := st.Lock("shared")
				st.Put("shared", &Session{UserID: "shared", LastActivity: time.Now()})
				st.Delete("shared")
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, slotCount(st))
}
