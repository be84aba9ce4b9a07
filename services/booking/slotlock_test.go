package booking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotLockStore_MutualExclusion(t *testing.T) {
	store := newSlotLockStore()

	var inSection int
	var maxInSection int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.acquire("prov-1", "2026-09-01")
			mu.Lock()
			inSection++
			if inSection > maxInSection {
				maxInSection = inSection
			}
			inSection--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInSection, "only one holder per provider+date at a time")
}

func TestSlotLockStore_EvictsIdleEntries(t *testing.T) {
	store := newSlotLockStore()

	var wg sync.WaitGroup
	for _, date := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(date string) {
				defer wg.Done()
				unlock := store.acquire("prov-1", date)
				unlock()
			}(date)
		}
	}
	wg.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.locks, "entries with no holders or waiters must be dropped")
}

func TestSlotLockStore_IndependentKeysDoNotBlock(t *testing.T) {
	store := newSlotLockStore()

	unlockA := store.acquire("prov-1", "2026-09-01")
	done := make(chan struct{})
	go func() {
		unlockB := store.acquire("prov-2", "2026-09-01")
		unlockB()
		close(done)
	}()
	<-done
	unlockA()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.locks)
}
