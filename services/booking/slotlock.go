package booking

import "sync"

// slotLockStore serializes booking attempts per (provider, date) key so the
// conflict check and the insert commit as one critical section. Without it,
// two overlapping requests can both pass the check before either writes.
type slotLockStore struct {
	mu    sync.Mutex
	locks map[string]*slotLock
}

// slotLock is refcounted; the store drops the entry once no request holds or
// waits on it, so the map does not grow with every key ever booked.
type slotLock struct {
	mu   sync.Mutex
	refs int
}

func newSlotLockStore() *slotLockStore {
	return &slotLockStore{locks: make(map[string]*slotLock)}
}

// acquire locks the mutex for the given provider+date key and returns its
// release function.
func (s *slotLockStore) acquire(providerID, date string) func() {
	key := providerID + "|" + date

	s.mu.Lock()
	lock, exists := s.locks[key]
	if !exists {
		lock = &slotLock{}
		s.locks[key] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		s.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}
