package store

import "sync"

// keyedMutex serializes writers per key. Toggles and content updates on the
// same article are read-modify-write sequences over a loaded snapshot, so
// two of them must never interleave.
type keyedMutex struct {
	locks sync.Map
}

// Lock blocks until the key is held and returns the unlock function.
// Acquisition is uninterruptible, so callers take the lock before starting
// their query deadline; the deadline then budgets the database work alone.
// Entries are kept for the life of the process; the population is bounded by
// the number of distinct articles mutated.
func (k *keyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
