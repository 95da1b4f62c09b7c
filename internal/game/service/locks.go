package service

import (
	"sort"
	"sync"
)

// ownerLocks serialises load-mutate-save cycles per owner. Battles are
// long-running in-memory computations with no intermediate persistence, so
// two concurrent requests for the same owner must not interleave.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for ownerID, creating it on first use.
// Lock entries are never removed; the owner set is small and bounded.
func (o *ownerLocks) lock(ownerID string) func() {
	o.mu.Lock()
	m, ok := o.locks[ownerID]
	if !ok {
		m = &sync.Mutex{}
		o.locks[ownerID] = m
	}
	o.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// lockBoth acquires both owners' mutexes in sorted ID order so two
// concurrent duels between the same pair cannot deadlock.
//
// Precondition: a != b.
func (o *ownerLocks) lockBoth(a, b string) func() {
	ids := []string{a, b}
	sort.Strings(ids)
	unlockFirst := o.lock(ids[0])
	unlockSecond := o.lock(ids[1])
	return func() {
		unlockSecond()
		unlockFirst()
	}
}
