package services

import (
	"sort"
	"sync"
)

// tableLocks serializes confirmations per table. The availability re-check in
// Confirm spans several booking rows read non-atomically relative to the
// write, so two staff confirming overlapping windows could both pass the
// check; holding the table locks across check-and-commit closes that window.
// Locks are acquired in ascending id order so overlapping sets cannot
// deadlock each other.
type tableLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newTableLocks() *tableLocks {
	return &tableLocks{locks: make(map[uint]*sync.Mutex)}
}

func (tl *tableLocks) lockFor(id uint) *sync.Mutex {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	l, ok := tl.locks[id]
	if !ok {
		l = &sync.Mutex{}
		tl.locks[id] = l
	}
	return l
}

// Acquire locks every table id and returns the release func.
func (tl *tableLocks) Acquire(ids []uint) func() {
	sorted := make([]uint, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	held := make([]*sync.Mutex, 0, len(sorted))
	var prev uint
	for i, id := range sorted {
		if i > 0 && id == prev {
			continue
		}
		l := tl.lockFor(id)
		l.Lock()
		held = append(held, l)
		prev = id
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
