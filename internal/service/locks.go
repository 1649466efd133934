package service

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex serializes cart consumption per user, so two concurrent
// conversions of the same cart cannot both observe it non-empty.
// Mutexes are kept for the life of the process; the key space is
// bounded by the active user set.
type keyedMutex struct {
	locks sync.Map
}

func (k *keyedMutex) Lock(key uuid.UUID) (unlock func()) {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
