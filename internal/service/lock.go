package service

import "sync"

// SerialLocks hands out one mutex per key so the engines can serialize the
// read-validate-mutate sequence per MOF serial and per item serial. Locks are
// kept for the life of the process; the key space is bounded by the number of
// serials the warehouse handles.
type SerialLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSerialLocks() *SerialLocks {
	return &SerialLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *SerialLocks) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

// Lock acquires the mutexes for the given keys in argument order and returns
// an unlock function. Both engines lock the MOF serial before the item serial
// so a concurrent scan and verify cannot deadlock.
func (l *SerialLocks) Lock(keys ...string) func() {
	acquired := make([]*sync.Mutex, 0, len(keys))
	for _, k := range keys {
		m := l.get(k)
		m.Lock()
		acquired = append(acquired, m)
	}
	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}
