package container

import "sync"

// syncMap is a thread-safe map used to cache per type unsafe accessors
type syncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

func (m *syncMap[K, V]) get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

// getOrCreate returns cached value or stores the one created by fn
func (m *syncMap[K, V]) getOrCreate(k K, fn func() V) V {
	if v, ok := m.get(k); ok {
		return v
	}
	m.mux.Lock()
	defer m.mux.Unlock()
	if v, ok := m.m[k]; ok {
		return v
	}
	v := fn()
	m.m[k] = v
	return v
}

func newSyncMap[K comparable, V any]() *syncMap[K, V] {
	return &syncMap[K, V]{m: make(map[K]V)}
}
