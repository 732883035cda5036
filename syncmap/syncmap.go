// Copyright (c) 2026 BVK Chaitanya

// Package syncmap provides a type-safe wrapper over sync.Map.
package syncmap

import "sync"

type Map[K comparable, V any] struct {
	v sync.Map
}

func (m *Map[K, V]) Load(key K) (value V, ok bool) {
	v, ok := m.v.Load(key)
	if !ok {
		return value, false
	}
	return v.(V), true
}

func (m *Map[K, V]) Store(key K, value V) {
	m.v.Store(key, value)
}

func (m *Map[K, V]) Delete(key K) {
	m.v.Delete(key)
}

func (m *Map[K, V]) LoadAndDelete(key K) (value V, loaded bool) {
	v, loaded := m.v.LoadAndDelete(key)
	if !loaded {
		return value, false
	}
	return v.(V), true
}

// CompareAndDelete deletes the entry for key if its value is equal to old.
// Value type must be comparable.
func (m *Map[K, V]) CompareAndDelete(key K, old V) (deleted bool) {
	return m.v.CompareAndDelete(key, old)
}

func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.v.Range(func(key, value any) bool {
		return f(key.(K), value.(V))
	})
}

// Keys returns a snapshot of all keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	var keys []K
	m.v.Range(func(key, _ any) bool {
		keys = append(keys, key.(K))
		return true
	})
	return keys
}

// Len returns the number of entries. It is linear in the size of the map.
func (m *Map[K, V]) Len() int {
	n := 0
	m.v.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
