// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package omap provides a string-keyed map that remembers the order in
// which keys were first inserted. The zero value is an empty map ready
// for use.
package omap

// A Map associates string keys with values of type V. Iteration with
// Keys yields keys in insertion order: setting an existing key keeps
// its original position, deleting and re-inserting a key moves it to
// the end.
type Map[V any] struct {
	keys []string
	vals map[string]V
}

// New returns a new empty map.
func New[V any]() *Map[V] {
	return &Map[V]{vals: make(map[string]V)}
}

// Len returns the number of keys in the map.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored for key and whether the key is present.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key is present in the map.
func (m *Map[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.vals[key]
	return ok
}

// Set stores value under key, appending key to the iteration order if
// it was not already present. It returns the previous value and whether
// the key existed before the call.
func (m *Map[V]) Set(key string, value V) (prev V, replaced bool) {
	if m.vals == nil {
		m.vals = make(map[string]V)
	}
	prev, replaced = m.vals[key]
	if !replaced {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
	return prev, replaced
}

// Delete removes key from the map. It returns the removed value and
// whether the key was present.
func (m *Map[V]) Delete(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.vals[key]
	if !ok {
		return v, false
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Keys returns the keys in insertion order. The returned slice is a
// copy and may be retained by the caller.
func (m *Map[V]) Keys() []string {
	if m == nil || len(m.keys) == 0 {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Clear removes all keys from the map.
func (m *Map[V]) Clear() {
	m.keys = m.keys[:0]
	for k := range m.vals {
		delete(m.vals, k)
	}
}
