// Package store holds the in-memory state containers behind every screen.
//
// Each store owns one slice of application state. Mutations never edit the
// current value in place: they derive a new value from the old one and swap
// it in under the store's mutex, then notify subscribers synchronously, in
// subscription order, before returning. Slices handed out by reads are
// copies of the top-level list and may be kept by the caller; nested slices
// inside records are shared and must be treated as read-only.
package store

import (
	"slices"
	"sync"
)

type subscriber[S any] struct {
	id int
	fn func(S)
}

// cell is a mutex-guarded value with change listeners.
type cell[S any] struct {
	mu     sync.Mutex
	state  S
	nextID int
	subs   []subscriber[S]
}

func (c *cell[S]) load() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// update commits fn's result when fn reports a change. Listeners run after
// the lock is released so they may read from the store.
func (c *cell[S]) update(fn func(S) (S, bool)) bool {
	c.mu.Lock()
	next, changed := fn(c.state)
	if !changed {
		c.mu.Unlock()
		return false
	}
	c.state = next
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(next)
	}
	return true
}

func (c *cell[S]) subscribe(fn func(S)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber[S]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.subs = slices.DeleteFunc(slices.Clone(c.subs), func(s subscriber[S]) bool { return s.id == id })
		})
	}
}

// appended returns list plus v without touching list's backing array.
func appended[T any](list []T, v T) []T {
	return append(slices.Clip(list), v)
}

// replaced applies patch to every element matched by match and reports
// whether anything matched. The input slice is left untouched.
func replaced[T any](list []T, match func(T) bool, patch func(T) T) ([]T, bool) {
	var out []T
	for i, item := range list {
		if !match(item) {
			continue
		}
		if out == nil {
			out = slices.Clone(list)
		}
		out[i] = patch(item)
	}
	if out == nil {
		return list, false
	}
	return out, true
}

func filtered[T any](list []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range list {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func first[T any](list []T, match func(T) bool) (T, bool) {
	for _, item := range list {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
