// SPDX-License-Identifier: Unlicense OR MIT

// Package arena implements a generational slot store.
//
// An Index addresses a slot together with the generation the slot had
// when the value was inserted. Removing a value bumps the slot's
// generation, so stale indices that refer to a freed and reused slot
// are detected instead of silently aliasing the new value.
package arena

import "fmt"

// Index is a generational handle into an Arena. The zero Index is
// never valid.
type Index struct {
	slot uint32
	gen  uint32
}

// Arena stores values of type T addressed by Index.
type Arena[T any] struct {
	entries []entry[T]
	free    []uint32
	len     int
}

type entry[T any] struct {
	gen      uint32
	occupied bool
	value    T
}

// Slot returns the slot number of i.
func (i Index) Slot() uint32 {
	return i.slot
}

// Generation returns the generation of i.
func (i Index) Generation() uint32 {
	return i.gen
}

// Valid reports whether i could refer to a value. The zero Index is
// not valid.
func (i Index) Valid() bool {
	return i.gen != 0
}

func (i Index) String() string {
	return fmt.Sprintf("%d:%d", i.slot, i.gen)
}

// Insert stores v in a free slot and returns its index.
func (a *Arena[T]) Insert(v T) Index {
	a.len++
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]
		e := &a.entries[slot]
		e.occupied = true
		e.value = v
		return Index{slot: slot, gen: e.gen}
	}
	slot := uint32(len(a.entries))
	a.entries = append(a.entries, entry[T]{gen: 1, occupied: true, value: v})
	return Index{slot: slot, gen: 1}
}

// Get returns a pointer to the value at i, or nil if i is stale or
// was never inserted. The pointer is invalidated by the next Insert.
func (a *Arena[T]) Get(i Index) *T {
	if !a.Contains(i) {
		return nil
	}
	return &a.entries[i.slot].value
}

// Contains reports whether i refers to a live value.
func (a *Arena[T]) Contains(i Index) bool {
	if int(i.slot) >= len(a.entries) {
		return false
	}
	e := &a.entries[i.slot]
	return e.occupied && e.gen == i.gen
}

// Remove frees the slot at i and returns the value it held.
func (a *Arena[T]) Remove(i Index) (T, bool) {
	var zero T
	if !a.Contains(i) {
		return zero, false
	}
	e := &a.entries[i.slot]
	v := e.value
	e.value = zero
	e.occupied = false
	e.gen++
	a.free = append(a.free, i.slot)
	a.len--
	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.len
}

// Range calls f for every live value in slot order until f returns
// false.
func (a *Arena[T]) Range(f func(Index, *T) bool) {
	for slot := range a.entries {
		e := &a.entries[slot]
		if !e.occupied {
			continue
		}
		if !f(Index{slot: uint32(slot), gen: e.gen}, &e.value) {
			return
		}
	}
}
