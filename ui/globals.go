// SPDX-License-Identifier: Unlicense OR MIT

package ui

import "reflect"

// Global returns the value of type T shared by all widgets of d,
// calling init to create it on first use. A nil init creates the zero
// value.
func Global[T any](d *Dom, init func() T) *T {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := d.globals[key]; ok {
		return v.(*T)
	}
	v := new(T)
	if init != nil {
		*v = init()
	}
	d.globals[key] = v
	return v
}
