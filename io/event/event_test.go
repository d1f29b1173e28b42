// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

func TestInterest(t *testing.T) {
	i := MouseInside | FocusedKeyboard
	if !i.Intersects(MouseAll) {
		t.Error("MouseInside does not intersect MouseAll")
	}
	if i.Contain(MouseAll) {
		t.Error("partial set contains MouseAll")
	}
	if got, want := i.String(), "MouseInside|FocusedKeyboard"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if Interest(0).Intersects(MouseAll) {
		t.Error("empty interest intersects MouseAll")
	}
}
