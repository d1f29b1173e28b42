// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestButtonStateMachine(t *testing.T) {
	s := Up
	s = s.Press()
	if s != JustDown {
		t.Fatalf("Up.Press() = %v, want JustDown", s)
	}
	s = s.Settle()
	if s != Down {
		t.Fatalf("JustDown.Settle() = %v, want Down", s)
	}
	if s.Press() != Down {
		t.Errorf("Down.Press() = %v, want Down", s.Press())
	}
	s = s.Release()
	if s != JustUp {
		t.Fatalf("Down.Release() = %v, want JustUp", s)
	}
	if !s.Changed() || s.IsDown() {
		t.Errorf("JustUp: Changed=%v IsDown=%v", s.Changed(), s.IsDown())
	}
	s = s.Settle()
	if s != Up {
		t.Fatalf("JustUp.Settle() = %v, want Up", s)
	}
	if s.Settle() != Up {
		t.Errorf("Up.Settle() = %v, want Up", s.Settle())
	}
}

func TestStateString(t *testing.T) {
	for _, tc := range []struct {
		s   ButtonState
		res string
	}{
		{Up, "Up"},
		{JustDown, "JustDown"},
		{Down, "Down"},
		{JustUp, "JustUp"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.s.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
	if got := Button(64).String(); got != "Button(64)" {
		t.Errorf("got %q", got)
	}
}
