// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestIntersect(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Rectangle
		want  Rectangle
		empty bool
	}{
		{"overlap", Rect(0, 0, 10, 10), Rect(5, 5, 20, 20), Rect(5, 5, 10, 10), false},
		{"contained", Rect(0, 0, 10, 10), Rect(2, 2, 4, 4), Rect(2, 2, 4, 4), false},
		{"disjoint", Rect(0, 0, 10, 10), Rect(20, 0, 30, 10), Rect(20, 0, 10, 10), true},
		{"touching", Rect(0, 0, 10, 10), Rect(10, 0, 20, 10), Rect(10, 0, 10, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
			if got.Empty() != tt.empty {
				t.Errorf("Empty = %v, want %v", got.Empty(), tt.empty)
			}
		})
	}
}

func TestPointIn(t *testing.T) {
	r := Rect(10, 10, 20, 20)
	for _, tt := range []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(15, 19.5), true},
		{Pt(20, 15), false},
		{Pt(9.9, 15), false},
	} {
		if got := tt.p.In(r); got != tt.want {
			t.Errorf("%v.In(%v) = %v, want %v", tt.p, r, got, tt.want)
		}
	}
}

func TestContains(t *testing.T) {
	outer := Rect(0, 0, 100, 100)
	if !outer.Contains(Rect(0, 0, 100, 100)) {
		t.Error("rectangle does not contain itself")
	}
	if outer.Contains(Rect(50, 50, 101, 60)) {
		t.Error("rectangle contains an overflowing rectangle")
	}
	if !outer.Contains(Rect(200, 200, 100, 100)) {
		t.Error("empty rectangle not contained")
	}
}

func TestRectAtDiv(t *testing.T) {
	r := RectAt(Pt(10, 20), Pt(30, 40))
	if r != Rect(10, 20, 40, 60) {
		t.Errorf("RectAt = %v", r)
	}
	if got := r.Div(2); got != Rect(5, 10, 20, 30) {
		t.Errorf("Div = %v", got)
	}
	if got := Pt(1, 5).Max(Pt(3, 2)); got != Pt(3, 5) {
		t.Errorf("Max = %v", got)
	}
	if got := Pt(1, 5).Min(Pt(3, 2)); got != Pt(1, 2) {
		t.Errorf("Min = %v", got)
	}
}
