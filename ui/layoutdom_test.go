// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"math/rand"
	"testing"

	"treeui.org/clip"
	"treeui.org/f32"
	"treeui.org/io/event"
	"treeui.org/io/system"
	"treeui.org/layout"
)

func systemViewport(w, h float32) system.ViewportEvent {
	return system.ViewportEvent{Rect: f32.Rect(0, 0, w, h)}
}

func TestConstraintLaw(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	d := NewDom()
	l := NewLayoutDom()
	var sizes []float32
	for i := 0; i < 200; i++ {
		sizes = append(sizes, r.Float32()*300-50)
	}
	for i := 0; i < len(sizes); i += 2 {
		size := f32.Pt(sizes[i], sizes[i+1])
		d.Start()
		doBox(boxProps{Size: size}, nil)
		d.Finish()
		id := d.Children(d.Root())[0]
		for j := 0; j < 20; j++ {
			mn := f32.Pt(r.Float32()*100, r.Float32()*100)
			mx := mn.Add(f32.Pt(r.Float32()*100, r.Float32()*100))
			if j%5 == 0 {
				mx.X = f32.Inf
			}
			cs := layout.Constraints{Min: mn, Max: mx}
			got := l.Calculate(d, nil, id, cs)
			if got.X < mn.X || got.Y < mn.Y || got.X > mx.X || got.Y > mx.Y {
				t.Fatalf("size %v of %v escapes %v", got, size, cs)
			}
			if n := l.Get(id); n.Rect.Size() != got {
				t.Fatalf("recorded size %v, returned %v", n.Rect.Size(), got)
			}
		}
	}
}

func TestAbsolutePositions(t *testing.T) {
	s := NewState()
	s.Handle(system.ViewportEvent{Rect: f32.Rect(10, 20, 110, 120)})
	s.Start()
	doRow(func() {
		doBox(boxProps{Size: f32.Pt(30, 10)}, nil)
		doBox(boxProps{Size: f32.Pt(20, 40)}, func() {
			doPlace(placeProps{Pos: f32.Pt(5, 5)}, func() {
				doBox(boxProps{Size: f32.Pt(4, 4)}, nil)
			})
		})
	})
	s.Finish()

	d, l := s.Dom(), s.Layout()
	row := d.Children(d.Root())[0]
	boxes := d.Children(row)
	inner := d.Children(d.Children(boxes[1])[0])[0]
	tests := []struct {
		name string
		id   NodeID
		want f32.Rectangle
	}{
		{"root", d.Root(), f32.Rect(10, 20, 110, 120)},
		{"row", row, f32.Rect(10, 20, 60, 60)},
		{"first", boxes[0], f32.Rect(10, 20, 40, 30)},
		{"second", boxes[1], f32.Rect(40, 20, 60, 60)},
		{"nested", inner, f32.Rect(45, 25, 49, 29)},
	}
	for _, tt := range tests {
		if got := l.Get(tt.id).Rect; got != tt.want {
			t.Errorf("%s: rect %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClipLogic(t *testing.T) {
	tests := []struct {
		name     string
		pos      f32.Point
		logic    clip.Logic
		wantRect f32.Rectangle
		wantClip f32.Rectangle
	}{
		{
			name:     "pass",
			pos:      f32.Pt(90, 90),
			wantRect: f32.Rect(90, 90, 110, 110),
			wantClip: f32.Rect(0, 0, 100, 100),
		},
		{
			name:     "constrain to own rect",
			pos:      f32.Pt(90, 90),
			logic:    clip.Constrain(clip.ParentClip, clip.LayoutRect),
			wantRect: f32.Rect(90, 90, 110, 110),
			wantClip: f32.Rect(90, 90, 100, 100),
		},
		{
			name:     "contain in viewport",
			pos:      f32.Pt(90, 90),
			logic:    clip.Contain(clip.LayoutRect, clip.Viewport),
			wantRect: f32.Rect(80, 80, 100, 100),
			wantClip: f32.Rect(80, 80, 100, 100),
		},
		{
			name:     "contain already inside",
			pos:      f32.Pt(10, 10),
			logic:    clip.Contain(clip.LayoutRect, clip.Viewport),
			wantRect: f32.Rect(10, 10, 30, 30),
			wantClip: f32.Rect(10, 10, 30, 30),
		},
		{
			name:     "override",
			pos:      f32.Pt(10, 10),
			logic:    clip.Override(f32.Rectangle{}),
			wantRect: f32.Rect(10, 10, 30, 30),
			wantClip: f32.Rectangle{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.Handle(systemViewport(100, 100))
			s.Start()
			doPlace(placeProps{Pos: tt.pos}, func() {
				doBox(boxProps{Size: f32.Pt(20, 20), Clip: tt.logic}, func() {
					doBox(boxProps{Size: f32.Pt(5, 5)}, nil)
				})
			})
			s.Finish()
			d, l := s.Dom(), s.Layout()
			id := d.Children(d.Children(d.Root())[0])[0]
			n := l.Get(id)
			if n.Rect != tt.wantRect {
				t.Errorf("rect %v, want %v", n.Rect, tt.wantRect)
			}
			if n.Clip != tt.wantClip {
				t.Errorf("clip %v, want %v", n.Clip, tt.wantClip)
			}
			child := l.Get(d.Children(id)[0])
			if child.Rect.Min != n.Rect.Min {
				t.Errorf("child at %v, parent at %v", child.Rect.Min, n.Rect.Min)
			}
			if child.Clip != n.Clip {
				t.Errorf("child clip %v does not pass parent clip %v", child.Clip, n.Clip)
			}
		})
	}
}

func TestScaledViewport(t *testing.T) {
	s := NewState()
	s.Handle(systemViewport(200, 100))
	s.Handle(system.ScaleEvent{Factor: 2})
	l := s.Layout()
	if got, want := l.Viewport(), f32.Rect(0, 0, 100, 50); got != want {
		t.Errorf("viewport %v, want %v", got, want)
	}
	if got, want := l.UnscaledViewport(), f32.Rect(0, 0, 200, 100); got != want {
		t.Errorf("unscaled viewport %v, want %v", got, want)
	}
	s.Start()
	doBox(boxProps{Size: f32.Pt(500, 500)}, nil)
	s.Finish()
	id := s.Dom().Children(s.Dom().Root())[0]
	if got, want := l.Get(id).Rect, f32.Rect(0, 0, 100, 50); got != want {
		t.Errorf("rect %v, want %v", got, want)
	}
	s.Handle(systemViewport(400, 400))
	if got, want := l.Viewport(), f32.Rect(0, 0, 200, 200); got != want {
		t.Errorf("viewport %v after resize, want %v", got, want)
	}
}

func TestZeroViewport(t *testing.T) {
	s := NewState()
	s.Start()
	doBox(boxProps{Size: f32.Pt(10, 10)}, nil)
	s.Finish()
	id := s.Dom().Children(s.Dom().Root())[0]
	if got := s.Layout().Get(id).Rect; got != (f32.Rectangle{}) {
		t.Errorf("rect %v in zero viewport", got)
	}
}

func TestInterestLayers(t *testing.T) {
	s := NewState()
	s.Handle(systemViewport(100, 100))
	s.Start()
	a := BeginWidget[box](s.Dom(), boxProps{Interest: event.MouseInside})
	EndWidget[box](s.Dom(), a)
	var popup NodeID
	doPlace(placeProps{Layer: true}, func() {
		popup = BeginWidget[box](s.Dom(), boxProps{Interest: event.MouseInside})
		EndWidget[box](s.Dom(), popup)
	})
	b := BeginWidget[box](s.Dom(), boxProps{Interest: event.MouseInside | event.MouseScroll})
	EndWidget[box](s.Dom(), b)
	focus := BeginWidget[box](s.Dom(), boxProps{Interest: event.FocusedKeyboard})
	EndWidget[box](s.Dom(), focus)
	s.Finish()

	var got []NodeID
	s.Layout().RangeInterest(func(id NodeID, _ *LayoutNode) bool {
		got = append(got, id)
		return true
	})
	want := []NodeID{popup, b, a}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interest %d is %v, want %v", i, got[i], want[i])
		}
	}
	placeID := s.Dom().Children(s.Dom().Root())[1]
	if !s.Layout().Get(placeID).layered {
		t.Error("layer container not marked layered")
	}
	if s.Layout().Get(a).layered {
		t.Error("leaf marked layered")
	}
}

func TestPopBaseLayer(t *testing.T) {
	l := NewLayoutDom()
	l.CalculateAll(NewDom(), NewInput())
	mustPanic(t, "PopLayer", l.PopLayer)
}
