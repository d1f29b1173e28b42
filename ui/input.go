// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"golang.org/x/exp/slices"

	"treeui.org/f32"
	"treeui.org/io/event"
	"treeui.org/io/key"
	"treeui.org/io/pointer"
	"treeui.org/io/system"
)

// Input tracks the pointer and keyboard state and delivers events to
// widgets.
type Input struct {
	// devicePos is the pointer position in device units.
	devicePos f32.Point
	// pos is devicePos in UI units as of the last Finish.
	pos     f32.Point
	hasPos  bool
	moved   bool
	buttons map[pointer.Button]pointer.ButtonState
	// presses are the button transitions since the last Finish, in
	// arrival order.
	presses []pointer.Press
	// hits is the hit set of the last Finish, top most first.
	hits []NodeID

	focus        NodeID
	nextFocus    NodeID
	focusPending bool
}

// NewInput returns an Input with no pointer and all buttons up.
func NewInput() *Input {
	return &Input{
		buttons: make(map[pointer.Button]pointer.ButtonState),
	}
}

// Handle processes an event from the host and reports whether the
// UI consumed it. Button changes take effect on widgets during the
// next Finish, in the order they arrived, so a press and release
// within one frame are both delivered. A press or release is reported
// as consumed when the pointer is over a widget with pointer interest
// as of the last Finish, whether or not that widget sinks it.
func (in *Input) Handle(d *Dom, l *LayoutDom, e event.Event) bool {
	switch e := e.(type) {
	case system.ViewportEvent:
		l.SetUnscaledViewport(e.Rect)
	case system.ScaleEvent:
		l.SetScaleFactor(e.Factor)
	case pointer.Move:
		in.devicePos = e.Position
		in.hasPos = true
		in.moved = true
	case pointer.Exit:
		in.hasPos = false
	case pointer.Press:
		s := in.buttons[e.Button]
		if s.IsDown() != e.Down {
			in.presses = append(in.presses, e)
		}
		if e.Down {
			s = s.Press()
		} else {
			s = s.Release()
		}
		in.buttons[e.Button] = s
		return len(in.hits) > 0
	case pointer.Wheel:
		return in.scroll(d, l, e.Delta)
	case key.Event, key.TextEvent:
		return in.deliverFocused(d, l, e)
	}
	return false
}

// Finish hit tests the pointer against l and delivers the pointer
// events of the frame. Leave events are delivered before enter
// events, and enter events before button events. A button change is
// delivered to the hit nodes top most first until one of them returns
// event.Sink; the nodes below it do not see the change.
func (in *Input) Finish(d *Dom, l *LayoutDom) {
	var hits []NodeID
	if in.hasPos {
		in.pos = l.Metric().Point(in.devicePos)
		hits = hitTest(d, l, in.pos)
	}
	prev := in.hits
	in.hits = hits

	for _, id := range prev {
		if !slices.Contains(hits, id) {
			in.send(d, l, id, pointer.Leave{})
		}
	}
	for _, id := range hits {
		if !slices.Contains(prev, id) {
			in.send(d, l, id, pointer.Enter{})
		}
	}
	if in.moved {
		in.moved = false
		for _, id := range hits {
			if l.Get(id).Interest.Contain(event.MouseMove) {
				in.send(d, l, id, pointer.Moved{Position: in.pos})
			}
		}
	}

	for _, p := range in.presses {
		b, down := p.Button, p.Down
		sunk := false
		for _, id := range hits {
			e := pointer.ButtonChanged{Button: b, Down: down, Inside: true, Position: in.pos}
			if in.send(d, l, id, e) == event.Sink {
				sunk = true
				break
			}
		}
		l.RangeInterest(func(id NodeID, n *LayoutNode) bool {
			if n.Interest.Contain(event.MouseOutside) && !slices.Contains(hits, id) {
				in.send(d, l, id, pointer.ButtonChanged{Button: b, Down: down, Inside: false, Position: in.pos})
			}
			return true
		})
		if b == pointer.ButtonPrimary && down && !sunk && !in.focusPending {
			// Clicking where nothing handles the click drops focus.
			in.SetFocus(NodeID{})
		}
	}
	in.presses = in.presses[:0]
	for b, s := range in.buttons {
		in.buttons[b] = s.Settle()
	}
	in.applyFocus(d, l)
}

// hitTest returns the nodes with pointer interest under pos, top
// most first. Children are only visited when their parent contains
// pos, unless the parent's subtree opened an interest layer.
func hitTest(d *Dom, l *LayoutDom, pos f32.Point) []NodeID {
	hit := make(map[NodeID]bool)
	queue := []NodeID{d.Root()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n := l.Get(id)
		if n == nil {
			continue
		}
		inside := pos.In(n.Rect)
		if inside && n.Interest.Intersects(pointerInterest&^event.MouseOutside) && pos.In(n.Clip) {
			hit[id] = true
		}
		if inside || n.layered {
			queue = append(queue, d.Children(id)...)
		}
	}
	var hits []NodeID
	l.RangeInterest(func(id NodeID, _ *LayoutNode) bool {
		if hit[id] {
			hits = append(hits, id)
			delete(hit, id)
		}
		return true
	})
	return hits
}

// scroll delivers a scroll to the hit nodes with scroll interest
// until one of them sinks it.
func (in *Input) scroll(d *Dom, l *LayoutDom, delta f32.Point) bool {
	for _, id := range in.hits {
		n := l.Get(id)
		if n == nil || !n.Interest.Contain(event.MouseScroll) {
			continue
		}
		if in.send(d, l, id, pointer.Scroll{Delta: delta}) == event.Sink {
			return true
		}
	}
	return false
}

// deliverFocused delivers e to the focused node, then to its
// ancestors with keyboard interest until one sinks it.
func (in *Input) deliverFocused(d *Dom, l *LayoutDom, e event.Event) bool {
	id := in.focus
	if d.Get(id) == nil {
		return false
	}
	if in.send(d, l, id, e) == event.Sink {
		return true
	}
	for {
		p, ok := d.Parent(id)
		if !ok {
			return false
		}
		id = p
		if n := l.Get(id); n == nil || !n.Interest.Contain(event.FocusedKeyboard) {
			continue
		}
		if in.send(d, l, id, e) == event.Sink {
			return true
		}
	}
}

func (in *Input) send(d *Dom, l *LayoutDom, id NodeID, e event.Event) event.Response {
	n := d.Get(id)
	if n == nil {
		return event.Bubble
	}
	return n.widget.Event(EventContext{Dom: d, Layout: l, Input: in, ID: id}, e)
}

// SetFocus requests keyboard focus for id. The zero NodeID clears
// the focus. The change and its key.FocusEvents take effect at the
// end of the next Finish.
func (in *Input) SetFocus(id NodeID) {
	in.nextFocus = id
	in.focusPending = true
}

func (in *Input) applyFocus(d *Dom, l *LayoutDom) {
	if d.Get(in.focus) == nil {
		in.focus = NodeID{}
	}
	if !in.focusPending {
		return
	}
	in.focusPending = false
	next := in.nextFocus
	if d.Get(next) == nil {
		next = NodeID{}
	}
	if next == in.focus {
		return
	}
	old := in.focus
	in.focus = next
	if old.Valid() {
		in.send(d, l, old, key.FocusEvent{Focus: false})
	}
	if next.Valid() {
		in.send(d, l, next, key.FocusEvent{Focus: true})
	}
}

// Focus returns the focused node, or the zero NodeID.
func (in *Input) Focus() NodeID {
	return in.focus
}

// Hits returns the nodes under the pointer as of the last Finish,
// top most first.
func (in *Input) Hits() []NodeID {
	return in.hits
}

// ButtonState returns the state of button b.
func (in *Input) ButtonState(b pointer.Button) pointer.ButtonState {
	return in.buttons[b]
}

// Position returns the pointer position in UI units as of the last
// Finish, and whether the pointer is over the viewport.
func (in *Input) Position() (f32.Point, bool) {
	return in.pos, in.hasPos
}
