// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"fmt"

	"treeui.org/clip"
	"treeui.org/f32"
	"treeui.org/io/event"
	"treeui.org/layout"
	"treeui.org/unit"
)

// LayoutNode is the layout of a node for the current frame.
type LayoutNode struct {
	// Rect is the node's rectangle. During layout its position is
	// relative to the parent; after CalculateAll it is relative to
	// the viewport.
	Rect f32.Rectangle
	// Clip is the resolved clip rectangle.
	Clip f32.Rectangle
	// Interest is the set of events the widget declared interest in.
	Interest event.Interest

	logic clip.Logic
	layer int
	// layered is set when the node's subtree opened an interest
	// layer.
	layered bool
}

// LayoutDom computes and holds the layout of a Dom. The layout is
// recomputed from scratch by every CalculateAll.
type LayoutDom struct {
	nodes map[NodeID]*LayoutNode
	// layers holds the pointer interested nodes in layout order, one
	// slice per interest layer.
	layers [][]NodeID
	open   []int

	metric   unit.Metric
	unscaled f32.Rectangle
	viewport f32.Rectangle
}

// pointerInterest are the interests that register a node for hit
// testing.
const pointerInterest = event.MouseAll

// NewLayoutDom returns an empty layout with a scale factor of 1.
func NewLayoutDom() *LayoutDom {
	return &LayoutDom{
		nodes:  make(map[NodeID]*LayoutNode),
		metric: unit.Identity,
	}
}

// SetScaleFactor sets the number of device units per UI unit.
// Non-positive factors are ignored.
func (l *LayoutDom) SetScaleFactor(f float32) {
	m, ok := unit.Scale(f)
	if !ok {
		return
	}
	l.metric = m
	l.viewport = m.Rect(l.unscaled)
}

// SetUnscaledViewport sets the viewport in device units.
func (l *LayoutDom) SetUnscaledViewport(r f32.Rectangle) {
	l.unscaled = r
	l.viewport = l.metric.Rect(r)
}

// ScaleFactor returns the number of device units per UI unit.
func (l *LayoutDom) ScaleFactor() float32 {
	return l.metric.Factor()
}

// Metric returns the conversion between device and UI units.
func (l *LayoutDom) Metric() unit.Metric {
	return l.metric
}

// Viewport returns the viewport in UI units.
func (l *LayoutDom) Viewport() f32.Rectangle {
	return l.viewport
}

// UnscaledViewport returns the viewport in device units.
func (l *LayoutDom) UnscaledViewport() f32.Rectangle {
	return l.unscaled
}

// Get returns the layout of id, or nil if id was not laid out this
// frame.
func (l *LayoutDom) Get(id NodeID) *LayoutNode {
	return l.nodes[id]
}

// Len returns the number of nodes laid out this frame.
func (l *LayoutDom) Len() int {
	return len(l.nodes)
}

// CalculateAll lays out the whole tree of d within the viewport and
// resolves the absolute position and clip of every node.
func (l *LayoutDom) CalculateAll(d *Dom, in *Input) {
	clear(l.nodes)
	l.layers = append(l.layers[:0], nil)
	l.open = append(l.open[:0], 0)

	cs := layout.LooseConstraints(l.viewport.Size())
	l.Calculate(d, in, d.Root(), cs)
	l.resolve(d)
}

// Calculate lays out the node id within cs and returns its clamped
// size. Widgets call it through LayoutContext for their children. A
// node may be calculated more than once per frame; the last call
// decides its size and it is registered for pointer interest once.
func (l *LayoutDom) Calculate(d *Dom, in *Input, id NodeID, cs layout.Constraints) f32.Point {
	n := d.Get(id)
	if n == nil {
		return f32.Point{}
	}
	if len(l.open) == 0 {
		l.layers = append(l.layers[:0], nil)
		l.open = append(l.open, 0)
	}
	w := n.widget
	ln := &LayoutNode{
		Interest: w.Interest(),
		layer:    l.open[len(l.open)-1],
	}
	prev := l.nodes[id]
	l.nodes[id] = ln
	if prev != nil {
		// Laid out again this frame, for example after being measured.
		// The node keeps its first interest registration.
		ln.layer = prev.layer
	} else if ln.Interest.Intersects(pointerInterest) {
		l.layers[ln.layer] = append(l.layers[ln.layer], id)
	}
	layers := len(l.layers)
	size := w.Layout(LayoutContext{Dom: d, Layout: l, Input: in, ID: id}, cs)
	size = cs.Constrain(size)
	ln.Rect = ln.Rect.WithSize(size)
	ln.layered = len(l.layers) > layers || prev != nil && prev.layered
	return size
}

// SetPos sets the position of id relative to its parent.
func (l *LayoutDom) SetPos(id NodeID, pos f32.Point) {
	if ln := l.nodes[id]; ln != nil {
		ln.Rect = f32.RectAt(pos, ln.Rect.Size())
	}
}

// SetClip sets the clip logic of id.
func (l *LayoutDom) SetClip(id NodeID, logic clip.Logic) {
	if ln := l.nodes[id]; ln != nil {
		ln.logic = logic
	}
}

// PushLayer opens an interest layer above every existing layer.
// Pointer interest declared until the matching PopLayer is hit
// tested before interest in lower layers.
func (l *LayoutDom) PushLayer() {
	l.layers = append(l.layers, nil)
	l.open = append(l.open, len(l.layers)-1)
}

// PopLayer closes the layer opened by the last PushLayer.
func (l *LayoutDom) PopLayer() {
	if len(l.open) <= 1 {
		panic(&ContractError{Op: "PopLayer", Msg: "cannot pop the base interest layer"})
	}
	l.open = l.open[:len(l.open)-1]
}

// RangeInterest calls f for every node with pointer interest, from
// the top layer down and from the last declared node to the first
// within a layer, until f returns false.
func (l *LayoutDom) RangeInterest(f func(NodeID, *LayoutNode) bool) {
	for i := len(l.layers) - 1; i >= 0; i-- {
		layer := l.layers[i]
		for j := len(layer) - 1; j >= 0; j-- {
			id := layer[j]
			if !f(id, l.nodes[id]) {
				return
			}
		}
	}
}

type pendingNode struct {
	id         NodeID
	parentRect f32.Rectangle
	parentClip f32.Rectangle
}

// resolve converts the parent relative positions to viewport
// positions and resolves clips, parents before children.
func (l *LayoutDom) resolve(d *Dom) {
	queue := []pendingNode{{
		id:         d.Root(),
		parentRect: l.viewport,
		parentClip: l.viewport,
	}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		ln := l.nodes[p.id]
		if ln == nil {
			// Not laid out by its parent.
			continue
		}
		ln.Rect = ln.Rect.Add(p.parentRect.Min)
		off, c := ln.logic.Resolve(clip.Context{
			ParentClip: p.parentClip,
			ParentRect: p.parentRect,
			LayoutRect: ln.Rect,
			Viewport:   l.viewport,
		})
		ln.Rect = ln.Rect.Add(off)
		ln.Clip = c
		for _, c := range d.Children(p.id) {
			queue = append(queue, pendingNode{id: c, parentRect: ln.Rect, parentClip: ln.Clip})
		}
	}
}

func (n *LayoutNode) String() string {
	return fmt.Sprintf("rect %v clip %v", n.Rect, n.Clip)
}
