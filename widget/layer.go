// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"treeui.org/clip"
	"treeui.org/f32"
	"treeui.org/layout"
	"treeui.org/ui"
)

// Layer puts the pointer interest of its children above the
// interest declared outside of it, so that its children receive
// pointer events first.
type Layer struct{}

// LayerWidget is the widget declared by Layer.
type LayerWidget struct {
	ui.Base
}

// Clip sets the clip logic of its area. Children inherit the clip
// unless they declare their own.
type Clip struct {
	Logic clip.Logic
}

// ClipWidget is the widget declared by Clip.
type ClipWidget struct {
	ui.Base
	props Clip
}

// Reflow lays out its children outside of the normal flow, in their
// own interest layer, at Offset from the position of the Reflow.
// Children are moved back inside the viewport when they would extend
// past it, and are clipped to the viewport only. Reflow takes no
// space in its parent. It is meant for popups and tooltips.
type Reflow struct {
	Offset f32.Point
}

// ReflowWidget is the widget declared by Reflow.
type ReflowWidget struct {
	ui.Base
	props Reflow
}

func (l Layer) Show(children func()) {
	ui.Do[LayerWidget](l, children)
}

func (w *LayerWidget) Update(Layer) {}

func (w *LayerWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	ctx.Layout.PushLayer()
	defer ctx.Layout.PopLayer()
	return w.Base.Layout(ctx, cs)
}

func (c Clip) Show(children func()) {
	ui.Do[ClipWidget](c, children)
}

func (w *ClipWidget) Update(c Clip) {
	w.props = c
}

func (w *ClipWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	ctx.SetClip(w.props.Logic)
	return w.Base.Layout(ctx, cs)
}

func (r Reflow) Show(children func()) {
	ui.Do[ReflowWidget](r, children)
}

func (w *ReflowWidget) Update(r Reflow) {
	w.props = r
}

func (w *ReflowWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	ctx.Layout.PushLayer()
	defer ctx.Layout.PopLayer()
	ccs := layout.LooseConstraints(ctx.Layout.Viewport().Size())
	for _, c := range ctx.Children() {
		ctx.Calculate(c, ccs)
		ctx.SetPos(c, w.props.Offset)
		ctx.Layout.SetClip(c, clip.Contain(clip.LayoutRect, clip.Viewport))
	}
	return f32.Point{}
}
