// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"treeui.org/f32"
	"treeui.org/layout"
	"treeui.org/ui"
)

// Pad adds space around its children.
type Pad struct {
	Top, Bottom, Left, Right float32
}

// PadWidget is the widget declared by Pad.
type PadWidget struct {
	ui.Base
	props Pad
}

// UniformPad returns a Pad with the same space on every side.
func UniformPad(v float32) Pad {
	return Pad{Top: v, Bottom: v, Left: v, Right: v}
}

func (p Pad) Show(children func()) {
	ui.Do[PadWidget](p, children)
}

func (w *PadWidget) Update(p Pad) {
	w.props = p
}

func (w *PadWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	p := w.props
	inset := f32.Pt(p.Left+p.Right, p.Top+p.Bottom)
	ccs := cs.Deflate(inset)
	var size f32.Point
	for _, c := range ctx.Children() {
		size = size.Max(ctx.Calculate(c, ccs))
		ctx.SetPos(c, f32.Pt(p.Left, p.Top))
	}
	return size.Add(inset)
}
