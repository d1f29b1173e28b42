// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"treeui.org/f32"
	"treeui.org/layout"
	"treeui.org/ui"
)

// Constrained narrows the constraints passed to its children.
type Constrained struct {
	Constraints layout.Constraints
}

// ConstrainedWidget is the widget declared by Constrained.
type ConstrainedWidget struct {
	ui.Base
	props Constrained
}

// Colored fills its area with a color. Its size is the largest of
// MinSize and the sizes of its children.
type Colored struct {
	Color   color.NRGBA
	MinSize f32.Point
}

// ColoredWidget is the widget declared by Colored.
type ColoredWidget struct {
	ui.Base
	props Colored
}

func (c Constrained) Show(children func()) {
	ui.Do[ConstrainedWidget](c, children)
}

func (w *ConstrainedWidget) Update(c Constrained) {
	w.props = c
}

func (w *ConstrainedWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	ccs := cs.Intersect(w.props.Constraints)
	return ccs.Constrain(w.Base.Layout(ctx, ccs))
}

func (c Colored) Show(children func()) {
	ui.Do[ColoredWidget](c, children)
}

func (w *ColoredWidget) Update(c Colored) {
	w.props = c
}

func (w *ColoredWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	return w.Base.Layout(ctx, cs).Max(w.props.MinSize)
}

func (w *ColoredWidget) Paint(ctx ui.PaintContext) {
	n := ctx.Node()
	ctx.Canvas.FillRect(n.Rect, n.Clip, w.props.Color)
	w.Base.Paint(ctx)
}
