// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"treeui.org/f32"
	"treeui.org/layout"
	"treeui.org/ui"
)

// List lays out its children in a row or column. Children declared
// through Flexible share the space left by the other children.
type List struct {
	Axis      layout.Axis
	Spacing   layout.Spacing
	Alignment layout.Alignment
	Gap       float32
}

// ListWidget is the widget declared by List.
type ListWidget struct {
	ui.Base
	props List
}

// Flexible makes its children take a share of the space of the
// enclosing List.
type Flexible struct {
	Weight float32
	Fit    layout.FlexFit
}

// FlexibleWidget is the widget declared by Flexible.
type FlexibleWidget struct {
	ui.Base
	props Flexible
}

// Row returns a horizontal List.
func Row() List {
	return List{Axis: layout.Horizontal}
}

// Column returns a vertical List.
func Column() List {
	return List{Axis: layout.Vertical}
}

func (l List) Show(children func()) {
	ui.Do[ListWidget](l, children)
}

func (w *ListWidget) Update(l List) {
	w.props = l
}

func (w *ListWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	children := ctx.Children()
	flex := make([]layout.FlexChild, len(children))
	for i, c := range children {
		if cw := ctx.Widget(c); cw != nil {
			flex[i].Weight, flex[i].Fit = cw.Flex()
		}
	}
	f := layout.Flex{
		Axis:      w.props.Axis,
		Spacing:   w.props.Spacing,
		Alignment: w.props.Alignment,
		Gap:       w.props.Gap,
	}
	size, offsets := f.Layout(cs, flex, func(i int, cs layout.Constraints) f32.Point {
		return ctx.Calculate(children[i], cs)
	})
	for i, c := range children {
		ctx.SetPos(c, offsets[i])
	}
	return size
}

// Expanded returns a Flexible that fills exactly its share.
func Expanded(weight float32) Flexible {
	return Flexible{Weight: weight, Fit: layout.Tight}
}

func (f Flexible) Show(children func()) {
	ui.Do[FlexibleWidget](f, children)
}

func (w *FlexibleWidget) Update(f Flexible) {
	w.props = f
}

func (w *FlexibleWidget) Flex() (float32, layout.FlexFit) {
	return w.props.Weight, w.props.Fit
}
