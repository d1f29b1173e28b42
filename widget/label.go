// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"treeui.org/f32"
	"treeui.org/layout"
	"treeui.org/ui"
)

// Label is a widget for laying out and drawing text. Lines are
// separated by '\n' and never wrapped.
type Label struct {
	Text  string
	Color color.NRGBA
}

// LabelWidget is the widget declared by Label.
type LabelWidget struct {
	ui.Base
	props Label
}

// Fonts is the text state shared by the labels of a tree. Set Face
// before the first layout to measure text with another face.
type Fonts struct {
	Face font.Face
}

// TreeFonts returns the Fonts of d.
func TreeFonts(d *ui.Dom) *Fonts {
	return ui.Global(d, func() Fonts {
		return Fonts{Face: basicfont.Face7x13}
	})
}

func (l Label) Show() {
	ui.Do[LabelWidget](l, nil)
}

func (w *LabelWidget) Update(l Label) {
	w.props = l
}

func (w *LabelWidget) Layout(ctx ui.LayoutContext, cs layout.Constraints) f32.Point {
	return Measure(TreeFonts(ctx.Dom).Face, w.props.Text)
}

func (w *LabelWidget) Paint(ctx ui.PaintContext) {
	n := ctx.Node()
	ctx.Canvas.Text(n.Rect.Min, n.Clip, w.props.Text, w.props.Color)
}

// Measure returns the size of txt drawn with face.
func Measure(face font.Face, txt string) f32.Point {
	lines := strings.Split(txt, "\n")
	var width float32
	for _, l := range lines {
		adv := font.MeasureString(face, l)
		width = max(width, float32(adv.Ceil()))
	}
	height := face.Metrics().Height.Ceil() * len(lines)
	return f32.Pt(width, float32(height))
}
