// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"treeui.org/f32"
)

// Constraints represent a set of acceptable sizes for a widget:
// every size between Min and Max, inclusive, componentwise.
//
// Constraints are loose when Min is zero and tight when Min equals Max.
// An axis is bounded when its Max is finite. An unbounded axis means
// "size to content", never "fill the available space".
type Constraints struct {
	Min, Max f32.Point
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the mutual alignment of a list of widgets.
type Alignment uint8

// Direction is the alignment of widgets relative to a containing
// space.
type Direction uint8

// FlexFit controls how a flexible child uses its share of space.
type FlexFit uint8

const (
	Start Alignment = iota
	End
	Middle
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// Loose lets the child be smaller than its share.
	Loose FlexFit = iota
	// Tight forces the child to fill its share exactly.
	Tight
)

// LooseConstraints returns constraints accepting any size up to size.
func LooseConstraints(size f32.Point) Constraints {
	return Constraints{Max: size}
}

// TightConstraints returns the constraints that can only be
// satisfied by the given size.
func TightConstraints(size f32.Point) Constraints {
	return Constraints{Min: size, Max: size}
}

// Unbounded returns constraints accepting any size.
func Unbounded() Constraints {
	return Constraints{Max: f32.Pt(f32.Inf, f32.Inf)}
}

// Constrain a size to the Min and Max ranges. The size is clamped to
// Max first and Min second, so Min wins for inverted constraints.
func (c Constraints) Constrain(size f32.Point) f32.Point {
	return size.Min(c.Max).Max(c.Min)
}

// ConstrainWidth clamps a width to the horizontal range.
func (c Constraints) ConstrainWidth(w float32) float32 {
	return max(min(w, c.Max.X), c.Min.X)
}

// ConstrainHeight clamps a height to the vertical range.
func (c Constraints) ConstrainHeight(h float32) float32 {
	return max(min(h, c.Max.Y), c.Min.Y)
}

// IsLoose reports whether c has no minimum size.
func (c Constraints) IsLoose() bool {
	return c.Min == f32.Point{}
}

// IsTight reports whether c admits exactly one size.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// IsBounded reports whether both axes have a finite maximum.
func (c Constraints) IsBounded() bool {
	return c.IsBoundedAxis(Horizontal) && c.IsBoundedAxis(Vertical)
}

// IsBoundedAxis reports whether axis a has a finite maximum.
func (c Constraints) IsBoundedAxis(a Axis) bool {
	return !math.IsInf(float64(a.Main(c.Max)), 1)
}

// Loosen returns c with a zero minimum.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

// Deflate shrinks c by the given amount on each axis, keeping the
// minimum at or below the maximum and neither negative.
func (c Constraints) Deflate(by f32.Point) Constraints {
	mx := c.Max.Sub(by).Max(f32.Point{})
	mn := c.Min.Sub(by).Max(f32.Point{}).Min(mx)
	return Constraints{Min: mn, Max: mx}
}

// Intersect returns constraints satisfying both c and o where
// possible; o is clamped into c.
func (c Constraints) Intersect(o Constraints) Constraints {
	return Constraints{Min: c.Constrain(o.Min), Max: c.Constrain(o.Max)}
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(%v..%v)", c.Min, c.Max)
}

// Main returns the component of p along a.
func (a Axis) Main(p f32.Point) float32 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Cross returns the component of p across a.
func (a Axis) Cross(p f32.Point) float32 {
	if a == Horizontal {
		return p.Y
	}
	return p.X
}

// Point returns the point with the given main and cross components.
func (a Axis) Point(main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Pt(main, cross)
	}
	return f32.Pt(cross, main)
}

// Constraints returns the constraints with the given main and cross
// ranges.
func (a Axis) Constraints(mainMin, mainMax, crossMin, crossMax float32) Constraints {
	return Constraints{
		Min: a.Point(mainMin, crossMin),
		Max: a.Point(mainMax, crossMax),
	}
}

// Position returns the offset that places a box of size inner within
// a box of size outer according to d.
func (d Direction) Position(outer, inner f32.Point) f32.Point {
	var p f32.Point
	switch d {
	case N, S, Center:
		p.X = (outer.X - inner.X) / 2
	case NE, SE, E:
		p.X = outer.X - inner.X
	}
	switch d {
	case W, Center, E:
		p.Y = (outer.Y - inner.Y) / 2
	case SW, S, SE:
		p.Y = outer.Y - inner.Y
	}
	return p
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (f FlexFit) String() string {
	switch f {
	case Loose:
		return "Loose"
	case Tight:
		return "Tight"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
