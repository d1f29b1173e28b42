// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"treeui.org/f32"
)

// Flex lays out child elements along an axis,
// according to alignment and weights.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing controls the distribution of space left after
	// layout.
	Spacing Spacing
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
	// Gap is the space inserted between consecutive children.
	Gap float32
}

// FlexChild is the descriptor for a Flex child. A zero Weight makes
// the child rigid.
type FlexChild struct {
	Weight float32
	Fit    FlexFit
}

// Spacing determine the spacing mode for a Flex.
type Spacing uint8

const (
	// SpaceEnd leaves space at the end.
	SpaceEnd Spacing = iota
	// SpaceStart leaves space at the start.
	SpaceStart
	// SpaceSides shares space between the start and end.
	SpaceSides
	// SpaceAround distributes space evenly between children,
	// with half as much space at the start and end.
	SpaceAround
	// SpaceBetween distributes space evenly between children,
	// leaving no space at the start and end.
	SpaceBetween
	// SpaceEvenly distributes space evenly between children and
	// at the start and end.
	SpaceEvenly
)

// Layout a list of children. The position of the children are
// determined by the specified order, but rigid children are laid out
// before flexible children. layout is called once per child with the
// constraints chosen for it and returns the child's size.
//
// Flexible children share the main-axis space left by the rigid
// children in proportion to their weights. When the main axis is
// unbounded there is no space to share and flexible children are
// sized to their content like rigid ones.
func (f Flex) Layout(cs Constraints, children []FlexChild, layout func(i int, cs Constraints) f32.Point) (f32.Point, []f32.Point) {
	n := len(children)
	sizes := make([]f32.Point, n)
	offsets := make([]f32.Point, n)
	if n == 0 {
		return cs.Constrain(f32.Point{}), offsets
	}
	mainMin, mainMax := f.Axis.Main(cs.Min), f.Axis.Main(cs.Max)
	crossMin, crossMax := f.Axis.Cross(cs.Min), f.Axis.Cross(cs.Max)
	bounded := cs.IsBoundedAxis(f.Axis)
	gaps := f.Gap * float32(n-1)

	size := gaps
	var totalWeight float32
	// Lay out rigid children.
	for i, child := range children {
		if child.Weight > 0 && bounded {
			totalWeight += child.Weight
			continue
		}
		avail := max(mainMax-size, 0)
		sz := layout(i, f.Axis.Constraints(0, avail, crossMin, crossMax))
		sizes[i] = sz
		size += f.Axis.Main(sz)
	}
	rigidSize := size
	// Lay out flexible children.
	if totalWeight > 0 {
		remaining := max(mainMax-rigidSize, 0)
		for i, child := range children {
			if child.Weight <= 0 {
				continue
			}
			share := remaining * child.Weight / totalWeight
			if left := max(mainMax-size, 0); share > left {
				share = left
			}
			var lo float32
			if child.Fit == Tight {
				lo = share
			}
			sz := layout(i, f.Axis.Constraints(lo, share, crossMin, crossMax))
			sizes[i] = sz
			size += f.Axis.Main(sz)
		}
	}
	var maxCross float32
	for _, sz := range sizes {
		if c := f.Axis.Cross(sz); c > maxCross {
			maxCross = c
		}
	}
	maxCross = max(maxCross, crossMin)
	var space float32
	if mainMin > size {
		space = mainMin - size
	}
	var mainSize float32
	switch f.Spacing {
	case SpaceSides:
		mainSize += space / 2
	case SpaceStart:
		mainSize += space
	case SpaceEvenly:
		mainSize += space / float32(1+n)
	case SpaceAround:
		mainSize += space / float32(n*2)
	}
	for i, sz := range sizes {
		var cross float32
		switch f.Alignment {
		case End:
			cross = maxCross - f.Axis.Cross(sz)
		case Middle:
			cross = (maxCross - f.Axis.Cross(sz)) / 2
		}
		offsets[i] = f.Axis.Point(mainSize, cross)
		mainSize += f.Axis.Main(sz)
		if i < n-1 {
			mainSize += f.Gap
			switch f.Spacing {
			case SpaceEvenly:
				mainSize += space / float32(1+n)
			case SpaceAround:
				mainSize += space / float32(n)
			case SpaceBetween:
				mainSize += space / float32(n-1)
			}
		}
	}
	switch f.Spacing {
	case SpaceSides:
		mainSize += space / 2
	case SpaceEnd:
		mainSize += space
	case SpaceEvenly:
		mainSize += space / float32(1+n)
	case SpaceAround:
		mainSize += space / float32(n*2)
	case SpaceBetween:
		if n == 1 {
			mainSize += space
		}
	}
	return cs.Constrain(f.Axis.Point(mainSize, maxCross)), offsets
}

func (s Spacing) String() string {
	switch s {
	case SpaceEnd:
		return "SpaceEnd"
	case SpaceStart:
		return "SpaceStart"
	case SpaceSides:
		return "SpaceSides"
	case SpaceAround:
		return "SpaceAround"
	case SpaceBetween:
		return "SpaceBetween"
	case SpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}
