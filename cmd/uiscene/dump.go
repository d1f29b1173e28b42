// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"treeui.org/ui"
	"treeui.org/widget"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	rectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	clipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	enumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1)
	frameStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// dumpTree renders the node tree of s with the layout of every node.
func dumpTree(s *ui.State, names map[ui.NodeID]string) string {
	d, l := s.Dom(), s.Layout()
	label := func(id ui.NodeID) string {
		name := nameStyle.Render(names[id])
		n := l.Get(id)
		if n == nil {
			return name + " " + rectStyle.Render("not laid out")
		}
		str := name + " " + rectStyle.Render(n.Rect.String())
		if !n.Clip.Contains(n.Rect) {
			str += " " + clipStyle.Render("clip "+n.Clip.String())
		}
		return str
	}
	var build func(id ui.NodeID) *tree.Tree
	build = func(id ui.NodeID) *tree.Tree {
		t := tree.Root(label(id))
		for _, c := range d.Children(id) {
			if len(d.Children(c)) == 0 {
				t.Child(label(c))
			} else {
				t.Child(build(c))
			}
		}
		return t
	}
	return build(d.Root()).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle).
		String()
}

func describe(r widget.PointerResponse) string {
	var parts []string
	if r.Hovering {
		parts = append(parts, "hovering")
	}
	if r.Down {
		parts = append(parts, "down")
	}
	if r.Clicked {
		parts = append(parts, "clicked")
	}
	if r.ClickedOutside {
		parts = append(parts, "clicked-outside")
	}
	if r.Scroll.X != 0 || r.Scroll.Y != 0 {
		parts = append(parts, fmt.Sprintf("scroll %v", r.Scroll))
	}
	if len(parts) == 0 {
		return "idle"
	}
	return strings.Join(parts, " ")
}
