// SPDX-License-Identifier: Unlicense OR MIT

package ui

import "treeui.org/io/event"

// State ties a Dom, its LayoutDom and its Input together and runs
// the stages of a frame in order.
type State struct {
	dom    *Dom
	layout *LayoutDom
	input  *Input
}

// NewState returns a State with an empty tree and a zero viewport.
func NewState() *State {
	return &State{
		dom:    NewDom(),
		layout: NewLayoutDom(),
		input:  NewInput(),
	}
}

// Start opens a frame on the calling goroutine.
func (s *State) Start() {
	s.dom.Start()
}

// Finish closes the frame, lays out the tree and delivers the
// pointer events of the frame.
func (s *State) Finish() {
	s.dom.Finish()
	s.layout.CalculateAll(s.dom, s.input)
	s.input.Finish(s.dom, s.layout)
}

// Handle processes a host event and reports whether the UI consumed
// it.
func (s *State) Handle(e event.Event) bool {
	return s.input.Handle(s.dom, s.layout, e)
}

// Paint paints the tree laid out by the last Finish onto c.
func (s *State) Paint(c Canvas) {
	ctx := PaintContext{Dom: s.dom, Layout: s.layout, Canvas: c}
	ctx.Paint(s.dom.Root())
}

// Dom returns the widget tree.
func (s *State) Dom() *Dom {
	return s.dom
}

// Layout returns the layout of the last Finish.
func (s *State) Layout() *LayoutDom {
	return s.layout
}

// Input returns the input state.
func (s *State) Input() *Input {
	return s.input
}
