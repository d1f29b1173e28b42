// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"reflect"

	"golang.org/x/exp/slices"

	"treeui.org/internal/arena"
)

// NodeID identifies a node of a Dom. IDs stay the same across frames
// for as long as the node is declared at the same position with the
// same widget type. The zero NodeID never refers to a node.
type NodeID = arena.Index

// Node is an entry in the widget tree.
type Node struct {
	widget   Widget
	parent   NodeID
	children []NodeID
	// cursor counts the children matched during the current frame.
	cursor int
	// color is the frame color the node was last visited with.
	color bool
}

// Dom holds the widget tree and reconciles each frame's declarations
// against it.
type Dom struct {
	nodes    arena.Arena[Node]
	root     NodeID
	stack    []NodeID
	color    bool
	building bool
	globals  map[reflect.Type]any
}

// Widget returns the widget held by n.
func (n *Node) Widget() Widget {
	return n.widget
}

// Parent returns the parent of n. The root node has the zero NodeID
// as its parent.
func (n *Node) Parent() NodeID {
	return n.parent
}

// Children returns the children of n in declaration order. The slice
// must not be modified.
func (n *Node) Children() []NodeID {
	return n.children
}

// NewDom returns a Dom holding only the root node.
func NewDom() *Dom {
	d := &Dom{
		globals: make(map[reflect.Type]any),
	}
	d.root = d.nodes.Insert(Node{widget: new(rootWidget)})
	return d
}

// Start opens a frame. Widgets are declared with BeginWidget and
// EndWidget, or Do, until Finish closes the frame. Start binds d as
// the tree returned by Current on the calling goroutine.
func (d *Dom) Start() {
	if d.building {
		contractf("Start", "a frame is already being built")
	}
	d.building = true
	d.color = !d.color
	root := d.nodes.Get(d.root)
	root.color = d.color
	root.cursor = 0
	bind(d)
}

// Finish closes the frame opened by Start and removes every node that
// was not declared during the frame.
func (d *Dom) Finish() {
	if !d.building {
		contractf("Finish", "no frame is being built")
	}
	if n := len(d.stack); n > 0 {
		contractf("Finish", "%d widgets are still open, innermost %v", n, d.stack[n-1])
	}
	d.prune(d.root)
	d.building = false
	unbind(d)
}

// Building reports whether a frame is open.
func (d *Dom) Building() bool {
	return d.building
}

// Root returns the ID of the root node.
func (d *Dom) Root() NodeID {
	return d.root
}

// Top returns the innermost open widget, or the root node if no
// widget is open.
func (d *Dom) Top() NodeID {
	if n := len(d.stack); n > 0 {
		return d.stack[n-1]
	}
	return d.root
}

// Get returns the node with the given ID, or nil if it does not
// exist. The node is valid until the next declaration.
func (d *Dom) Get(id NodeID) *Node {
	return d.nodes.Get(id)
}

// Parent returns the parent of id. It returns false for the root node
// and for IDs that no longer exist.
func (d *Dom) Parent(id NodeID) (NodeID, bool) {
	n := d.nodes.Get(id)
	if n == nil || !n.parent.Valid() {
		return NodeID{}, false
	}
	return n.parent, true
}

// Children returns the children of id, or nil if id does not exist.
func (d *Dom) Children(id NodeID) []NodeID {
	n := d.nodes.Get(id)
	if n == nil {
		return nil
	}
	return n.children
}

// Len returns the number of nodes including the root.
func (d *Dom) Len() int {
	return d.nodes.Len()
}

// BeginWidget declares a widget of type T under the innermost open
// widget and opens it. The node at the same position is reused when
// it holds a *T, and its widget is updated with props. Otherwise the
// node gets a new *T, discarding the previous widget's state.
func BeginWidget[T any, P any, W interface {
	*T
	PropsWidget[P]
}](d *Dom, props P) NodeID {
	if !d.building {
		contractf("BeginWidget", "no frame is being built")
	}
	parentID := d.Top()
	parent := d.nodes.Get(parentID)
	if parent.color != d.color {
		// First child declared this frame; match children from the
		// start.
		parent.cursor = 0
		parent.color = d.color
	}
	var id NodeID
	if parent.cursor < len(parent.children) {
		id = parent.children[parent.cursor]
	} else {
		id = d.nodes.Insert(Node{parent: parentID, color: !d.color})
		parent = d.nodes.Get(parentID)
		parent.children = append(parent.children, id)
	}
	parent.cursor++
	d.stack = append(d.stack, id)

	n := d.nodes.Get(id)
	if w, ok := n.widget.(W); ok {
		w.Update(props)
	} else {
		w := W(new(T))
		w.Update(props)
		n.widget = w
	}
	return id
}

// EndWidget closes the widget opened by the matching BeginWidget,
// removes its children that were not declared this frame and returns
// its widget.
func EndWidget[T any, W interface {
	*T
	Widget
}](d *Dom, id NodeID) W {
	if !d.building {
		contractf("EndWidget", "no frame is being built")
	}
	n := len(d.stack)
	if n == 0 {
		contractf("EndWidget", "%v ended but no widget is open", id)
	}
	if top := d.stack[n-1]; top != id {
		contractf("EndWidget", "%v ended but %v is open", id, top)
	}
	d.stack = d.stack[:n-1]
	d.prune(id)
	w, ok := d.nodes.Get(id).widget.(W)
	if !ok {
		contractf("EndWidget", "%v holds %T, not %T", id, d.nodes.Get(id).widget, w)
	}
	return w
}

// Do declares a widget of type T on the tree being built by the
// calling goroutine, runs children to declare its children and
// returns the widget.
func Do[T any, P any, W interface {
	*T
	PropsWidget[P]
}](props P, children func()) W {
	d := Current()
	id := BeginWidget[T, P, W](d, props)
	if children != nil {
		children()
	}
	return EndWidget[T, W](d, id)
}

// prune removes the children of id past its cursor. A node that
// declared no children this frame still has a stale color and
// loses all of them.
func (d *Dom) prune(id NodeID) {
	n := d.nodes.Get(id)
	if n.color != d.color {
		n.color = d.color
		n.cursor = 0
	}
	if n.cursor >= len(n.children) {
		return
	}
	dead := slices.Clone(n.children[n.cursor:])
	n.children = n.children[:n.cursor]
	for _, c := range dead {
		d.remove(c)
	}
}

func (d *Dom) remove(id NodeID) {
	n, ok := d.nodes.Remove(id)
	if !ok {
		return
	}
	for _, c := range n.children {
		d.remove(c)
	}
}
