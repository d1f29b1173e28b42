// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui implements a retained widget tree under an immediate mode
API.

Every frame the program declares its widget tree again by calling
builder functions between Start and Finish. The Dom reconciles the
declaration against the nodes kept from the previous frame: a widget
declared at the same position under the same parent with the same
concrete type keeps its node and its state, while anything not
declared again is removed together with its subtree.

	s := ui.NewState()
	s.Handle(system.ViewportEvent{Rect: f32.Rect(0, 0, 800, 600)})
	for {
		s.Start()
		// Declare widgets with ui.Do or the builders in package widget.
		s.Finish()
		s.Paint(canvas)
	}

After the tree is declared, the LayoutDom asks every widget to size
itself within the constraints chosen by its parent, places it and
resolves its clip rectangle. Input then hit tests the pointer against
the layout and delivers enter, leave and button events to the
widgets that declared interest in them.

Contract violations such as unbalanced BeginWidget and EndWidget calls
panic with a *ContractError.
*/
package ui
