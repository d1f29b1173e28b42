// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"treeui.org/f32"
	"treeui.org/io/event"
	"treeui.org/io/pointer"
	"treeui.org/io/system"
	"treeui.org/layout"
	"treeui.org/ui"
	"treeui.org/widget"
)

// Scene is a widget tree and a script of input frames.
type Scene struct {
	Viewport Size    `yaml:"viewport"`
	Scale    float32 `yaml:"scale,omitempty"`
	Root     []Node  `yaml:"root"`
	Frames   []Frame `yaml:"frames,omitempty"`
}

type Size struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Node declares a widget. Kind selects the widget and the other
// fields are its props.
type Node struct {
	Kind     string    `yaml:"kind"`
	Name     string    `yaml:"name,omitempty"`
	Text     string    `yaml:"text,omitempty"`
	Color    string    `yaml:"color,omitempty"`
	Size     []float32 `yaml:"size,omitempty"`
	Offset   []float32 `yaml:"offset,omitempty"`
	Pad      float32   `yaml:"pad,omitempty"`
	Gap      float32   `yaml:"gap,omitempty"`
	Weight   float32   `yaml:"weight,omitempty"`
	Tight    bool      `yaml:"tight,omitempty"`
	Align    string    `yaml:"align,omitempty"`
	Children []Node    `yaml:"children,omitempty"`
}

// Frame is the input delivered before a frame is built.
type Frame struct {
	Move    []float32 `yaml:"move,omitempty"`
	Press   string    `yaml:"press,omitempty"`
	Release string    `yaml:"release,omitempty"`
	Scroll  []float32 `yaml:"scroll,omitempty"`
	Exit    bool      `yaml:"exit,omitempty"`
}

var directions = map[string]layout.Direction{
	"nw": layout.NW, "n": layout.N, "ne": layout.NE,
	"w": layout.W, "center": layout.Center, "e": layout.E,
	"sw": layout.SW, "s": layout.S, "se": layout.SE,
}

var buttons = map[string]pointer.Button{
	"primary":   pointer.ButtonPrimary,
	"secondary": pointer.ButtonSecondary,
	"tertiary":  pointer.ButtonTertiary,
}

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes and validates a scene.
func ParseScene(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if sc.Scale == 0 {
		sc.Scale = 1
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scene) validate() error {
	if sc.Scale < 0 {
		return fmt.Errorf("invalid scale %g", sc.Scale)
	}
	var check func(path string, n *Node) error
	check = func(path string, n *Node) error {
		path = path + "/" + n.Kind
		switch n.Kind {
		case "pad", "column", "row", "flexible", "stack", "align", "offset", "layer", "reflow", "pointer", "colored":
		case "label":
			if len(n.Children) > 0 {
				return fmt.Errorf("%s: labels have no children", path)
			}
		case "":
			return fmt.Errorf("%s: missing kind", path)
		default:
			return fmt.Errorf("%s: unknown kind %q", path, n.Kind)
		}
		if _, err := vec(n.Size); err != nil {
			return fmt.Errorf("%s: size: %w", path, err)
		}
		if _, err := vec(n.Offset); err != nil {
			return fmt.Errorf("%s: offset: %w", path, err)
		}
		if _, err := parseColor(n.Color); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if _, ok := directions[n.Align]; n.Align != "" && !ok {
			return fmt.Errorf("%s: unknown alignment %q", path, n.Align)
		}
		for i := range n.Children {
			if err := check(path, &n.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for i := range sc.Root {
		if err := check("", &sc.Root[i]); err != nil {
			return err
		}
	}
	for i, f := range sc.Frames {
		if _, err := f.events(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// Setup returns the host events that configure a State for the
// scene.
func (sc *Scene) Setup() []event.Event {
	return []event.Event{
		system.ScaleEvent{Factor: sc.Scale},
		system.ViewportEvent{Rect: f32.Rect(0, 0, sc.Viewport.Width, sc.Viewport.Height)},
	}
}

// Declare declares the scene's widgets on the tree being built.
// Responses of named pointers are stored in out.
func (sc *Scene) Declare(out map[string]widget.PointerResponse) {
	for _, n := range sc.Root {
		n.declare(out)
	}
}

func (n Node) declare(out map[string]widget.PointerResponse) {
	children := func() {
		for _, c := range n.Children {
			c.declare(out)
		}
	}
	size, _ := vec(n.Size)
	offset, _ := vec(n.Offset)
	col, _ := parseColor(n.Color)
	switch n.Kind {
	case "pad":
		widget.UniformPad(n.Pad).Show(children)
	case "column", "row":
		l := widget.Column()
		if n.Kind == "row" {
			l = widget.Row()
		}
		l.Gap = n.Gap
		l.Show(children)
	case "flexible":
		f := widget.Flexible{Weight: n.Weight}
		if n.Tight {
			f.Fit = layout.Tight
		}
		f.Show(children)
	case "stack":
		widget.Stack{}.Show(children)
	case "align":
		widget.Align{Direction: directions[n.Align]}.Show(children)
	case "offset":
		widget.Offset{Offset: offset}.Show(children)
	case "layer":
		widget.Layer{}.Show(children)
	case "reflow":
		widget.Reflow{Offset: offset}.Show(children)
	case "pointer":
		r := widget.Pointer{}.Show(children)
		if n.Name != "" {
			out[n.Name] = r
		}
	case "colored":
		widget.Colored{Color: col, MinSize: size}.Show(children)
	case "label":
		widget.Label{Text: n.Text, Color: col}.Show()
	}
}

// Names maps the nodes declared by the scene to their names, or to
// their kind for unnamed nodes. Declarations map to tree nodes in
// order.
func (sc *Scene) Names(d *ui.Dom) map[ui.NodeID]string {
	names := make(map[ui.NodeID]string)
	var walk func(ids []ui.NodeID, nodes []Node)
	walk = func(ids []ui.NodeID, nodes []Node) {
		for i, id := range ids {
			if i >= len(nodes) {
				return
			}
			n := nodes[i]
			names[id] = n.Kind
			if n.Name != "" {
				names[id] = n.Name
			}
			walk(d.Children(id), n.Children)
		}
	}
	names[d.Root()] = "root"
	walk(d.Children(d.Root()), sc.Root)
	return names
}

func (f Frame) events() ([]event.Event, error) {
	var evs []event.Event
	if f.Move != nil {
		p, err := vec(f.Move)
		if err != nil {
			return nil, fmt.Errorf("move: %w", err)
		}
		evs = append(evs, pointer.Move{Position: p})
	}
	if f.Press != "" {
		b, ok := buttons[f.Press]
		if !ok {
			return nil, fmt.Errorf("unknown button %q", f.Press)
		}
		evs = append(evs, pointer.Press{Button: b, Down: true})
	}
	if f.Release != "" {
		b, ok := buttons[f.Release]
		if !ok {
			return nil, fmt.Errorf("unknown button %q", f.Release)
		}
		evs = append(evs, pointer.Press{Button: b, Down: false})
	}
	if f.Scroll != nil {
		d, err := vec(f.Scroll)
		if err != nil {
			return nil, fmt.Errorf("scroll: %w", err)
		}
		evs = append(evs, pointer.Wheel{Delta: d})
	}
	if f.Exit {
		evs = append(evs, pointer.Exit{})
	}
	return evs, nil
}

func vec(v []float32) (f32.Point, error) {
	switch len(v) {
	case 0:
		return f32.Point{}, nil
	case 2:
		return f32.Pt(v[0], v[1]), nil
	default:
		return f32.Point{}, fmt.Errorf("want 2 components, got %d", len(v))
	}
}

var errColor = errors.New("colors must have the form #rrggbb or #rrggbbaa")

func parseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{A: 0xff}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, errColor
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errColor
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
