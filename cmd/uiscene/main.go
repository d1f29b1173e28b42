// SPDX-License-Identifier: Unlicense OR MIT

// Command uiscene lays out widget trees described in YAML scene
// files and replays scripted pointer input against them.
//
//	uiscene layout scene.yaml
//	uiscene replay --scale 2 scene.yaml
package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"treeui.org/io/event"
	"treeui.org/io/pointer"
	"treeui.org/ui"
	"treeui.org/widget"
)

type overrides struct {
	scale         float32
	width, height float32
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var o overrides
	root := &cobra.Command{
		Use:           "uiscene",
		Short:         "Lay out and replay widget scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Float32Var(&o.scale, "scale", 0, "override the scene's scale factor")
	root.PersistentFlags().Float32Var(&o.width, "width", 0, "override the viewport width")
	root.PersistentFlags().Float32Var(&o.height, "height", 0, "override the viewport height")

	layoutCmd := &cobra.Command{
		Use:   "layout <scene.yaml>",
		Short: "Print the laid out node tree of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := load(args[0], o)
			if err != nil {
				return err
			}
			return runLayout(cmd.OutOrStdout(), sc)
		},
	}
	replayCmd := &cobra.Command{
		Use:   "replay <scene.yaml>",
		Short: "Replay the scripted input frames of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := load(args[0], o)
			if err != nil {
				return err
			}
			return runReplay(cmd.OutOrStdout(), sc)
		},
	}
	root.AddCommand(layoutCmd, replayCmd)
	return root
}

func load(path string, o overrides) (*Scene, error) {
	sc, err := LoadScene(path)
	if err != nil {
		return nil, err
	}
	if o.scale < 0 {
		return nil, fmt.Errorf("invalid scale %g", o.scale)
	}
	if o.scale > 0 {
		sc.Scale = o.scale
	}
	if o.width > 0 {
		sc.Viewport.Width = o.width
	}
	if o.height > 0 {
		sc.Viewport.Height = o.height
	}
	return sc, nil
}

func newSceneState(sc *Scene) *ui.State {
	s := ui.NewState()
	for _, e := range sc.Setup() {
		s.Handle(e)
	}
	return s
}

func build(s *ui.State, sc *Scene) map[string]widget.PointerResponse {
	out := make(map[string]widget.PointerResponse)
	s.Start()
	sc.Declare(out)
	s.Finish()
	return out
}

func runLayout(w io.Writer, sc *Scene) error {
	s := newSceneState(sc)
	build(s, sc)
	_, err := fmt.Fprintln(w, dumpTree(s, sc.Names(s.Dom())))
	return err
}

// runReplay builds one frame per scripted input frame, plus a first
// frame without input and a last frame that reports the responses to
// the final input.
func runReplay(w io.Writer, sc *Scene) error {
	s := newSceneState(sc)
	for i := 0; i <= len(sc.Frames)+1; i++ {
		var input []string
		if i > 0 && i <= len(sc.Frames) {
			evs, err := sc.Frames[i-1].events()
			if err != nil {
				return fmt.Errorf("frame %d: %w", i-1, err)
			}
			for _, e := range evs {
				desc := describeEvent(e)
				if s.Handle(e) {
					desc += " (sunk)"
				}
				input = append(input, desc)
			}
		}
		out := build(s, sc)
		names := sc.Names(s.Dom())

		var b strings.Builder
		fmt.Fprintln(&b, frameStyle.Render(fmt.Sprintf("frame %d", i)))
		if len(input) > 0 {
			fmt.Fprintf(&b, "  input: %s\n", strings.Join(input, ", "))
		}
		var hits []string
		for _, id := range s.Input().Hits() {
			hits = append(hits, names[id])
		}
		fmt.Fprintf(&b, "  hits: [%s]\n", strings.Join(hits, " "))
		keys := maps.Keys(out)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %s\n", k, describe(out[k]))
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func describeEvent(e event.Event) string {
	switch e := e.(type) {
	case pointer.Move:
		return "move " + e.Position.String()
	case pointer.Press:
		if e.Down {
			return "press " + e.Button.String()
		}
		return "release " + e.Button.String()
	case pointer.Wheel:
		return "scroll " + e.Delta.String()
	case pointer.Exit:
		return "exit"
	default:
		return fmt.Sprintf("%T", e)
	}
}
