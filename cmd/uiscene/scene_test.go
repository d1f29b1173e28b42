// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown kind", "root: [{kind: button}]", `unknown kind "button"`},
		{"missing kind", "root: [{text: hi}]", "missing kind"},
		{"bad size", "root: [{kind: colored, size: [1, 2, 3]}]", "want 2 components"},
		{"bad color", "root: [{kind: colored, color: red}]", "#rrggbb"},
		{"label children", "root: [{kind: label, children: [{kind: stack}]}]", "labels have no children"},
		{"bad alignment", "root: [{kind: align, align: up}]", "unknown alignment"},
		{"bad button", "frames: [{press: middle}]", `frame 0: unknown button "middle"`},
		{"bad scale", "scale: -1", "invalid scale"},
		{"bad yaml", "root: {", "failed to parse scene"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"", color.NRGBA{A: 0xff}},
		{"#ff8000", color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
		{"#01020304", color.NRGBA{R: 1, G: 2, B: 3, A: 4}},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseColor(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestSceneDefaults(t *testing.T) {
	sc, err := LoadScene("testdata/button.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if sc.Scale != 1 {
		t.Errorf("default scale %g", sc.Scale)
	}
	if sc.Viewport != (Size{Width: 200, Height: 100}) {
		t.Errorf("viewport %+v", sc.Viewport)
	}
	if len(sc.Frames) != 4 {
		t.Errorf("%d frames", len(sc.Frames))
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestLayoutCommand(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{
			args: []string{"layout", "testdata/button.yaml"},
			want: []string{"root (0,0)-(200,100)", "column (0,0)-(50,37)", "ok (0,0)-(50,20)", "colored (0,0)-(50,20)", "label (0,24)-(35,37)"},
		},
		{
			args: []string{"layout", "--width", "40", "testdata/button.yaml"},
			want: []string{"root (0,0)-(40,100)", "ok (0,0)-(40,20)"},
		},
		{
			args: []string{"layout", "--scale", "2", "testdata/button.yaml"},
			want: []string{"root (0,0)-(100,50)"},
		},
	}
	for _, tt := range tests {
		out := run(t, tt.args...)
		for _, w := range tt.want {
			if !strings.Contains(out, w) {
				t.Errorf("%v: output does not contain %q:\n%s", tt.args, w, out)
			}
		}
	}
}

func TestReplayCommand(t *testing.T) {
	out := run(t, "replay", "testdata/button.yaml")
	frames := strings.Split(out, "frame ")[1:]
	if len(frames) != 6 {
		t.Fatalf("got %d frames, want 6:\n%s", len(frames), out)
	}
	want := [][]string{
		{"hits: []", "ok: idle"},
		{"input: move (10,10)", "hits: [ok]", "ok: idle"},
		{"input: press ButtonPrimary (sunk)", "ok: hovering"},
		{"input: release ButtonPrimary (sunk)", "ok: hovering down"},
		{"input: move (150,90)", "hits: []", "ok: hovering clicked"},
		{"ok: idle"},
	}
	for i, ws := range want {
		for _, w := range ws {
			if !strings.Contains(frames[i], w) {
				t.Errorf("frame %d does not contain %q:\n%s", i, w, frames[i])
			}
		}
	}
}

func TestMissingScene(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"layout", "testdata/missing.yaml"})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "failed to read scene") {
		t.Errorf("got %v, want a read error", err)
	}
}

var errFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errFull
}

func TestReplayWriteError(t *testing.T) {
	sc, err := LoadScene("testdata/button.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if err := runReplay(failingWriter{}, sc); !errors.Is(err, errFull) {
		t.Errorf("got %v, want %v", err, errFull)
	}
}
