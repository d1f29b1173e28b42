// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit converts between device pixels and UI units.

Hosts report the viewport and pointer positions in device pixels.
Layout and hit testing work in UI units, which are device pixels
divided by the scale factor of the display.
*/
package unit

import (
	"fmt"

	"treeui.org/f32"
)

// Metric converts values between device pixels and UI units.
// The zero Metric converts 1:1.
type Metric struct {
	// PxPerDp is the number of device pixels per UI unit.
	PxPerDp float32
}

// Identity is the Metric of an unscaled display.
var Identity = Metric{PxPerDp: 1}

// Scale returns the Metric for the scale factor f. Non-positive
// factors are reported as false.
func Scale(f float32) (Metric, bool) {
	if f <= 0 || f != f {
		return Metric{}, false
	}
	return Metric{PxPerDp: f}, true
}

func (m Metric) factor() float32 {
	if m.PxPerDp <= 0 {
		return 1
	}
	return m.PxPerDp
}

// Factor returns the number of device pixels per UI unit.
func (m Metric) Factor() float32 {
	return m.factor()
}

// Dp converts px device pixels to UI units.
func (m Metric) Dp(px float32) float32 {
	return px / m.factor()
}

// Px converts dp UI units to device pixels.
func (m Metric) Px(dp float32) float32 {
	return dp * m.factor()
}

// Point converts a device position to UI units.
func (m Metric) Point(p f32.Point) f32.Point {
	return p.Div(m.factor())
}

// Rect converts a device rectangle to UI units.
func (m Metric) Rect(r f32.Rectangle) f32.Rectangle {
	return r.Div(m.factor())
}

// DeviceRect converts a rectangle in UI units to device pixels.
func (m Metric) DeviceRect(r f32.Rectangle) f32.Rectangle {
	f := m.factor()
	return f32.Rectangle{Min: r.Min.Mul(f), Max: r.Max.Mul(f)}
}

func (m Metric) String() string {
	return fmt.Sprintf("%gpx/dp", m.factor())
}
