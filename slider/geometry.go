// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package slider

import "math"

// Border describes the outline stroked around the slider face.
type Border struct {
	Width float64 // zero disables the border
	Color string  // display color, e.g. "#000"
}

// Geometry is the fixed placement of a slider. R is the corner radius of
// the rounded face; callers must keep R <= W/2 and R <= H/2.
type Geometry struct {
	X, Y, W, H, R float64
	Border        Border
}

// X1 returns the left edge.
func (g Geometry) X1() float64 { return g.X }

// Y1 returns the top edge.
func (g Geometry) Y1() float64 { return g.Y }

// X2 returns the right edge.
func (g Geometry) X2() float64 { return g.X + g.W }

// Y2 returns the bottom edge.
func (g Geometry) Y2() float64 { return g.Y + g.H }

// Range returns the span the marker travels along the X axis. It is inset
// from both ends by the corner radius.
func (g Geometry) Range() TravelRange {
	return TravelRange{
		Min: g.X + g.R,
		Max: g.X2() - g.R,
		W:   g.W - 2*g.R,
	}
}

// Contains reports whether (x, y) lies strictly inside the slider's
// bounding rectangle. Points on the boundary are outside.
func (g Geometry) Contains(x, y float64) bool {
	return x > g.X1() && x < g.X2() && y > g.Y1() && y < g.Y2()
}

// malformed reports whether the corner radius breaks the caller contract.
func (g Geometry) malformed() bool {
	return g.R < 0 || g.R > g.W/2 || g.R > g.H/2
}

// TravelRange is the pixel span over which a slider marker may move.
type TravelRange struct {
	Min, Max, W float64
}

// Clamp limits x to [Min, Max].
func (r TravelRange) Clamp(x float64) float64 {
	return math.Max(math.Min(x, r.Max), r.Min)
}

// Percent maps x to a percentage of the range after clamping it.
// A zero-width range maps every x to 0.
func (r TravelRange) Percent(x float64) float64 {
	if r.W <= 0 {
		return 0
	}
	return 100 * (r.Clamp(x) - r.Min) / r.W
}

// At maps a percentage back to an X coordinate.
func (r TravelRange) At(percent float64) float64 {
	return r.Min + percent/100*r.W
}
