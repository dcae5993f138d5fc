package picker

import (
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops sorts color stops by offset. Stops with equal offsets keep
// their relative order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// colorAtOffset returns the color at offset t of sorted stops, interpolated
// in sRGB space like the HTML canvas does.
func colorAtOffset(sorted []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(sorted) {
	case 0:
		return Transparent
	case 1:
		return sorted[0].Color
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}

// LinearGradient represents a linear color transition between two points.
// It implements the Paint interface.
//
// Example:
//
//	g := picker.NewLinearGradient(0, 0, 100, 0,
//	    picker.ColorStop{Offset: 0, Color: picker.Black},
//	    picker.ColorStop{Offset: 1, Color: picker.White})
//	surface.Fill(path, g)
type LinearGradient struct {
	Start  Point      // Start point of the gradient
	End    Point      // End point of the gradient
	Extend ExtendMode // How gradient extends beyond bounds

	stops []ColorStop // sorted by offset
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) *LinearGradient {
	return &LinearGradient{
		Start: Pt(x0, y0),
		End:   Pt(x1, y1),
		stops: sortStops(stops),
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.stops = sortStops(append(g.stops, ColorStop{Offset: offset, Color: c}))
	return g
}

// Stops returns the color stops sorted by offset.
func (g *LinearGradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// ColorAt returns the color at the given point.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	d := g.End.Sub(g.Start)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		if len(g.stops) == 0 {
			return Transparent
		}
		return g.stops[0].Color
	}

	// Project point onto the gradient line
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := Pt(x, y).Sub(g.Start).Dot(d) / lengthSq
	return colorAtOffset(g.stops, t, g.Extend)
}

// GradientFactory builds linear gradient paints.
// The zero value is ready to use.
type GradientFactory struct{}

// Linear returns a LinearGradient from (x0, y0) to (x1, y1). Gradients
// are resolved in surface coordinates, so the same paint works on any
// Surface.
func (GradientFactory) Linear(_ Surface, x0, y0, x1, y1 float64, stops []ColorStop) Paint {
	return NewLinearGradient(x0, y0, x1, y1, stops...)
}
