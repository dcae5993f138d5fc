package picker

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a color in the hue/saturation/value model.
// H is in [0, 360), S and V are in [0, 100].
type HSV struct {
	H, S, V float64
}

// Normalize wraps the hue into [0, 360) and clamps S and V into [0, 100].
func (c HSV) Normalize() HSV {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	return HSV{H: h, S: clamp100(c.S), V: clamp100(c.V)}
}

// RGBA converts the color to RGB.
func (c HSV) RGBA() RGBA {
	n := c.Normalize()
	rgb := colorful.Hsv(n.H, n.S/100, n.V/100).Clamped()
	return RGB(rgb.R, rgb.G, rgb.B)
}

// Hex returns the color as "#rrggbb".
func (c HSV) Hex() string {
	return c.RGBA().Hex()
}

// HSVFromHex parses a display color string into HSV.
func HSVFromHex(s string) (HSV, error) {
	c, err := ParseColor(s)
	if err != nil {
		return HSV{}, err
	}
	h, sat, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return HSV{H: h, S: sat * 100, V: v * 100}, nil
}

// HexConverter converts HSV colors to "#rrggbb" display strings.
type HexConverter struct{}

// FromHSV returns the display color of c.
func (HexConverter) FromHSV(c HSV) string {
	return c.Hex()
}

// ChangeSet flags the HSV channels that changed since the last update.
type ChangeSet struct {
	H, S, V bool
}

// AllChanged marks every channel as changed. Use it for the first update
// of a widget so that it draws its face and places its marker.
var AllChanged = ChangeSet{H: true, S: true, V: true}

// Any reports whether any channel changed.
func (c ChangeSet) Any() bool {
	return c.H || c.S || c.V
}

// Union returns the channels changed in either set.
func (c ChangeSet) Union(o ChangeSet) ChangeSet {
	return ChangeSet{H: c.H || o.H, S: c.S || o.S, V: c.V || o.V}
}

// Diff returns the channels whose values differ between prev and next.
func Diff(prev, next HSV) ChangeSet {
	return ChangeSet{
		H: prev.H != next.H,
		S: prev.S != next.S,
		V: prev.V != next.V,
	}
}

// Patch is a partial HSV value. Only the channels flagged in Set carry
// meaningful values.
type Patch struct {
	HSV HSV
	Set ChangeSet
}

// Apply merges the patch into c and returns the merged color along with
// the channels whose values actually changed.
func (p Patch) Apply(c HSV) (HSV, ChangeSet) {
	next := c
	if p.Set.H {
		next.H = p.HSV.H
	}
	if p.Set.S {
		next.S = p.HSV.S
	}
	if p.Set.V {
		next.V = p.HSV.V
	}
	next = next.Normalize()
	return next, Diff(c, next)
}

// Color is the color state a host shares between widgets.
//
// Color is not safe for concurrent use.
type Color struct {
	hsv HSV
}

// NewColor returns a color state initialized to c.
func NewColor(c HSV) *Color {
	return &Color{hsv: c.Normalize()}
}

// HSV returns the current color.
func (c *Color) HSV() HSV {
	return c.hsv
}

// Set merges p into the color and returns the channels that changed.
func (c *Color) Set(p Patch) ChangeSet {
	var changes ChangeSet
	c.hsv, changes = p.Apply(c.hsv)
	return changes
}

// Hex returns the current color as "#rrggbb".
func (c *Color) Hex() string {
	return c.hsv.Hex()
}

func clamp100(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
