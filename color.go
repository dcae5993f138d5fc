package picker

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return c.NRGBA()
}

// NRGBA converts RGBA to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// ParseColor parses a display color string. It accepts "#rgb" and
// "#rrggbb" (the '#' may be omitted), CSS color names such as "black",
// the functional forms rgb(), rgba(), hsl() and hsla(), and the keywords
// "transparent" and "none".
func ParseColor(s string) (RGBA, error) {
	in := strings.TrimSpace(s)
	low := strings.ToLower(in)
	switch low {
	case "transparent", "none":
		return Transparent, nil
	case "":
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if low[0] == '#' {
		return parseHex(in, low)
	}
	if nc, ok := colornames.Map[low]; ok {
		return FromColor(nc), nil
	}
	if open := strings.IndexByte(low, '('); open > 0 && strings.HasSuffix(low, ")") {
		return parseFunc(in, low[:open], low[open+1:len(low)-1])
	}
	if isHexDigits(low) {
		return parseHex(in, "#"+low)
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
}

// parseHex parses "#rgb" or "#rrggbb". in is the caller's text, used in
// errors.
func parseHex(in, hex string) (RGBA, error) {
	if len(hex) != 4 && len(hex) != 7 {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, in, err)
	}
	return RGB(c.R, c.G, c.B), nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// parseFunc parses the arguments of rgb(), rgba(), hsl() and hsla().
// Arguments may be separated by commas or spaces, with an optional
// "/ alpha" in the space-separated form.
func parseFunc(in, name, body string) (RGBA, error) {
	args := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("%w: %q: want 3 or 4 arguments", ErrInvalidColor, in)
	}
	alpha := 1.0
	if len(args) == 4 {
		a, err := parseComponent(args[3], 1)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, in, err)
		}
		alpha = clamp01(a)
	}

	switch name {
	case "rgb", "rgba":
		var v [3]float64
		for i := range v {
			c, err := parseComponent(args[i], 255)
			if err != nil {
				return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, in, err)
			}
			v[i] = clamp01(c / 255)
		}
		return RGBA{R: v[0], G: v[1], B: v[2], A: alpha}, nil
	case "hsl", "hsla":
		h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, in, err)
		}
		var sl [2]float64
		for i := range sl {
			if !strings.HasSuffix(args[i+1], "%") {
				return RGBA{}, fmt.Errorf("%w: %q: saturation and lightness need %%", ErrInvalidColor, in)
			}
			v, err := parseComponent(args[i+1], 1)
			if err != nil {
				return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, in, err)
			}
			sl[i] = clamp01(v)
		}
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}
		c := colorful.Hsl(h, sl[0], sl[1]).Clamped()
		return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q: unknown function %q", ErrInvalidColor, in, name)
}

// parseComponent parses a number or a percentage. A percentage maps to
// the range [0, full].
func parseComponent(s string, full float64) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100 * full, err
	}
	return strconv.ParseFloat(s, 64)
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for package-level color tables.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
