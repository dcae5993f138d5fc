package picker

import (
	"image"
	"image/color"
)

// Paint describes how a filled or stroked area is colored.
// Implementations return the color at a point in surface coordinates.
type Paint interface {
	ColorAt(x, y float64) RGBA
}

// Solid is a single-color paint.
type Solid struct {
	Color RGBA
}

// NewSolid returns a paint of a single color.
func NewSolid(c RGBA) Solid {
	return Solid{Color: c}
}

// ColorAt implements Paint.
func (s Solid) ColorAt(_, _ float64) RGBA {
	return s.Color
}

// paintImage adapts a Paint to image.Image so it can be used as the source
// of a rasterizer draw. Pixels are sampled at their centers.
type paintImage struct {
	paint  Paint
	bounds image.Rectangle
}

func (p paintImage) ColorModel() color.Model { return color.NRGBAModel }

func (p paintImage) Bounds() image.Rectangle { return p.bounds }

func (p paintImage) At(x, y int) color.Color {
	return p.paint.ColorAt(float64(x)+0.5, float64(y)+0.5).NRGBA()
}

// paintSource returns an image to use as a rasterizer source for paint.
// Solid paints use image.Uniform, which the rasterizer handles fastest.
func paintSource(paint Paint, bounds image.Rectangle) image.Image {
	if s, ok := paint.(Solid); ok {
		return image.NewUniform(s.Color.NRGBA())
	}
	return paintImage{paint: paint, bounds: bounds}
}
