package picker

import (
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// strokeTolerance is the curve flattening tolerance used for strokes.
const strokeTolerance = 0.25

// ImageSurface is a CPU surface that rasterizes into an *image.RGBA.
//
// Fills go straight to a golang.org/x/image/vector rasterizer. Strokes
// are expanded into one quad per flattened segment plus a disc per vertex,
// all wound the same way so their coverage merges instead of cancelling.
//
// Example:
//
//	s := picker.NewImageSurface(320, 40)
//	p := picker.NewPath()
//	p.RoundedRectangle(10, 10, 300, 20, 10)
//	s.Fill(p, picker.NewSolid(picker.Black))
//	_ = s.SavePNG("slider.png")
type ImageSurface struct {
	img    *image.RGBA
	raster *vector.Rasterizer
}

// NewImageSurface creates a surface with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// Surface coordinate (0, 0) maps to img.Bounds().Min.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	return &ImageSurface{
		img:    img,
		raster: vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// Image returns the backing image. Drawing to the surface mutates it.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// ClearRect resets every pixel touched by the rectangle to transparent.
func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	b := s.img.Bounds()
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Add(b.Min).Intersect(b)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// Fill fills the path with paint.
func (s *ImageSurface) Fill(path *Path, paint Paint) {
	if path == nil || !path.HasCurrentPoint() {
		return
	}
	s.reset()
	open := false
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				s.raster.ClosePath()
			}
			s.raster.MoveTo(f32(e.Point.X), f32(e.Point.Y))
			open = true
		case LineTo:
			s.raster.LineTo(f32(e.Point.X), f32(e.Point.Y))
		case CubicTo:
			s.raster.CubeTo(
				f32(e.Control1.X), f32(e.Control1.Y),
				f32(e.Control2.X), f32(e.Control2.Y),
				f32(e.Point.X), f32(e.Point.Y),
			)
		case Close:
			s.raster.ClosePath()
			open = false
		}
	}
	if open {
		s.raster.ClosePath()
	}
	s.composite(paint)
}

// Stroke strokes the path with paint.
func (s *ImageSurface) Stroke(path *Path, paint Paint, width float64) {
	if path == nil || width <= 0 {
		return
	}
	lines := path.Flatten(strokeTolerance)
	if len(lines) == 0 {
		return
	}
	hw := width / 2
	s.reset()
	for _, line := range lines {
		pts := line.Points
		for i := 0; i+1 < len(pts); i++ {
			s.addSegment(pts[i], pts[i+1], hw)
		}
		if line.Closed {
			s.addSegment(pts[len(pts)-1], pts[0], hw)
		}
		for _, pt := range pts {
			s.addDisc(pt, hw)
		}
	}
	s.composite(paint)
}

// SavePNG saves the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.img)
}

func (s *ImageSurface) reset() {
	b := s.img.Bounds()
	s.raster.Reset(b.Dx(), b.Dy())
}

// composite draws the accumulated coverage with paint, source-over.
func (s *ImageSurface) composite(paint Paint) {
	b := s.img.Bounds()
	src := paintSource(paint, image.Rect(0, 0, b.Dx(), b.Dy()))
	s.raster.DrawOp = draw.Over
	s.raster.Draw(s.img, b, src, image.Point{})
}

// addSegment adds the quad covering a stroke segment.
func (s *ImageSurface) addSegment(a, b Point, hw float64) {
	d := b.Sub(a)
	if d.Length() == 0 {
		return
	}
	n := d.Normalize().Perp().Mul(hw)
	s.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addDisc adds a round join at pt. The vertices run with decreasing angle
// so the disc is wound like the segment quads.
func (s *ImageSurface) addDisc(pt Point, r float64) {
	k := int(math.Ceil(r * 4))
	if k < 8 {
		k = 8
	}
	pts := make([]Point, k)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / float64(k)
		pts[i] = Pt(pt.X+r*math.Cos(a), pt.Y+r*math.Sin(a))
	}
	s.addPolygon(pts...)
}

func (s *ImageSurface) addPolygon(pts ...Point) {
	s.raster.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, pt := range pts[1:] {
		s.raster.LineTo(f32(pt.X), f32(pt.Y))
	}
	s.raster.ClosePath()
}

func f32(v float64) float32 { return float32(v) }
