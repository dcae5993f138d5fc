package picker

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewImageSurfaceMinimumSize(t *testing.T) {
	s := NewImageSurface(0, -5)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", s.Width(), s.Height())
	}
}

func TestImageSurfaceFillSolid(t *testing.T) {
	s := NewImageSurface(10, 10)
	p := NewPath()
	p.MoveTo(2, 2)
	p.LineTo(8, 2)
	p.LineTo(8, 8)
	p.LineTo(2, 8)
	p.Close()
	s.Fill(p, NewSolid(RGB(1, 0, 0)))

	img := s.Image()
	if got := img.RGBAAt(5, 5); got.R != 255 || got.A != 255 {
		t.Errorf("inside pixel = %+v, want opaque red", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("outside pixel = %+v, want transparent", got)
	}
}

func TestImageSurfaceFillOpenSubpath(t *testing.T) {
	s := NewImageSurface(10, 10)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	s.Fill(p, NewSolid(Black))

	if got := s.Image().RGBAAt(5, 5); got.A != 255 {
		t.Errorf("open subpath was not closed: %+v", got)
	}
}

func TestImageSurfaceClearRect(t *testing.T) {
	s := NewImageSurface(20, 20)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(20, 0)
	p.LineTo(20, 20)
	p.LineTo(0, 20)
	p.Close()
	s.Fill(p, NewSolid(White))

	s.ClearRect(5, 5, 10, 10)
	img := s.Image()
	if got := img.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("cleared pixel = %+v, want transparent", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 255 {
		t.Errorf("pixel outside cleared rect = %+v, want opaque", got)
	}

	// Out of bounds and negative extents are tolerated.
	s.ClearRect(-10, -10, 5, 5)
	s.ClearRect(20, 20, -5, -5)
	if got := img.RGBAAt(17, 17); got.A != 0 {
		t.Errorf("negative extent clear missed pixel: %+v", got)
	}
}

func TestImageSurfaceFillGradient(t *testing.T) {
	s := NewImageSurface(100, 10)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	p.LineTo(100, 10)
	p.LineTo(0, 10)
	p.Close()
	g := NewLinearGradient(0, 0, 100, 0,
		ColorStop{Offset: 0, Color: Black},
		ColorStop{Offset: 1, Color: White},
	)
	s.Fill(p, g)

	img := s.Image()
	left, right := img.RGBAAt(10, 5), img.RGBAAt(90, 5)
	if left.R >= right.R {
		t.Errorf("left R = %d, right R = %d, want left darker", left.R, right.R)
	}
	if left.A != 255 || right.A != 255 {
		t.Error("gradient fill is not opaque")
	}
}

func TestImageSurfaceStrokeCircle(t *testing.T) {
	s := NewImageSurface(20, 20)
	p := NewPath()
	p.Circle(10, 10, 5)
	s.Stroke(p, NewSolid(White), 2)

	img := s.Image()
	if got := img.RGBAAt(15, 10); got.A < 128 {
		t.Errorf("pixel on the ring = %+v, want covered", got)
	}
	if got := img.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("center pixel = %+v, want transparent", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel = %+v, want transparent", got)
	}
}

func TestImageSurfaceStrokeIgnoresEmpty(t *testing.T) {
	s := NewImageSurface(4, 4)
	s.Stroke(nil, NewSolid(White), 2)
	s.Stroke(NewPath(), NewSolid(White), 2)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(4, 4)
	s.Stroke(p, NewSolid(White), 0)
	s.Fill(NewPath(), NewSolid(White))

	for _, v := range s.Image().Pix {
		if v != 0 {
			t.Fatal("surface changed after empty draws")
		}
	}
}

func TestImageSurfaceSavePNG(t *testing.T) {
	s := NewImageSurface(8, 6)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(8, 0)
	p.LineTo(8, 6)
	p.Close()
	s.Fill(p, NewSolid(Black))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 6) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestImageSurfaceSavePNGError(t *testing.T) {
	s := NewImageSurface(1, 1)
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
