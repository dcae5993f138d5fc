package picker

import (
	"image"
	"image/color"
	"testing"
)

func TestSolidColorAt(t *testing.T) {
	s := NewSolid(RGB(1, 0, 0))
	if got := s.ColorAt(-100, 42); got != RGB(1, 0, 0) {
		t.Errorf("ColorAt = %+v", got)
	}
}

func TestPaintSource(t *testing.T) {
	bounds := image.Rect(0, 0, 10, 1)

	if _, ok := paintSource(NewSolid(Black), bounds).(*image.Uniform); !ok {
		t.Error("solid paint should use image.Uniform")
	}

	g := NewLinearGradient(0, 0, 10, 0,
		ColorStop{Offset: 0, Color: Black},
		ColorStop{Offset: 1, Color: White},
	)
	src := paintSource(g, bounds)
	if src.Bounds() != bounds {
		t.Errorf("bounds = %v, want %v", src.Bounds(), bounds)
	}
	first := color.NRGBAModel.Convert(src.At(0, 0)).(color.NRGBA)
	last := color.NRGBAModel.Convert(src.At(9, 0)).(color.NRGBA)
	if first.R >= last.R {
		t.Errorf("gradient samples %v then %v, want increasing", first, last)
	}
}
