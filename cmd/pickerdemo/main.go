// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command pickerdemo renders a value slider to PNG and a hue ring to SVG.
package main

import (
	"flag"
	"image/draw"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/picker"
	"github.com/gogpu/picker/config"
	"github.com/gogpu/picker/slider"
	"github.com/gogpu/picker/svg"
)

func main() {
	var (
		layoutPath = flag.String("config", "picker.yaml", "layout file (.yaml, .yml or .toml); defaults apply if missing")
		colorHex   = flag.String("color", "#3a7bd5", "initial color")
		pointerX   = flag.Float64("x", -1, "simulate a pointer press at this x (negative to skip)")
		pngOut     = flag.String("png", "slider.png", "slider PNG output file")
		svgOut     = flag.String("svg", "ring.svg", "hue ring SVG output file")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		picker.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	layout, err := config.LoadOptional(*layoutPath)
	if err != nil {
		log.Fatalf("Failed to load layout: %v", err)
	}

	hsv, err := picker.HSVFromHex(*colorHex)
	if err != nil {
		log.Fatalf("Invalid color: %v", err)
	}
	color := picker.NewColor(hsv)

	if err := renderSlider(layout, color, *pointerX, *pngOut); err != nil {
		log.Fatalf("Failed to render slider: %v", err)
	}
	log.Printf("Slider saved to %s (%dx%d), color %s\n", *pngOut, layout.Width, layout.Height, color.Hex())

	if err := renderRing(layout, color, *svgOut); err != nil {
		log.Fatalf("Failed to render ring: %v", err)
	}
	log.Printf("Ring saved to %s\n", *svgOut)
}

func renderSlider(layout *config.Layout, color *picker.Color, pointerX float64, out string) error {
	opts, err := layout.SliderOptions()
	if err != nil {
		return err
	}
	face := picker.NewImageSurface(layout.Width, layout.Height)
	over := picker.NewImageSurface(layout.Width, layout.Height)

	s, err := slider.New(slider.Layers{Main: face, Over: over}, opts)
	if err != nil {
		return err
	}
	if err := s.Update(color.HSV(), picker.AllChanged); err != nil {
		return err
	}

	if pointerX >= 0 {
		g := s.Geometry()
		changes := color.Set(s.Input(pointerX, g.Y1()+g.H/2))
		if err := s.Update(color.HSV(), changes); err != nil {
			return err
		}
	}

	// Flatten the overlay onto the face for the saved image.
	dst := face.Image()
	draw.Draw(dst, dst.Bounds(), over.Image(), dst.Bounds().Min, draw.Over)
	return face.SavePNG(out)
}

// renderRing draws a ring of hue arcs with a value gradient in the middle
// and a marker on the current hue.
func renderRing(layout *config.Layout, color *picker.Color, out string) error {
	w, h := layout.SVG.Width, layout.SVG.Height
	cx, cy := w/2, h/2
	radius := min(w, h)/2 - 16

	root := svg.New(w, h, layout.RootOptions()...)
	ring := root.G(svg.Attrs{"class": "hue-ring", "fill": "none", "strokeWidth": 16})

	const step = 15
	for a := 0; a < 360; a += step {
		c := picker.HSV{H: float64(a), S: 100, V: 100}.RGBA()
		ring.Arc(cx, cy, radius, float64(a), float64(a+step)+0.5, svg.Attrs{"stroke": c})
	}

	hsv := color.HSV()
	g, err := root.Gradient(svg.GradientRadial, []svg.Stop{
		{Offset: 0, Color: picker.HSV{H: hsv.H, S: hsv.S, V: 100}.Hex()},
		{Offset: 100, Color: "#000", Opacity: svg.Opacity(0.8)},
	})
	if err != nil {
		return err
	}
	root.Circle(cx, cy, radius-24, svg.Attrs{"fill": g.URL})

	marker := root.Circle(0, 0, 8, svg.Attrs{"fill": "none", "stroke": "#fff", "strokeWidth": 2})
	if err := marker.SetTransform(svg.TransformTranslate, cx+radius, cy); err != nil {
		return err
	}
	if err := marker.SetTransform(svg.TransformRotate, hsv.H, -radius, 0); err != nil {
		return err
	}

	f, err := os.Create(out) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return root.WriteXML(f, true)
}
