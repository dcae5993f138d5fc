// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package slider implements a horizontal color-channel slider.
//
// A slider draws a rounded, gradient-filled face on a main surface and
// moves a marker on a separate overlay surface. Pointer positions map to
// channel values with Input; color changes flow back in through Update,
// which repaints the face only when the gradient depends on what changed.
package slider

import (
	"fmt"

	"github.com/gogpu/picker"
	"github.com/gogpu/picker/marker"
)

// Converter turns an HSV color into a display-color string.
type Converter interface {
	FromHSV(picker.HSV) string
}

// GradientBuilder creates the linear gradient paint for the slider face.
// s is the surface the paint will be used on.
type GradientBuilder interface {
	Linear(s picker.Surface, x0, y0, x1, y1 float64, stops []picker.ColorStop) picker.Paint
}

// Marker shows the current channel position.
type Marker interface {
	Move(x, y float64)
}

// Layers supplies the two surfaces a slider draws on. Main receives the
// filled face, Over the marker.
type Layers struct {
	Main picker.Surface
	Over picker.Surface
}

// State is the mutable part of a slider, changed only by Draw and Update.
type State struct {
	HSV         picker.HSV   // color the face and marker reflect
	Marker      picker.Point // last marker position
	Drawn       bool         // the face has been painted
	MarkerMoved bool         // the marker has been placed
}

// Slider is a color-channel slider.
//
// Slider is not safe for concurrent use.
type Slider struct {
	geom    Geometry
	rng     TravelRange
	typ     Type
	variant variant

	main      picker.Surface
	border    picker.Paint
	converter Converter
	gradients GradientBuilder
	marker    Marker

	state State
}

// New creates a slider. It fails with picker.ErrInvalidConfiguration for a
// missing layer or an unknown type, and with picker.ErrInvalidColor for an
// unparsable border or marker color.
func New(layers Layers, opts Options, options ...Option) (*Slider, error) {
	if layers.Main == nil || layers.Over == nil {
		return nil, fmt.Errorf("%w: slider needs both main and over layers", picker.ErrInvalidConfiguration)
	}
	v, err := variantFor(opts.Type)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range options {
		opt(&o)
	}

	s := &Slider{
		geom:      opts.Geometry(),
		typ:       opts.Type,
		variant:   v,
		main:      layers.Main,
		converter: o.converter,
		gradients: o.gradients,
		marker:    o.marker,
	}
	s.rng = s.geom.Range()

	if s.geom.Border.Width > 0 {
		c, err := picker.ParseColor(s.geom.Border.Color)
		if err != nil {
			return nil, fmt.Errorf("slider: border: %w", err)
		}
		s.border = picker.NewSolid(c)
	}

	if s.marker == nil {
		m, err := marker.New(layers.Over, opts.Marker)
		if err != nil {
			return nil, fmt.Errorf("slider: %w", err)
		}
		s.marker = m
	}

	if s.geom.malformed() {
		picker.Logger().Warn("slider: corner radius exceeds half of width or height",
			"w", s.geom.W, "h", s.geom.H, "r", s.geom.R)
	}
	return s, nil
}

// Type returns the slider type.
func (s *Slider) Type() Type { return s.typ }

// Geometry returns the slider placement.
func (s *Slider) Geometry() Geometry { return s.geom }

// Range returns the marker travel range.
func (s *Slider) Range() TravelRange { return s.rng }

// State returns a copy of the runtime state.
func (s *Slider) State() State { return s.state }

// Draw repaints the slider face for hsv: it clears the footprint including
// the border, strokes the border when it has a width, and fills the
// rounded face with the type's gradient. Drawing the same hsv twice
// produces the same output.
func (s *Slider) Draw(hsv picker.HSV) error {
	fill, err := s.variant.fill(s, hsv)
	if err != nil {
		return err
	}

	g := s.geom
	bw := g.Border.Width
	s.main.ClearRect(g.X1()-bw, g.Y1()-bw, g.W+bw*2, g.H+bw*2)

	path := picker.NewPath()
	path.RoundedRectangle(g.X, g.Y, g.W, g.H, g.R)

	// The stroke is twice the border width; the fill covers its inner half.
	if bw > 0 {
		s.main.Stroke(path, s.border, bw*2)
	}
	s.main.Fill(path, fill)

	s.state.HSV = hsv
	s.state.Drawn = true
	picker.Logger().Debug("slider: face drawn", "type", s.typ, "h", hsv.H, "s", hsv.S)
	return nil
}

// Update brings the slider in line with color. Hue or saturation changes
// repaint the face; a value change only moves the marker.
func (s *Slider) Update(hsv picker.HSV, changes picker.ChangeSet) error {
	return s.variant.update(s, hsv, changes)
}

// Input maps the pointer position (x, y) to a color patch. x is clamped to
// the travel range. Input does not change the slider.
func (s *Slider) Input(x, y float64) picker.Patch {
	return s.variant.input(s, x, y)
}

// CheckHit reports whether (x, y) is strictly inside the slider bounds.
func (s *Slider) CheckHit(x, y float64) bool {
	return s.geom.Contains(x, y)
}

func (s *Slider) moveMarker(x, y float64) {
	s.marker.Move(x, y)
	s.state.Marker = picker.Pt(x, y)
	s.state.MarkerMoved = true
}
