// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package marker draws the ring that shows a widget's current position.
//
// A marker owns its surface, normally the overlay layer of a widget, so
// moving it never touches the widget's filled face.
package marker

import (
	"fmt"

	"github.com/gogpu/picker"
)

// Default marker appearance.
const (
	DefaultRadius = 8
	DefaultWidth  = 2
	DefaultColor  = "#fff"
)

// Options configures a Marker. Zero fields take the defaults above.
type Options struct {
	Radius float64 // ring radius, measured to the center of the stroke
	Width  float64 // ring line width
	Color  string  // ring color
}

func (o Options) withDefaults() Options {
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	return o
}

// Marker is a ring drawn on its own surface.
//
// Marker is not safe for concurrent use.
type Marker struct {
	surface picker.Surface
	opts    Options
	paint   picker.Paint
	pos     picker.Point
	drawn   bool
}

// New creates a marker drawing on s. It returns an error wrapping
// picker.ErrInvalidColor if opts.Color cannot be parsed.
func New(s picker.Surface, opts Options) (*Marker, error) {
	opts = opts.withDefaults()
	c, err := picker.ParseColor(opts.Color)
	if err != nil {
		return nil, fmt.Errorf("marker: %w", err)
	}
	return &Marker{
		surface: s,
		opts:    opts,
		paint:   picker.NewSolid(c),
	}, nil
}

// Options returns the effective options.
func (m *Marker) Options() Options {
	return m.opts
}

// Move erases the ring at its previous position and draws it centered on
// (x, y).
func (m *Marker) Move(x, y float64) {
	if m.drawn {
		m.surface.ClearRect(m.footprint())
	}
	m.pos = picker.Pt(x, y)
	m.drawn = true

	path := picker.NewPath()
	path.Circle(x, y, m.opts.Radius)
	m.surface.Stroke(path, m.paint, m.opts.Width)

	picker.Logger().Debug("marker: moved", "x", x, "y", y)
}

// Position returns the last position passed to Move. ok is false until the
// marker has been drawn.
func (m *Marker) Position() (pos picker.Point, ok bool) {
	return m.pos, m.drawn
}

// footprint returns the rectangle covered by the ring, with a pixel of
// slack for anti-aliasing.
func (m *Marker) footprint() (x, y, w, h float64) {
	r := m.opts.Radius + m.opts.Width/2 + 1
	return m.pos.X - r, m.pos.Y - r, 2 * r, 2 * r
}
