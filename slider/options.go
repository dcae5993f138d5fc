// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package slider

import (
	"github.com/gogpu/picker"
	"github.com/gogpu/picker/marker"
)

// Options holds the required slider configuration.
type Options struct {
	X, Y, W, H, R float64
	Border        Border

	// Type selects the channel; the zero value is TypeValue.
	Type Type

	// Marker configures the marker built on the overlay layer. It is
	// ignored when WithMarker supplies one.
	Marker marker.Options
}

// Geometry returns the placement part of the options.
func (o Options) Geometry() Geometry {
	return Geometry{X: o.X, Y: o.Y, W: o.W, H: o.H, R: o.R, Border: o.Border}
}

// Option configures the collaborators of a Slider.
//
// Example:
//
//	s, err := slider.New(layers, opts, slider.WithConverter(myConverter))
type Option func(*sliderOptions)

// sliderOptions holds the collaborators used by a Slider.
type sliderOptions struct {
	converter Converter
	gradients GradientBuilder
	marker    Marker
}

// defaultOptions returns the default collaborators. The marker is built in
// New because it needs the overlay surface.
func defaultOptions() sliderOptions {
	return sliderOptions{
		converter: picker.HexConverter{},
		gradients: picker.GradientFactory{},
	}
}

// WithConverter sets the HSV to display-color conversion. A nil
// converter keeps the default.
func WithConverter(c Converter) Option {
	return func(o *sliderOptions) {
		if c != nil {
			o.converter = c
		}
	}
}

// WithGradientBuilder sets the factory for the face gradient. A nil
// builder keeps the default.
func WithGradientBuilder(b GradientBuilder) Option {
	return func(o *sliderOptions) {
		if b != nil {
			o.gradients = b
		}
	}
}

// WithMarker replaces the default ring marker. A nil marker keeps the
// default.
func WithMarker(m Marker) Option {
	return func(o *sliderOptions) {
		if m != nil {
			o.marker = m
		}
	}
}
