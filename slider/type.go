// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package slider

import (
	"fmt"
	"math"

	"github.com/gogpu/picker"
)

// Type selects the color channel a slider controls.
type Type uint8

const (
	// TypeValue adjusts the HSV value channel. It is the zero value.
	TypeValue Type = iota
)

// String returns the short name used in configuration files.
func (t Type) String() string {
	switch t {
	case TypeValue:
		return "v"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType parses a slider type name. The empty string selects TypeValue.
func ParseType(name string) (Type, error) {
	switch name {
	case "", "v":
		return TypeValue, nil
	}
	return 0, fmt.Errorf("%w: unknown slider type %q", picker.ErrInvalidConfiguration, name)
}

// variant holds the per-type behavior of a slider. Each Type has exactly
// one implementation, returned by variantFor; adding a channel (alpha, for
// instance) means adding a Type constant and a variant.
type variant interface {
	// fill returns the paint for the slider face.
	fill(s *Slider, hsv picker.HSV) (picker.Paint, error)
	// update redraws whatever the changed channels affect.
	update(s *Slider, hsv picker.HSV, changes picker.ChangeSet) error
	// input maps a pointer position to a color patch.
	input(s *Slider, x, y float64) picker.Patch
}

func variantFor(t Type) (variant, error) {
	switch t {
	case TypeValue:
		return valueVariant{}, nil
	}
	return nil, fmt.Errorf("%w: unknown slider type %v", picker.ErrInvalidConfiguration, t)
}

// valueVariant drives the HSV value channel: the face fades from black to
// the fully bright color of the current hue and saturation.
type valueVariant struct{}

func (valueVariant) fill(s *Slider, hsv picker.HSV) (picker.Paint, error) {
	display := s.converter.FromHSV(picker.HSV{H: hsv.H, S: hsv.S, V: 100})
	end, err := picker.ParseColor(display)
	if err != nil {
		return nil, fmt.Errorf("slider: converted color: %w", err)
	}
	g := s.geom
	return s.gradients.Linear(s.main, g.X1(), g.Y1(), g.X2(), g.Y2(), []picker.ColorStop{
		{Offset: 0, Color: picker.Black},
		{Offset: 1, Color: end},
	}), nil
}

func (valueVariant) update(s *Slider, hsv picker.HSV, changes picker.ChangeSet) error {
	if changes.H || changes.S {
		if err := s.Draw(hsv); err != nil {
			return err
		}
	}
	if changes.V {
		s.moveMarker(s.rng.At(hsv.V), s.geom.Y1()+s.geom.H/2)
		s.state.HSV.V = hsv.V
	}
	return nil
}

func (valueVariant) input(s *Slider, x, _ float64) picker.Patch {
	return picker.Patch{
		HSV: picker.HSV{V: math.Round(s.rng.Percent(x))},
		Set: picker.ChangeSet{V: true},
	}
}
