// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"fmt"
	"strconv"

	"github.com/gogpu/picker"
)

// GradientType selects the gradient element.
type GradientType uint8

const (
	GradientLinear GradientType = iota + 1
	GradientRadial
)

// String returns "linear" or "radial".
func (t GradientType) String() string {
	switch t {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	}
	return fmt.Sprintf("GradientType(%d)", uint8(t))
}

// Stop is one gradient stop. Offset is a percentage in [0, 100]. A nil
// Opacity means fully opaque.
type Stop struct {
	Offset  float64
	Color   string
	Opacity *float64
}

// Opacity returns a pointer to v, for use in Stop literals.
func Opacity(v float64) *float64 {
	return &v
}

// Gradient is a gradient definition placed in the root's <defs>.
type Gradient struct {
	ID    string  // element id
	URL   string  // paint reference, "url(#id)"
	Node  *Node   // the gradient element
	Stops []*Node // one <stop> per Stop, in order
}

// Gradient creates a gradient definition with one <stop> per entry of
// stops, in slice order. Every call allocates a new id, so identical stops
// still yield distinct paint references.
func (r *Root) Gradient(typ GradientType, stops []Stop) (*Gradient, error) {
	if typ != GradientLinear && typ != GradientRadial {
		return nil, fmt.Errorf("%w: unknown gradient type %v", picker.ErrInvalidConfiguration, typ)
	}
	id := r.prefix + "Gradient" + strconv.FormatUint(r.ids.Next(), 10)
	node := r.defs.Insert(typ.String()+"Gradient", Attrs{"id": id})

	g := &Gradient{
		ID:    id,
		URL:   "url(#" + id + ")",
		Node:  node,
		Stops: make([]*Node, 0, len(stops)),
	}
	for _, s := range stops {
		opacity := 1.0
		if s.Opacity != nil {
			opacity = *s.Opacity
		}
		g.Stops = append(g.Stops, node.Insert("stop", Attrs{
			"offset":      formatNumber(s.Offset) + "%",
			"stopColor":   s.Color,
			"stopOpacity": opacity,
		}))
	}
	picker.Logger().Debug("svg: gradient defined", "id", id, "stops", len(stops))
	return g, nil
}
