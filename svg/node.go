// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg is a thin declarative wrapper over an SVG document tree.
//
// A Root owns the <svg> element and a shared <defs> container. Nodes create
// children with short helpers, set attributes through camel-case logical
// names, and keep at most one transform handle per transform type so
// repeated updates never grow the transform list.
//
//	root := svg.New(320, 320)
//	ring := root.G(svg.Attrs{"class": "wheel"})
//	ring.Arc(160, 160, 120, 0, 90, svg.Attrs{"stroke": "#f00", "strokeWidth": 8})
//	dot := ring.Circle(0, 0, 6, svg.Attrs{"fill": "none", "stroke": "#fff"})
//	_ = dot.SetTransform(svg.TransformTranslate, 280, 160)
//	fmt.Println(root)
package svg

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Attrs maps logical attribute names to values. Attributes are applied in
// sorted key order so output does not depend on map iteration.
type Attrs map[string]any

// Node wraps one element of the tree. The element belongs to its parent;
// the node only refers to it and to the root it was created under.
type Node struct {
	el         *Element
	root       *Root
	transforms map[TransformType]*Transform
}

func newNode(root *Root, parent *Element, name string, attrs Attrs) *Node {
	n := &Node{
		el:   CreateElement(name),
		root: root,
	}
	n.SetAttrs(attrs)
	if parent != nil {
		parent.AppendChild(n.el)
	}
	return n
}

// Element returns the wrapped element.
func (n *Node) Element() *Element { return n.el }

// Root returns the root the node belongs to.
func (n *Node) Root() *Root { return n.root }

// Insert creates a child element of the given type with attrs applied.
func (n *Node) Insert(name string, attrs Attrs) *Node {
	return newNode(n.root, n.el, name, attrs)
}

// G creates a group child.
func (n *Node) G(attrs Attrs) *Node {
	return n.Insert("g", attrs)
}

// Arc creates a path child tracing a circular arc around (cx, cy) from
// startAngle to endAngle, in degrees with 0 on the +x axis. The caller's
// attrs are not modified.
func (n *Node) Arc(cx, cy, radius, startAngle, endAngle float64, attrs Attrs) *Node {
	merged := cloneAttrs(attrs, 1)
	merged["d"] = ArcPath(cx, cy, radius, startAngle, endAngle)
	return n.Insert("path", merged)
}

// ArcPath returns the path data of Arc. The path starts at the end angle
// and sweeps back to the start angle; the large-arc flag is set when the
// arc spans more than 180 degrees.
func ArcPath(cx, cy, radius, startAngle, endAngle float64) string {
	largeArc := 0
	if endAngle-startAngle > 180 {
		largeArc = 1
	}
	start := startAngle * math.Pi / 180
	end := endAngle * math.Pi / 180

	x1 := cx + radius*math.Cos(end)
	y1 := cy + radius*math.Sin(end)
	x2 := cx + radius*math.Cos(start)
	y2 := cy + radius*math.Sin(start)

	return strings.Join([]string{
		"M", formatNumber(x1), formatNumber(y1),
		"A", formatNumber(radius), formatNumber(radius), "0", fmt.Sprint(largeArc), "0",
		formatNumber(x2), formatNumber(y2),
	}, " ")
}

// Circle creates a circle child centered on (cx, cy). The caller's attrs
// are not modified.
func (n *Node) Circle(cx, cy, radius float64, attrs Attrs) *Node {
	merged := cloneAttrs(attrs, 3)
	merged["cx"] = cx
	merged["cy"] = cy
	merged["r"] = radius
	return n.Insert("circle", merged)
}

// SetAttrs sets attributes on the element, translating logical names such
// as "strokeWidth" to physical ones such as "stroke-width".
func (n *Node) SetAttrs(attrs Attrs) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.el.SetAttribute(AttributeName(k), FormatValue(attrs[k]))
	}
}

// SetTransform updates the node's transform of the given type. The first
// call for a type appends a new transform to the element's list; later
// calls change that transform in place.
//
// Arguments follow the SVG functions: translate(tx [ty]), scale(sx [sy]),
// rotate(angle [cx cy]) with the angle in degrees. An unknown type or a
// wrong argument count returns picker.ErrInvalidConfiguration and leaves
// the list unchanged.
func (n *Node) SetTransform(typ TransformType, args ...float64) error {
	if t, ok := n.transforms[typ]; ok {
		return t.set(typ, args)
	}
	t := &Transform{}
	if err := t.set(typ, args); err != nil {
		return err
	}
	if n.transforms == nil {
		n.transforms = make(map[TransformType]*Transform, 1)
	}
	n.transforms[typ] = t
	n.el.Transform().Append(t)
	return nil
}

// SetTransformByName is SetTransform with the type given by name.
func (n *Node) SetTransformByName(name string, args ...float64) error {
	typ, err := ParseTransformType(name)
	if err != nil {
		return err
	}
	return n.SetTransform(typ, args...)
}

// Transform returns the node's handle for typ, if one was created.
func (n *Node) Transform(typ TransformType) (*Transform, bool) {
	t, ok := n.transforms[typ]
	return t, ok
}

func cloneAttrs(attrs Attrs, extra int) Attrs {
	out := make(Attrs, len(attrs)+extra)
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
