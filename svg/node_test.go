// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/picker"
)

func TestArcPathLargeArcFlag(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       string
	}{
		{"quarter", 0, 90, "0"},
		{"half", 0, 180, "0"},
		{"over half", 0, 200, "1"},
		{"offset over half", 90, 300, "1"},
		{"small", 350, 365, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := strings.Fields(ArcPath(100, 100, 50, tt.start, tt.end))
			if len(fields) != 11 || fields[0] != "M" || fields[3] != "A" {
				t.Fatalf("ArcPath = %v", fields)
			}
			if fields[7] != tt.want {
				t.Errorf("large-arc flag = %s, want %s", fields[7], tt.want)
			}
		})
	}
}

func TestArcPathEndpoints(t *testing.T) {
	// The path starts at the end angle and finishes at the start angle.
	got := ArcPath(100, 100, 50, 0, 180)
	want := "M 50 100 A 50 50 0 0 0 150 100"
	if got != want {
		t.Errorf("ArcPath = %q, want %q", got, want)
	}
	if ArcPath(100, 100, 50, 0, 180) != got {
		t.Error("ArcPath is not deterministic")
	}
}

func TestNodeArc(t *testing.T) {
	root := New(200, 200)
	attrs := Attrs{"stroke": "#f00", "strokeWidth": 8}
	arc := root.Arc(100, 100, 50, 0, 180, attrs)

	if arc.Element().Name() != "path" {
		t.Errorf("Arc element = %s, want path", arc.Element().Name())
	}
	if d, _ := arc.Element().Attribute("d"); d != ArcPath(100, 100, 50, 0, 180) {
		t.Errorf("d = %q", d)
	}
	if w, _ := arc.Element().Attribute("stroke-width"); w != "8" {
		t.Errorf("stroke-width = %q, want 8", w)
	}
	if _, ok := attrs["d"]; ok || len(attrs) != 2 {
		t.Errorf("caller attrs were modified: %v", attrs)
	}
}

func TestNodeCircle(t *testing.T) {
	root := New(100, 100)
	attrs := Attrs{"fill": "none"}
	c := root.Circle(10, 20.5, 6, attrs)

	el := c.Element()
	if el.Name() != "circle" || el.Parent() != root.Element() {
		t.Fatalf("circle = %s under %v", el.Name(), el.Parent())
	}
	for name, want := range map[string]string{"cx": "10", "cy": "20.5", "r": "6", "fill": "none"} {
		if got, ok := el.Attribute(name); !ok || got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if len(attrs) != 1 {
		t.Errorf("caller attrs were modified: %v", attrs)
	}
}

func TestNodeInsertAndGroup(t *testing.T) {
	root := New(100, 100)
	g := root.G(Attrs{"class": "wheel"})
	rect := g.Insert("rect", Attrs{"width": 5})

	if rect.Element().Parent() != g.Element() {
		t.Error("rect is not a child of the group")
	}
	if rect.Root() != root {
		t.Error("child node lost its root")
	}
	if cls, _ := g.Element().Attribute("class"); cls != "wheel" {
		t.Errorf("class = %q", cls)
	}
	children := root.Element().Children()
	if len(children) != 2 || children[0] != root.Defs().Element() || children[1] != g.Element() {
		t.Errorf("root children = %v", children)
	}
}

func TestSetAttrsShorthand(t *testing.T) {
	root := New(10, 10)
	n := root.Insert("stop", nil)
	n.SetAttrs(Attrs{
		"stopColor":   "#fff",
		"stopOpacity": 0.5,
		"strokeWidth": 2,
		"data-x":      "raw",
	})
	el := n.Element()
	for name, want := range map[string]string{
		"stop-color":   "#fff",
		"stop-opacity": "0.5",
		"stroke-width": "2",
		"data-x":       "raw",
	} {
		if got, ok := el.Attribute(name); !ok || got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}

	// Sorted application makes attribute order independent of the map.
	attrs := el.Attrs()
	if attrs[0].Name != "data-x" || attrs[len(attrs)-1].Name != "stroke-width" {
		t.Errorf("attribute order = %v", attrs)
	}

	n.SetAttrs(Attrs{"stopColor": "#000"})
	if got, _ := el.Attribute("stop-color"); got != "#000" || len(el.Attrs()) != 4 {
		t.Errorf("overwrite produced %v", el.Attrs())
	}
}

func TestSetTransformReusesHandle(t *testing.T) {
	root := New(10, 10)
	n := root.Circle(0, 0, 1, nil)

	if err := n.SetTransform(TransformTranslate, 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := n.SetTransform(TransformTranslate, 3, 4); err != nil {
		t.Fatal(err)
	}
	list := n.Element().Transform()
	if list.Len() != 1 {
		t.Fatalf("transform list length = %d, want 1", list.Len())
	}
	if got := list.String(); got != "translate(3 4)" {
		t.Errorf("transform = %q", got)
	}

	if err := n.SetTransform(TransformRotate, 45); err != nil {
		t.Fatal(err)
	}
	if err := n.SetTransform(TransformRotate, 30, 5, 6); err != nil {
		t.Fatal(err)
	}
	if list.Len() != 2 {
		t.Fatalf("transform list length = %d, want 2", list.Len())
	}
	if got := list.String(); got != "translate(3 4) rotate(30 5 6)" {
		t.Errorf("transform = %q", got)
	}

	h, ok := n.Transform(TransformRotate)
	if !ok || h != list.At(1) {
		t.Error("Transform(TransformRotate) does not return the list entry")
	}
	if _, ok := n.Transform(TransformScale); ok {
		t.Error("unexpected scale handle")
	}
}

func TestSetTransformDefaults(t *testing.T) {
	root := New(10, 10)
	n := root.G(nil)
	if err := n.SetTransform(TransformScale, 2); err != nil {
		t.Fatal(err)
	}
	if err := n.SetTransform(TransformTranslate, 7); err != nil {
		t.Fatal(err)
	}
	if got := n.Element().Transform().String(); got != "scale(2 2) translate(7 0)" {
		t.Errorf("transform = %q", got)
	}
}

func TestSetTransformErrors(t *testing.T) {
	root := New(10, 10)
	n := root.G(nil)
	if err := n.SetTransform(TransformTranslate, 1, 1); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		typ  TransformType
		args []float64
	}{
		{"no args", TransformTranslate, nil},
		{"too many", TransformScale, []float64{1, 2, 3}},
		{"rotate two", TransformRotate, []float64{1, 2}},
		{"unknown type", TransformType(9), []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := n.SetTransform(tt.typ, tt.args...)
			if !errors.Is(err, picker.ErrInvalidConfiguration) {
				t.Errorf("error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
	if got := n.Element().Transform().String(); got != "translate(1 1)" {
		t.Errorf("failed calls changed the list: %q", got)
	}
}

func TestSetTransformByName(t *testing.T) {
	root := New(10, 10)
	n := root.G(nil)
	if err := n.SetTransformByName("rotate", 90, 1, 1); err != nil {
		t.Fatal(err)
	}
	if got := n.Element().Transform().String(); got != "rotate(90 1 1)" {
		t.Errorf("transform = %q", got)
	}
	if err := n.SetTransformByName("skewX", 10); !errors.Is(err, picker.ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}
