// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/picker"
)

// TransformType is the kind of a transform handle.
type TransformType uint8

const (
	TransformTranslate TransformType = iota + 1
	TransformScale
	TransformRotate
)

// String returns the SVG function name of the transform type.
func (t TransformType) String() string {
	switch t {
	case TransformTranslate:
		return "translate"
	case TransformScale:
		return "scale"
	case TransformRotate:
		return "rotate"
	}
	return fmt.Sprintf("TransformType(%d)", uint8(t))
}

// ParseTransformType parses "translate", "scale" or "rotate".
func ParseTransformType(name string) (TransformType, error) {
	switch name {
	case "translate":
		return TransformTranslate, nil
	case "scale":
		return TransformScale, nil
	case "rotate":
		return TransformRotate, nil
	}
	return 0, fmt.Errorf("%w: unknown transform type %q", picker.ErrInvalidConfiguration, name)
}

// Transform is one entry of a transform list. Its setters replace both the
// kind and the parameters, like SVGTransform in the DOM.
type Transform struct {
	typ TransformType
	a   float64 // tx, sx or angle in degrees
	b   float64 // ty, sy or rotation center x
	c   float64 // rotation center y
}

// Type returns the kind of the transform.
func (t *Transform) Type() TransformType { return t.typ }

// SetTranslate makes t a translation by (tx, ty).
func (t *Transform) SetTranslate(tx, ty float64) {
	*t = Transform{typ: TransformTranslate, a: tx, b: ty}
}

// SetScale makes t a scale by (sx, sy).
func (t *Transform) SetScale(sx, sy float64) {
	*t = Transform{typ: TransformScale, a: sx, b: sy}
}

// SetRotate makes t a rotation by angle degrees around (cx, cy).
func (t *Transform) SetRotate(angle, cx, cy float64) {
	*t = Transform{typ: TransformRotate, a: angle, b: cx, c: cy}
}

// Args returns the parameters as they appear in the SVG function.
func (t *Transform) Args() []float64 {
	switch t.typ {
	case TransformTranslate, TransformScale:
		return []float64{t.a, t.b}
	case TransformRotate:
		if t.b == 0 && t.c == 0 {
			return []float64{t.a}
		}
		return []float64{t.a, t.b, t.c}
	}
	return nil
}

// Matrix returns the affine matrix of the transform.
func (t *Transform) Matrix() picker.Matrix {
	switch t.typ {
	case TransformTranslate:
		return picker.Translate(t.a, t.b)
	case TransformScale:
		return picker.Scale(t.a, t.b)
	case TransformRotate:
		return picker.RotateAbout(t.a*math.Pi/180, t.b, t.c)
	}
	return picker.Identity()
}

// String renders the transform in SVG syntax, e.g. "rotate(45 10 10)".
func (t *Transform) String() string {
	args := t.Args()
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatNumber(a)
	}
	return t.typ.String() + "(" + strings.Join(parts, " ") + ")"
}

// set applies args through the setter of typ. Missing trailing arguments
// take the SVG defaults: ty = 0, sy = sx, and a rotation about the origin.
func (t *Transform) set(typ TransformType, args []float64) error {
	switch typ {
	case TransformTranslate:
		switch len(args) {
		case 1:
			t.SetTranslate(args[0], 0)
		case 2:
			t.SetTranslate(args[0], args[1])
		default:
			return arityError(typ, args, "1 or 2")
		}
	case TransformScale:
		switch len(args) {
		case 1:
			t.SetScale(args[0], args[0])
		case 2:
			t.SetScale(args[0], args[1])
		default:
			return arityError(typ, args, "1 or 2")
		}
	case TransformRotate:
		switch len(args) {
		case 1:
			t.SetRotate(args[0], 0, 0)
		case 3:
			t.SetRotate(args[0], args[1], args[2])
		default:
			return arityError(typ, args, "1 or 3")
		}
	default:
		return fmt.Errorf("%w: unknown transform type %v", picker.ErrInvalidConfiguration, typ)
	}
	return nil
}

func arityError(typ TransformType, args []float64, want string) error {
	return fmt.Errorf("%w: %v takes %s arguments, got %d",
		picker.ErrInvalidConfiguration, typ, want, len(args))
}

// TransformList is the ordered list of transforms of an element. Entries
// apply right to left, as in the SVG transform attribute.
type TransformList struct {
	items []*Transform
}

// Append adds t to the end of the list.
func (l *TransformList) Append(t *Transform) {
	l.items = append(l.items, t)
}

// Len returns the number of transforms.
func (l *TransformList) Len() int { return len(l.items) }

// At returns the i-th transform.
func (l *TransformList) At(i int) *Transform { return l.items[i] }

// Matrix returns the product of all transforms.
func (l *TransformList) Matrix() picker.Matrix {
	m := picker.Identity()
	for _, t := range l.items {
		m = m.Multiply(t.Matrix())
	}
	return m
}

// String renders the list as a transform attribute value.
func (l *TransformList) String() string {
	parts := make([]string, len(l.items))
	for i, t := range l.items {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
