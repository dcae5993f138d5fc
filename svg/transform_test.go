// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"math"
	"testing"

	"github.com/gogpu/picker"
)

func TestParseTransformType(t *testing.T) {
	for _, typ := range []TransformType{TransformTranslate, TransformScale, TransformRotate} {
		got, err := ParseTransformType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseTransformType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if _, err := ParseTransformType("matrix"); err == nil {
		t.Error("ParseTransformType(matrix) should fail")
	}
}

func TestTransformString(t *testing.T) {
	var tr Transform
	tests := []struct {
		set  func()
		want string
	}{
		{func() { tr.SetTranslate(10, -2.5) }, "translate(10 -2.5)"},
		{func() { tr.SetScale(2, 3) }, "scale(2 3)"},
		{func() { tr.SetRotate(45, 0, 0) }, "rotate(45)"},
		{func() { tr.SetRotate(45, 10, 10) }, "rotate(45 10 10)"},
	}
	for _, tt := range tests {
		tt.set()
		if got := tr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTransformMatrix(t *testing.T) {
	var tr Transform
	tr.SetRotate(90, 10, 0)
	// Rotating (20, 0) by 90 degrees around (10, 0) gives (10, 10).
	p := tr.Matrix().TransformPoint(picker.Pt(20, 0))
	if math.Abs(p.X-10) > 1e-9 || math.Abs(p.Y-10) > 1e-9 {
		t.Errorf("rotated point = %v, want (10, 10)", p)
	}

	var l TransformList
	a, b := &Transform{}, &Transform{}
	a.SetTranslate(5, 0)
	b.SetScale(2, 2)
	l.Append(a)
	l.Append(b)
	// Entries apply right to left: scale first, then translate.
	p = l.Matrix().TransformPoint(picker.Pt(1, 1))
	if math.Abs(p.X-7) > 1e-9 || math.Abs(p.Y-2) > 1e-9 {
		t.Errorf("list transform = %v, want (7, 2)", p)
	}
}
