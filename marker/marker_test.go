// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package marker

import (
	"errors"
	"testing"

	"github.com/gogpu/picker"
)

func TestNewDefaults(t *testing.T) {
	m, err := New(picker.NewRecorder(10, 10), Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := Options{Radius: DefaultRadius, Width: DefaultWidth, Color: DefaultColor}
	if got := m.Options(); got != want {
		t.Errorf("Options() = %+v, want %+v", got, want)
	}
	if _, ok := m.Position(); ok {
		t.Error("new marker reports a position")
	}
}

func TestNewBadColor(t *testing.T) {
	_, err := New(picker.NewRecorder(10, 10), Options{Color: "#abcd"})
	if !errors.Is(err, picker.ErrInvalidColor) {
		t.Errorf("New error = %v, want ErrInvalidColor", err)
	}
}

func TestMoveSequence(t *testing.T) {
	rec := picker.NewRecorder(100, 100)
	m, err := New(rec, Options{})
	if err != nil {
		t.Fatal(err)
	}

	m.Move(10, 10)
	m.Move(40, 10)

	cmds := rec.Commands()
	want := []picker.CommandType{picker.CmdStroke, picker.CmdClearRect, picker.CmdStroke}
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Type != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type, want[i])
		}
	}

	if c := cmds[1]; c.X != 0 || c.Y != 0 || c.W != 20 || c.H != 20 {
		t.Errorf("ClearRect = (%v, %v, %v, %v), want (0, 0, 20, 20)", c.X, c.Y, c.W, c.H)
	}
	if cmds[2].Width != DefaultWidth {
		t.Errorf("stroke width = %v, want %v", cmds[2].Width, DefaultWidth)
	}
	if solid, ok := cmds[2].Paint.(picker.Solid); !ok || solid.Color != picker.White {
		t.Errorf("stroke paint = %+v, want white", cmds[2].Paint)
	}

	pos, ok := m.Position()
	if !ok || pos != picker.Pt(40, 10) {
		t.Errorf("Position() = %v, %v", pos, ok)
	}
}

func TestMoveRingPlacement(t *testing.T) {
	rec := picker.NewRecorder(100, 100)
	m, err := New(rec, Options{Radius: 5, Width: 1, Color: "#f00"})
	if err != nil {
		t.Fatal(err)
	}
	m.Move(50, 20)
	lo, hi, ok := rec.Commands()[0].Path.Bounds()
	if !ok {
		t.Fatal("empty ring path")
	}
	center := picker.Pt((lo.X+hi.X)/2, (lo.Y+hi.Y)/2)
	if d := center.Sub(picker.Pt(50, 20)).Length(); d > 1e-9 {
		t.Errorf("ring centered at %v, want (50, 20)", center)
	}
}

func TestMoveOnImageSurface(t *testing.T) {
	s := picker.NewImageSurface(40, 40)
	m, err := New(s, Options{})
	if err != nil {
		t.Fatal(err)
	}
	m.Move(10, 10)
	m.Move(30, 30)

	img := s.Image()
	if got := img.RGBAAt(18, 10); got.A != 0 {
		t.Errorf("old ring pixel = %v, want cleared", got)
	}
	if got := img.RGBAAt(38, 30); got.A == 0 {
		t.Errorf("new ring pixel = %v, want drawn", got)
	}
}
