package picker

import "testing"

func TestRecorderRecordsInOrder(t *testing.T) {
	r := NewRecorder(100, 20)
	if r.Width() != 100 || r.Height() != 20 {
		t.Errorf("size = %dx%d", r.Width(), r.Height())
	}

	p := NewPath()
	p.RoundedRectangle(0, 0, 100, 20, 10)
	r.ClearRect(-1, -1, 102, 22)
	r.Stroke(p, NewSolid(Black), 2)
	r.Fill(p, NewSolid(White))

	cmds := r.Commands()
	if len(cmds) != 3 || r.Len() != 3 {
		t.Fatalf("recorded %d commands, want 3", len(cmds))
	}
	want := []CommandType{CmdClearRect, CmdStroke, CmdFill}
	for i, cmd := range cmds {
		if cmd.Type != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmd.Type, want[i])
		}
	}
	if c := cmds[0]; c.X != -1 || c.Y != -1 || c.W != 102 || c.H != 22 {
		t.Errorf("ClearRect = %+v", c)
	}
	if cmds[1].Width != 2 {
		t.Errorf("Stroke width = %v, want 2", cmds[1].Width)
	}
}

func TestRecorderClonesPaths(t *testing.T) {
	r := NewRecorder(10, 10)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(5, 5)
	r.Fill(p, NewSolid(Black))
	p.LineTo(10, 0)

	if n := len(r.Commands()[0].Path.Elements()); n != 2 {
		t.Errorf("recorded path has %d elements, want 2", n)
	}
}

func TestRecorderCommandsIsCopy(t *testing.T) {
	r := NewRecorder(10, 10)
	r.ClearRect(0, 0, 1, 1)
	cmds := r.Commands()
	cmds[0].X = 42
	if r.Commands()[0].X != 0 {
		t.Error("Commands exposed internal storage")
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder(10, 10)
	r.ClearRect(0, 0, 1, 1)
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len after Reset = %d", r.Len())
	}
}

func TestRecorderPlayback(t *testing.T) {
	r := NewRecorder(10, 10)
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	p.Close()
	r.Fill(p, NewSolid(Black))
	r.ClearRect(0, 0, 5, 10)

	dst := NewRecorder(10, 10)
	r.Playback(dst)
	if dst.Len() != 2 || dst.Commands()[1].Type != CmdClearRect {
		t.Errorf("playback onto recorder = %+v", dst.Commands())
	}

	img := NewImageSurface(10, 10)
	r.Playback(img)
	if got := img.Image().RGBAAt(2, 5); got.A != 0 {
		t.Errorf("cleared half = %+v, want transparent", got)
	}
	if got := img.Image().RGBAAt(7, 5); got.A != 255 {
		t.Errorf("filled half = %+v, want opaque", got)
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdClearRect, "ClearRect"},
		{CmdFill, "Fill"},
		{CmdStroke, "Stroke"},
		{CommandType(9), "CommandType(9)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
