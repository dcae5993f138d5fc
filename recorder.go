package picker

import "fmt"

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdClearRect CommandType = iota // Clear a rectangle
	CmdFill                         // Fill a path
	CmdStroke                       // Stroke a path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClearRect: "ClearRect",
	CmdFill:      "Fill",
	CmdStroke:    "Stroke",
}

// String returns the name of the command type.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is one recorded surface call.
type Command struct {
	Type CommandType

	// X, Y, W, H hold the rectangle of a ClearRect.
	X, Y, W, H float64

	// Path and Paint are set for Fill and Stroke. Path is a copy taken
	// when the command was recorded.
	Path  *Path
	Paint Paint

	// Width is the line width of a Stroke.
	Width float64
}

// Recorder is a Surface that records drawing calls instead of rasterizing
// them. Recorded commands can be inspected with Commands or replayed onto
// another surface with Playback.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a Recorder reporting the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 16),
	}
}

// Width returns the recorder width.
func (r *Recorder) Width() int { return r.width }

// Height returns the recorder height.
func (r *Recorder) Height() int { return r.height }

// ClearRect records a ClearRect command.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.commands = append(r.commands, Command{Type: CmdClearRect, X: x, Y: y, W: w, H: h})
}

// Fill records a Fill command.
func (r *Recorder) Fill(path *Path, paint Paint) {
	r.commands = append(r.commands, Command{Type: CmdFill, Path: path.Clone(), Paint: paint})
}

// Stroke records a Stroke command.
func (r *Recorder) Stroke(path *Path, paint Paint, width float64) {
	r.commands = append(r.commands, Command{Type: CmdStroke, Path: path.Clone(), Paint: paint, Width: width})
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays the recorded commands onto dst in order.
func (r *Recorder) Playback(dst Surface) {
	for _, cmd := range r.commands {
		switch cmd.Type {
		case CmdClearRect:
			dst.ClearRect(cmd.X, cmd.Y, cmd.W, cmd.H)
		case CmdFill:
			dst.Fill(cmd.Path, cmd.Paint)
		case CmdStroke:
			dst.Stroke(cmd.Path, cmd.Paint, cmd.Width)
		}
	}
}
