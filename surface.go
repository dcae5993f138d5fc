package picker

// Surface is a 2D drawing target.
//
// A Surface is driven by one widget layer at a time. Implementations may
// rasterize immediately (ImageSurface) or record the calls (Recorder).
//
// Surfaces are NOT thread-safe.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// ClearRect resets the pixels inside the rectangle to transparent.
	ClearRect(x, y, w, h float64)

	// Fill fills the path with paint using the non-zero winding rule.
	// Open subpaths are closed implicitly. The path is not modified.
	Fill(path *Path, paint Paint)

	// Stroke strokes the path with paint and the given line width,
	// centered on the path, with round joins and caps. The path is not
	// modified.
	Stroke(path *Path, paint Paint, width float64)
}
