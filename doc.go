// Package picker provides the drawing primitives shared by the color-picker
// widgets: HSV color state, paths, paints, gradients and drawing surfaces.
//
// # Overview
//
// Widgets live in sub-packages and draw through the [Surface] interface:
//
//	main := picker.NewImageSurface(320, 40)
//	over := picker.NewImageSurface(320, 40)
//	s, err := slider.New(slider.Layers{Main: main, Over: over}, slider.Options{
//	    X: 10, Y: 10, W: 300, H: 20, R: 10,
//	    Border: slider.Border{Width: 1, Color: "#000"},
//	})
//
// Pointer input is mapped to a [Patch], merged into a [Color], and the
// resulting [ChangeSet] drives selective redraw:
//
//	changes := color.Set(s.Input(x, y))
//	_ = s.Update(color.HSV(), changes)
//
// # Surfaces
//
// [ImageSurface] rasterizes into an *image.RGBA. [Recorder] captures the
// drawing commands instead, which is what the widget tests inspect.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians unless a function says otherwise
//
// # Concurrency
//
// Widgets, surfaces and scene nodes are not safe for concurrent use. They are
// meant to be driven from a single UI goroutine. Only [SetLogger] and
// [Logger] may be called from any goroutine.
package picker
