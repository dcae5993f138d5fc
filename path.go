package picker

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path. Arcs are stored as cubic Bezier segments.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point. Without a current point it behaves
// like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	if !p.HasCurrentPoint() {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians),
// in the direction of increasing angle. If the path already has a current
// point, a straight line joins it to the start of the arc.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}
	p.arc(cx, cy, r, angle1, angle2-angle1)
}

// ArcTo adds a tangent arc with radius r between the current point, the
// corner (x1, y1) and the point (x2, y2), the way the HTML canvas arcTo
// does: a line runs to the first tangent point and the arc ends at the
// second one. Degenerate input (no current point, zero radius, collinear
// points) adds a line to (x1, y1) instead.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(x1, y1)
	}
	p0 := p.current
	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)

	v1 := p0.Sub(p1)
	v2 := p2.Sub(p1)
	if r <= 0 || v1.Length() == 0 || v2.Length() == 0 || math.Abs(v1.Normalize().Cross(v2.Normalize())) < 1e-12 {
		p.LineTo(x1, y1)
		return
	}

	u1 := v1.Normalize()
	u2 := v2.Normalize()
	half := math.Acos(math.Max(-1, math.Min(1, u1.Dot(u2)))) / 2
	dist := r / math.Tan(half)

	t1 := p1.Add(u1.Mul(dist))
	center := p1.Add(u1.Add(u2).Normalize().Mul(r / math.Sin(half)))

	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	t2 := p1.Add(u2.Mul(dist))
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)

	sweep := a2 - a1
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}

	p.LineTo(t1.X, t1.Y)
	p.arc(center.X, center.Y, r, a1, sweep)
}

// arc adds an arc starting at angle a1 and sweeping by sweep radians.
// The sweep may be negative.
func (p *Path) arc(cx, cy, r, a1, sweep float64) {
	start := Pt(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	switch {
	case !p.HasCurrentPoint():
		p.MoveTo(start.X, start.Y)
	case start.Sub(p.current).Length() > 1e-9:
		p.LineTo(start.X, start.Y)
	}
	if sweep == 0 || r == 0 {
		return
	}

	// Maximum 90 degrees per segment
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil(math.Abs(sweep)/maxAngle - 1e-9))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := sweep / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		s1 := a1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, s1, s1+angleStep)
	}
}

// arcSegment adds a single arc segment (at most 90 degrees) as a cubic
// Bezier curve. The current point must be the start of the segment.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	tan := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*tan*tan) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// RoundedRectangle adds a rectangle with rounded corners, built from four
// ArcTo corners starting at the top edge. The radius is not clamped; a
// radius larger than half the width or height yields a malformed shape.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	x2, y2 := x+w, y+h
	p.MoveTo(x+r, y)
	p.ArcTo(x2, y, x2, y2, r)
	p.ArcTo(x2, y2, x, y2, r)
	p.ArcTo(x, y2, x, y, r)
	p.ArcTo(x, y, x2, y, r)
	p.Close()
}

// Circle adds a full circle to the path as a closed subpath.
func (p *Path) Circle(cx, cy, r float64) {
	p.MoveTo(cx+r, cy)
	p.arc(cx, cy, r, 0, 2*math.Pi)
	p.Close()
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Bounds returns the bounding box of all points of the path, control
// points included. ok is false for an empty path.
func (p *Path) Bounds() (minPt, maxPt Point, ok bool) {
	first := true
	add := func(pt Point) {
		if first {
			minPt, maxPt, first = pt, pt, false
			return
		}
		minPt.X = math.Min(minPt.X, pt.X)
		minPt.Y = math.Min(minPt.Y, pt.Y)
		maxPt.X = math.Max(maxPt.X, pt.X)
		maxPt.Y = math.Max(maxPt.Y, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return minPt, maxPt, !first
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines, approximating curves with
// line segments no longer than roughly tolerance pixels of deviation.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out   []Polyline
		pts   []Point
		start Point
	)
	flush := func(closed bool) {
		if len(pts) >= 2 {
			out = append(out, Polyline{Points: pts, Closed: closed})
		}
		pts = nil
	}
	last := func() Point {
		if len(pts) == 0 {
			pts = append(pts, start)
		}
		return pts[len(pts)-1]
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			start = e.Point
			pts = append(pts, e.Point)
		case LineTo:
			last()
			pts = append(pts, e.Point)
		case CubicTo:
			p0 := last()
			n := cubicSteps(p0, e, tolerance)
			for i := 1; i <= n; i++ {
				pts = append(pts, cubicAt(p0, e, float64(i)/float64(n)))
			}
		case Close:
			flush(true)
		}
	}
	flush(false)
	return out
}

// cubicSteps picks the number of line segments for a curve from the length
// of its control polygon.
func cubicSteps(p0 Point, c CubicTo, tolerance float64) int {
	length := c.Control1.Sub(p0).Length() +
		c.Control2.Sub(c.Control1).Length() +
		c.Point.Sub(c.Control2).Length()
	n := int(math.Ceil(math.Sqrt(length / tolerance)))
	if n < 1 {
		return 1
	}
	if n > 100 {
		return 100
	}
	return n
}

func cubicAt(p0 Point, c CubicTo, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*p0.X + b*c.Control1.X + d*c.Control2.X + e*c.Point.X,
		Y: a*p0.Y + b*c.Control1.Y + d*c.Control2.Y + e*c.Point.Y,
	}
}
