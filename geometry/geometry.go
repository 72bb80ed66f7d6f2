package geometry

import "math"

// epsilon is the shared floating tolerance for containment and
// intersection decisions.
const epsilon = 1e-9

// Point is a position in the plane (screen coordinates, Y grows down).
type Point struct {
	X float64
	Y float64
}

// Segment is the straight line between two endpoints.
type Segment struct {
	A Point
	B Point
}

// Triangle is a triple of corner points.
type Triangle [3]Point

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// NormalizeAngle maps deg into [0,360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

// Angle returns the direction from one point toward another in the truss
// convention: 0° is up, angles grow clockwise, result in [0,360).
func Angle(from, to Point) float64 {
	dx, dy := to.X-from.X, to.Y-from.Y

	return NormalizeAngle(90 - math.Atan2(-dy, dx)*180/math.Pi)
}

// Direction returns the unit vector for angleDeg; it is the exact inverse
// of Angle: Angle(p, p+Direction(a)) == a for any p.
func Direction(angleDeg float64) (dx, dy float64) {
	rad := angleDeg * math.Pi / 180

	return math.Sin(rad), -math.Cos(rad)
}

// RoundTo45 snaps angleDeg to the nearest 45° bucket, normalized [0,360).
func RoundTo45(angleDeg float64) float64 {
	return NormalizeAngle(math.Round(angleDeg/45) * 45)
}

// Rotate turns p around center by angleDeg (clockwise on screen, following
// the package angle convention).
func Rotate(p, center Point, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	dx, dy := p.X-center.X, p.Y-center.Y

	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// DistanceToSegment returns the shortest distance from p to any point on s,
// including its endpoints.
func DistanceToSegment(p Point, s Segment) float64 {
	// 1. Degenerate segment: plain point distance.
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, s.A)
	}

	// 2. Project p onto the segment's line, clamped to [0,1].
	t := ((p.X-s.A.X)*dx + (p.Y-s.A.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	// 3. Distance to the clamped projection.
	return Distance(p, Point{X: s.A.X + t*dx, Y: s.A.Y + t*dy})
}

// SegmentsIntersect reports whether a and b cross in their strict
// interiors. Touching at a shared endpoint, merely overlapping collinearly,
// or a degenerate (zero-length) segment never count as an intersection.
func SegmentsIntersect(a, b Segment) bool {
	// 1. Denominator of the parametric line/line solution. Zero means the
	//    segments are parallel, collinear, or degenerate: no strict crossing.
	den := (a.A.X-a.B.X)*(b.A.Y-b.B.Y) - (a.A.Y-a.B.Y)*(b.A.X-b.B.X)
	if math.Abs(den) < epsilon {
		return false
	}

	// 2. Parameters along each segment; a strict interior crossing needs
	//    both strictly inside (0,1), which excludes shared endpoints.
	t := ((a.A.X-b.A.X)*(b.A.Y-b.B.Y) - (a.A.Y-b.A.Y)*(b.A.X-b.B.X)) / den
	u := ((a.A.X-b.A.X)*(a.A.Y-a.B.Y) - (a.A.Y-b.A.Y)*(a.A.X-a.B.X)) / den

	return t > epsilon && t < 1-epsilon && u > epsilon && u < 1-epsilon
}

// Barycentric returns the barycentric coordinates of p with respect to t.
// The three results sum to 1 for any non-degenerate triangle; a degenerate
// triangle yields (-1,-1,-1), which no containment test accepts.
func Barycentric(p Point, t Triangle) (l1, l2, l3 float64) {
	den := (t[1].Y-t[2].Y)*(t[0].X-t[2].X) + (t[2].X-t[1].X)*(t[0].Y-t[2].Y)
	if math.Abs(den) < epsilon {
		return -1, -1, -1
	}

	l1 = ((t[1].Y-t[2].Y)*(p.X-t[2].X) + (t[2].X-t[1].X)*(p.Y-t[2].Y)) / den
	l2 = ((t[2].Y-t[0].Y)*(p.X-t[2].X) + (t[0].X-t[2].X)*(p.Y-t[2].Y)) / den
	l3 = 1 - l1 - l2

	return l1, l2, l3
}

// InsideTriangle reports whether p lies inside t, edges inclusive within
// floating tolerance.
func InsideTriangle(p Point, t Triangle) bool {
	l1, l2, l3 := Barycentric(p, t)

	return l1 >= -epsilon && l2 >= -epsilon && l3 >= -epsilon
}

// Midpoint returns the arithmetic mean of the polygon's vertices, or the
// zero Point for an empty polygon.
func Midpoint(polygon []Point) Point {
	if len(polygon) == 0 {
		return Point{}
	}

	var sx, sy float64
	for _, p := range polygon {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(polygon))

	return Point{X: sx / n, Y: sy / n}
}
