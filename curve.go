package relief

import (
	"math"
	"strings"
)

// Curve is a polyline through a list of points in 3D space. It is parametrized over the domain [0,n] with n the number of segments, where parameter t in [i,i+1] lies on segment i. If the last coordinate equals the first coordinate, the curve is closed.
//
// Curves are treated as immutable values: all operations return new curves. Add and Close are meant for building a curve only.
type Curve struct {
	coords []Point
}

// NewCurve returns a curve through the given points.
func NewCurve(coords ...Point) *Curve {
	return &Curve{append([]Point{}, coords...)}
}

// Line returns a straight curve between two points.
func Line(a, b Point) *Curve {
	return &Curve{[]Point{a, b}}
}

// Add adds a new point to the curve.
func (c *Curve) Add(x, y, z float64) *Curve {
	c.coords = append(c.coords, Point{x, y, z})
	return c
}

// Close adds a new point equal to the first, closing the curve.
func (c *Curve) Close() *Curve {
	if 0 < len(c.coords) && !c.Closed() {
		c.coords = append(c.coords, c.coords[0])
	}
	return c
}

// Empty returns true if the curve has no segments.
func (c *Curve) Empty() bool {
	return c == nil || len(c.coords) < 2
}

// Len returns the number of segments.
func (c *Curve) Len() int {
	if c.Empty() {
		return 0
	}
	return len(c.coords) - 1
}

// Domain returns the parameter domain of the curve.
func (c *Curve) Domain() (float64, float64) {
	return 0.0, float64(c.Len())
}

// Coords returns a copy of the coordinates of the curve.
func (c *Curve) Coords() []Point {
	return append([]Point{}, c.coords...)
}

// Copy returns a deep copy of the curve.
func (c *Curve) Copy() *Curve {
	return &Curve{c.Coords()}
}

// Closed returns true if the last point coincides with the first.
func (c *Curve) Closed() bool {
	return 2 < len(c.coords) && c.coords[0].Equals(c.coords[len(c.coords)-1])
}

// Start returns the start point of the curve.
func (c *Curve) Start() Point {
	if len(c.coords) == 0 {
		return Point{}
	}
	return c.coords[0]
}

// End returns the end point of the curve.
func (c *Curve) End() Point {
	if len(c.coords) == 0 {
		return Point{}
	}
	return c.coords[len(c.coords)-1]
}

// segment splits parameter t into a segment index and the parameter within that segment. The parameter is clamped to the domain.
func (c *Curve) segment(t float64) (int, float64) {
	n := c.Len()
	if t <= 0.0 {
		return 0, 0.0
	} else if float64(n) <= t {
		return n - 1, 1.0
	}
	i := int(math.Floor(t))
	return i, t - float64(i)
}

// PointAt returns the point at parameter t.
func (c *Curve) PointAt(t float64) Point {
	if c.Empty() {
		return c.Start()
	}
	i, f := c.segment(t)
	return c.coords[i].Interpolate(c.coords[i+1], f)
}

// Length returns the arc length of the curve.
func (c *Curve) Length() float64 {
	l := 0.0
	for i := 1; i < len(c.coords); i++ {
		l += c.coords[i-1].Dist(c.coords[i])
	}
	return l
}

// LengthBetween returns the arc length of the curve between parameters t0 and t1, in either order.
func (c *Curve) LengthBetween(t0, t1 float64) float64 {
	if c.Empty() {
		return 0.0
	}
	t0, t1 = minmax(t0, t1)
	i0, f0 := c.segment(t0)
	i1, f1 := c.segment(t1)
	if i0 == i1 {
		return (f1 - f0) * c.coords[i0].Dist(c.coords[i0+1])
	}

	l := (1.0 - f0) * c.coords[i0].Dist(c.coords[i0+1])
	for i := i0 + 1; i < i1; i++ {
		l += c.coords[i].Dist(c.coords[i+1])
	}
	l += f1 * c.coords[i1].Dist(c.coords[i1+1])
	return l
}

// PointAtLength returns the point at arc length s from the start of the curve.
func (c *Curve) PointAtLength(s float64) Point {
	if c.Empty() {
		return c.Start()
	}
	for i := 1; i < len(c.coords); i++ {
		d := c.coords[i-1].Dist(c.coords[i])
		if s <= d {
			if d == 0.0 {
				return c.coords[i-1]
			}
			return c.coords[i-1].Interpolate(c.coords[i], s/d)
		}
		s -= d
	}
	return c.End()
}

// Midpoint returns the point halfway along the curve by arc length.
func (c *Curve) Midpoint() Point {
	return c.PointAtLength(c.Length() / 2.0)
}

// ClosestPoint returns the parameter of the point on the curve closest to P and its distance.
func (c *Curve) ClosestPoint(p Point) (float64, float64) {
	if c.Empty() {
		return 0.0, p.Dist(c.Start())
	}
	tMin, dMin := 0.0, math.Inf(1)
	for i := 0; i+1 < len(c.coords); i++ {
		f := closestOnSegment(p, c.coords[i], c.coords[i+1])
		if d := p.Dist(c.coords[i].Interpolate(c.coords[i+1], f)); d < dMin {
			tMin, dMin = float64(i)+f, d
		}
	}
	return tMin, dMin
}

// Reverse returns a new curve that traverses the same points in the opposite direction.
func (c *Curve) Reverse() *Curve {
	coords := make([]Point, len(c.coords))
	for i, coord := range c.coords {
		coords[len(coords)-1-i] = coord
	}
	return &Curve{coords}
}

// Normal returns the area vector of the curve by Newell's method, treating the curve as closed. Its length is twice the enclosed area and its direction follows the right-hand rule, so that a counter clockwise loop in the XY plane points towards +Z.
func (c *Curve) Normal() Point {
	n := Point{}
	for i := 0; i < len(c.coords); i++ {
		a, b := c.coords[i], c.coords[(i+1)%len(c.coords)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// Linear returns true if the curve is open and all its points lie within tolerance of the line between its start and end point.
func (c *Curve) Linear(tolerance float64) bool {
	if c.Empty() || c.Closed() {
		return false
	}
	a, b := c.Start(), c.End()
	if a.Dist(b) <= tolerance {
		return false
	}
	for _, coord := range c.coords[1 : len(c.coords)-1] {
		if tolerance < distToLine(coord, a, b) {
			return false
		}
	}
	return true
}

// Planar returns true if all points of the curve lie within tolerance of a single plane. Curves whose points are collinear are planar.
func (c *Curve) Planar(tolerance float64) bool {
	if len(c.coords) < 4 {
		return true
	}

	// span the plane by the point furthest from the start, and the point furthest from that line
	o := c.coords[0]
	a, dMax := o, 0.0
	for _, coord := range c.coords[1:] {
		if d := o.Dist(coord); dMax < d {
			a, dMax = coord, d
		}
	}
	if dMax <= tolerance {
		return true
	}
	b, dMax := o, 0.0
	for _, coord := range c.coords[1:] {
		if d := distToLine(coord, o, a); dMax < d {
			b, dMax = coord, d
		}
	}
	if dMax <= tolerance {
		return true
	}

	n := a.Sub(o).Cross(b.Sub(o)).Norm(1.0)
	for _, coord := range c.coords {
		if tolerance < math.Abs(coord.Sub(o).Dot(n)) {
			return false
		}
	}
	return true
}

// String returns a compact representation of the curve, such as "(0,0,0) (1,0,0)".
func (c *Curve) String() string {
	sb := strings.Builder{}
	for i, coord := range c.coords {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(coord.String())
	}
	return sb.String()
}
