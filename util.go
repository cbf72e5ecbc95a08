package relief

import (
	"fmt"
	"math"
)

// Epsilon is the smallest number below which we assume the value to be zero. This is to avoid numerical floating point issues.
var Epsilon = 1e-10

// Tolerance is the maximum deviation from the original Bézier when flattening SVG path data into polylines.
var Tolerance = 0.01

// Equal returns true if a and b are equal within an absolute tolerance of Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// minmax returns a and b in ascending order.
func minmax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 3D space. Curves live in a plane, but that plane need not be the XY plane.
type Point struct {
	X, Y, Z float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0 && p.Z == 0.0
}

// Equals returns true if P and Q are equal within Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y) && Equal(p.Z, q.Z)
}

// Neg negates x, y and z.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Mul multiplies x, y and z by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y, f * p.Z}
}

// Div divides x, y and z by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f, p.Z / f}
}

// Dot returns the dot product between OP and OQ, i.e. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product OP x OQ.
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// PerpDot returns the perp dot product of the XY components of OP and OQ, i.e. zero if aligned and |OP|*|OQ| if perpendicular. This is the cross product in 2D.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Dist returns the distance between P and Q.
func (p Point) Dist(q Point) float64 {
	return q.Sub(p).Length()
}

// Norm normalizes OP to be of given length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if Equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length, p.Z / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t in [0,1], i.e. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y, (1-t)*p.Z + t*q.Z}
}

// String returns the string representation of a point, such as "(x,y,z)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// closestOnSegment returns the parameter in [0,1] of the point on segment AB closest to P.
func closestOnSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0.0 {
		return 0.0
	}
	return math.Max(0.0, math.Min(1.0, p.Sub(a).Dot(ab)/l2))
}

// distToLine returns the distance from P to the infinite line through A and B.
func distToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	l := ab.Length()
	if l == 0.0 {
		return p.Dist(a)
	}
	return p.Sub(a).Cross(ab).Length() / l
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle in the XY plane.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// W returns the width of the rectangle.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height of the rectangle.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// Expand returns the rectangle grown by margin on all sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{r.X0 - margin, r.Y0 - margin, r.X1 + margin, r.Y1 + margin}
}

// Bounds returns the bounding rectangle of the curves projected onto the XY plane.
func Bounds(cs ...*Curve) Rect {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, c := range cs {
		if c == nil {
			continue
		}
		for _, coord := range c.coords {
			r.X0 = math.Min(r.X0, coord.X)
			r.Y0 = math.Min(r.Y0, coord.Y)
			r.X1 = math.Max(r.X1, coord.X)
			r.Y1 = math.Max(r.Y1, coord.Y)
		}
	}
	if r.X1 < r.X0 {
		return Rect{}
	}
	return r
}
