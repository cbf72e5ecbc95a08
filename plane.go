package relief

import (
	"errors"
	"fmt"
	"math"
)

// Plane is a 2D frame in 3D space, given by an origin and an orthonormal right-handed basis with XAxis x YAxis = Normal. Offset displacements are measured in this frame.
type Plane struct {
	Origin       Point
	XAxis, YAxis Point
	Normal       Point
}

// WorldXY is the default working plane.
var WorldXY = Plane{
	Origin: Point{0.0, 0.0, 0.0},
	XAxis:  Point{1.0, 0.0, 0.0},
	YAxis:  Point{0.0, 1.0, 0.0},
	Normal: Point{0.0, 0.0, 1.0},
}

// ErrZeroNormal is returned when a plane is constructed from a zero-length normal.
var ErrZeroNormal = errors.New("plane normal has zero length")

// NewPlane returns a plane through origin with the given normal. The X axis is chosen such that the world XY plane maps onto WorldXY.
func NewPlane(origin, normal Point) (Plane, error) {
	if Equal(normal.Length(), 0.0) {
		return Plane{}, ErrZeroNormal
	}
	n := normal.Norm(1.0)

	a := Point{1.0, 0.0, 0.0}
	if 0.9 < math.Abs(n.X) {
		a = Point{0.0, 1.0, 0.0}
	}
	x := a.Sub(n.Mul(a.Dot(n))).Norm(1.0)
	y := n.Cross(x)
	return Plane{
		Origin: origin,
		XAxis:  x,
		YAxis:  y,
		Normal: n,
	}, nil
}

// ToLocal returns the coordinates of P in the frame of the plane: (u,v) in-plane and w the signed height above it.
func (pl Plane) ToLocal(p Point) Point {
	d := p.Sub(pl.Origin)
	return Point{d.Dot(pl.XAxis), d.Dot(pl.YAxis), d.Dot(pl.Normal)}
}

// FromLocal is the inverse of ToLocal.
func (pl Plane) FromLocal(q Point) Point {
	return pl.Origin.Add(pl.XAxis.Mul(q.X)).Add(pl.YAxis.Mul(q.Y)).Add(pl.Normal.Mul(q.Z))
}

// Valid returns true if the basis of the plane is orthonormal.
func (pl Plane) Valid() bool {
	const tol = 1e-9
	unit := func(v Point) bool { return math.Abs(v.Length()-1.0) < tol }
	return unit(pl.XAxis) && unit(pl.YAxis) && unit(pl.Normal) &&
		math.Abs(pl.XAxis.Dot(pl.YAxis)) < tol &&
		pl.XAxis.Cross(pl.YAxis).Sub(pl.Normal).Length() < tol
}

func (pl Plane) String() string {
	return fmt.Sprintf("Plane{origin=%v normal=%v}", pl.Origin, pl.Normal)
}
