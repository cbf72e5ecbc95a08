package relief

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestEqual(t *testing.T) {
	test.That(t, Equal(1.0, 1.0+Epsilon/2.0))
	test.That(t, !Equal(1.0, 1.0+2.0*Epsilon))
}

func TestMinmax(t *testing.T) {
	a, b := minmax(2.0, 1.0)
	test.Float(t, a, 1.0)
	test.Float(t, b, 2.0)
	a, b = minmax(1.0, 2.0)
	test.Float(t, a, 1.0)
	test.Float(t, b, 2.0)
}

func TestPoint(t *testing.T) {
	p := Point{3, 4, 0}
	test.T(t, p.Neg(), Point{-3, -4, 0})
	test.T(t, p.Add(Point{1, 1, 1}), Point{4, 5, 1})
	test.T(t, p.Sub(Point{1, 1, 1}), Point{2, 3, -1})
	test.T(t, p.Mul(2.0), Point{6, 8, 0})
	test.T(t, p.Div(2.0), Point{1.5, 2, 0})
	test.Float(t, p.Dot(Point{3, 0, 0}), 9.0)
	test.T(t, Point{1, 0, 0}.Cross(Point{0, 1, 0}), Point{0, 0, 1})
	test.Float(t, p.PerpDot(Point{3, 0, 0}), -12.0)
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Dist(Point{}), 5.0)
	testPoint(t, p.Norm(10.0), Point{6, 8, 0})
	testPoint(t, p.Norm(-5.0), Point{-3, -4, 0})
	test.T(t, Point{}.Norm(1.0), Point{})
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2, 0})
	test.That(t, Point{}.IsZero())
	test.That(t, p.Equals(Point{3, 4, Epsilon / 2.0}))
	test.String(t, p.String(), "(3,4,0)")
}

func TestClosestOnSegment(t *testing.T) {
	a, b := Point{0, 0, 0}, Point{10, 0, 0}
	test.Float(t, closestOnSegment(Point{5, 5, 0}, a, b), 0.5)
	test.Float(t, closestOnSegment(Point{-5, 5, 0}, a, b), 0.0)
	test.Float(t, closestOnSegment(Point{15, 5, 0}, a, b), 1.0)
	test.Float(t, closestOnSegment(Point{15, 5, 0}, a, a), 0.0)
}

func TestDistToLine(t *testing.T) {
	a, b := Point{0, 0, 0}, Point{10, 0, 0}
	test.Float(t, distToLine(Point{15, 5, 0}, a, b), 5.0)
	test.Float(t, distToLine(Point{5, 0, 3}, a, b), 3.0)
	test.Float(t, distToLine(Point{3, 4, 0}, a, a), 5.0)
}

func TestBounds(t *testing.T) {
	r := Bounds(curveXY(0, 0, 10, 5), nil, curveXY(-5, 2, 3, 20))
	test.T(t, r, Rect{-5, 0, 10, 20})
	test.Float(t, r.W(), 15.0)
	test.Float(t, r.H(), 20.0)
	test.T(t, r.Expand(1.0), Rect{-6, -1, 11, 21})
	test.T(t, Bounds(), Rect{})
	test.That(t, !math.IsInf(Bounds(nil).W(), 0))
}
