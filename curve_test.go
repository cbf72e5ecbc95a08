package relief

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCurve(t *testing.T) {
	c := (&Curve{}).Add(0, 0, 0).Add(10, 0, 0).Add(10, 10, 0)
	test.T(t, c.Len(), 2)
	test.That(t, !c.Empty())
	test.That(t, !c.Closed())
	test.T(t, c.Start(), Point{0, 0, 0})
	test.T(t, c.End(), Point{10, 10, 0})
	tmin, tmax := c.Domain()
	test.Float(t, tmin, 0.0)
	test.Float(t, tmax, 2.0)
	test.String(t, c.String(), "(0,0,0) (10,0,0) (10,10,0)")

	c.Close()
	test.T(t, c.Len(), 3)
	test.That(t, c.Closed())
	c.Close()
	test.T(t, c.Len(), 3)

	test.That(t, (*Curve)(nil).Empty())
	test.That(t, curveXY(1, 1).Empty())
	test.T(t, curveXY(1, 1).Len(), 0)
	test.That(t, !curveXY(0, 0, 0, 0).Closed()) // needs more than two points
	test.That(t, curveXY(0, 0, 1, 0, 0, 0).Closed())

	coords := []Point{{0, 0, 0}, {1, 0, 0}}
	c = NewCurve(coords...)
	coords[0] = Point{5, 5, 5}
	test.T(t, c.Start(), Point{0, 0, 0})
	c.Coords()[0] = Point{5, 5, 5}
	test.T(t, c.Start(), Point{0, 0, 0})
}

func TestCurvePointAt(t *testing.T) {
	c := curveXY(0, 0, 10, 0, 10, 10)
	testPoint(t, c.PointAt(0.0), Point{0, 0, 0})
	testPoint(t, c.PointAt(0.5), Point{5, 0, 0})
	testPoint(t, c.PointAt(1.0), Point{10, 0, 0})
	testPoint(t, c.PointAt(1.25), Point{10, 2.5, 0})
	testPoint(t, c.PointAt(2.0), Point{10, 10, 0})
	testPoint(t, c.PointAt(-1.0), Point{0, 0, 0})
	testPoint(t, c.PointAt(3.0), Point{10, 10, 0})
}

func TestCurveLength(t *testing.T) {
	c := curveXY(0, 0, 10, 0, 10, 10)
	test.Float(t, c.Length(), 20.0)
	test.Float(t, c.LengthBetween(0.5, 1.5), 10.0)
	test.Float(t, c.LengthBetween(1.5, 0.5), 10.0)
	test.Float(t, c.LengthBetween(0.25, 0.75), 5.0)
	test.Float(t, c.LengthBetween(0.0, 2.0), 20.0)
	test.Float(t, (&Curve{}).LengthBetween(0.0, 1.0), 0.0)

	testPoint(t, c.PointAtLength(5.0), Point{5, 0, 0})
	testPoint(t, c.PointAtLength(15.0), Point{10, 5, 0})
	testPoint(t, c.PointAtLength(25.0), Point{10, 10, 0})
	testPoint(t, c.Midpoint(), Point{10, 0, 0})
	testPoint(t, square(0, 0, 10).Midpoint(), Point{10, 10, 0})
}

func TestCurveClosestPoint(t *testing.T) {
	c := curveXY(0, 0, 10, 0, 10, 10)
	tc, d := c.ClosestPoint(Point{5, 3, 0})
	test.Float(t, tc, 0.5)
	test.Float(t, d, 3.0)
	tc, d = c.ClosestPoint(Point{12, 8, 0})
	test.Float(t, tc, 1.8)
	test.Float(t, d, 2.0)
	tc, d = c.ClosestPoint(Point{-3, -4, 0})
	test.Float(t, tc, 0.0)
	test.Float(t, d, 5.0)
}

func TestCurveReverse(t *testing.T) {
	c := curveXY(0, 0, 10, 0, 10, 10)
	testCoords(t, c.Reverse(), pointsXY(10, 10, 10, 0, 0, 0))
	testCoords(t, c, pointsXY(0, 0, 10, 0, 10, 10))
}

func TestCurveNormal(t *testing.T) {
	testPoint(t, square(0, 0, 10).Normal(), Point{0, 0, 200})
	testPoint(t, square(0, 0, 10).Reverse().Normal(), Point{0, 0, -200})
	testPoint(t, curveXY(0, 0, 10, 0).Normal(), Point{})

	c := NewCurve(Point{0, 0, 0}, Point{0, 10, 0}, Point{0, 10, 10}, Point{0, 0, 10}).Close()
	testPoint(t, c.Normal(), Point{200, 0, 0})
}

func TestCurveLinear(t *testing.T) {
	var tts = []struct {
		c      *Curve
		linear bool
	}{
		{curveXY(0, 0, 10, 0), true},
		{curveXY(0, 0, 5, 0.001, 10, 0), true},
		{curveXY(0, 0, 5, 1, 10, 0), false},
		{curveXY(0, 0, 10, 0, 5, 0, 0, 0), false},
		{square(0, 0, 10), false},
		{curveXY(0, 0), false},
	}
	for i, tt := range tts {
		test.T(t, tt.c.Linear(0.01), tt.linear, i)
	}
}

func TestCurvePlanar(t *testing.T) {
	var tts = []struct {
		c      *Curve
		planar bool
	}{
		{square(0, 0, 10), true},
		{NewCurve(Point{0, 0, 0}, Point{10, 0, 0}, Point{10, 10, 50}, Point{0, 10, 50}).Close(), true},
		{NewCurve(Point{0, 0, 0}, Point{100, 0, 0}, Point{100, 100, 50}, Point{0, 100, 0}).Close(), false},
		{NewCurve(Point{0, 0, 0}, Point{1, 1, 1}, Point{2, 2, 2}, Point{3, 3, 3}), true},
		{curveXY(0, 0, 10, 0, 10, 10), true},
	}
	for i, tt := range tts {
		test.T(t, tt.c.Planar(0.01), tt.planar, i)
	}
}
