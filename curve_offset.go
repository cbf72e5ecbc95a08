package relief

import (
	"errors"
	"math"
)

var (
	// ErrInvalidDistance is returned when offsetting by a NaN or infinite distance.
	ErrInvalidDistance = errors.New("invalid offset distance")

	// ErrDegenerateCurve is returned when a curve has no extent, e.g. all its points coincide.
	ErrDegenerateCurve = errors.New("degenerate curve")
)

// Joiner implements Join, with q the offset points to append to, pivot the original vertex in plane coordinates, n0 and n1 the displacements of the incoming and outgoing segment, and d the signed offset distance. The length of n0 and n1 is equal to |d|.
type Joiner interface {
	Join([]Point, Point, Point, Point, float64, float64) []Point
}

type JoinerFunc func([]Point, Point, Point, Point, float64, float64) []Point

func (f JoinerFunc) Join(q []Point, pivot, n0, n1 Point, d, tolerance float64) []Point {
	return f(q, pivot, n0, n1, d, tolerance)
}

// MiterJoiner connects two offset segments by extending them until they meet, i.e. a sharp corner.
var MiterJoiner Joiner = JoinerFunc(miterJoiner)

func miterJoiner(q []Point, pivot, n0, n1 Point, d, tolerance float64) []Point {
	cos := n0.Dot(n1) / (d * d)
	return append(q, pivot.Add(n0.Add(n1).Div(1.0+cos)))
}

// BevelJoiner connects two offset segments by a straight chamfer on the outside of a corner.
var BevelJoiner Joiner = JoinerFunc(bevelJoiner)

func bevelJoiner(q []Point, pivot, n0, n1 Point, d, tolerance float64) []Point {
	if !outerCorner(n0, n1, d) {
		return miterJoiner(q, pivot, n0, n1, d, tolerance)
	}
	return append(q, pivot.Add(n0), pivot.Add(n1))
}

// RoundJoiner connects two offset segments by a circular arc around the vertex on the outside of a corner. The arc is flattened within tolerance.
var RoundJoiner Joiner = JoinerFunc(roundJoiner)

func roundJoiner(q []Point, pivot, n0, n1 Point, d, tolerance float64) []Point {
	if !outerCorner(n0, n1, d) {
		return miterJoiner(q, pivot, n0, n1, d, tolerance)
	}

	r := math.Abs(d)
	theta := math.Atan2(n0.PerpDot(n1), n0.Dot(n1))
	dtheta := math.Pi / 2.0
	if tolerance < r {
		dtheta = math.Min(dtheta, 2.0*math.Acos(1.0-tolerance/r))
	}
	n := int(math.Ceil(math.Abs(theta) / dtheta))
	for i := 0; i <= n; i++ {
		phi := theta * float64(i) / float64(n)
		sin, cos := math.Sincos(phi)
		q = append(q, pivot.Add(Point{cos*n0.X - sin*n0.Y, sin*n0.X + cos*n0.Y, 0.0}))
	}
	return q
}

// outerCorner returns true if the offset side lies on the outside of the turn, where the offset segments leave a gap.
func outerCorner(n0, n1 Point, d float64) bool {
	return Epsilon < n0.PerpDot(n1)*d
}

// Offset offsets the curve by a signed distance d within the plane. Positive distances move the curve to its right-hand side when looking down the plane's normal, i.e. outwards for counter clockwise loops. Corners are resolved by the Joiner jr. Each point keeps its height above the plane.
//
// At cusps, where the curve reverses onto itself, the offset is broken into separate pieces.
func (c *Curve) Offset(plane Plane, d float64, tolerance float64, jr Joiner) ([]*Curve, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, ErrInvalidDistance
	}

	closed := c.Closed()
	q := make([]Point, 0, len(c.coords))
	for _, coord := range c.coords {
		p := plane.ToLocal(coord)
		if 0 < len(q) && planarDist(q[len(q)-1], p) <= Epsilon {
			continue
		}
		q = append(q, p)
	}
	if closed && 2 < len(q) && planarDist(q[0], q[len(q)-1]) <= Epsilon {
		q = q[:len(q)-1]
	}
	if len(q) < 2 || closed && len(q) < 3 {
		return nil, ErrDegenerateCurve
	} else if d == 0.0 {
		return []*Curve{c.Copy()}, nil
	}

	nsegs := len(q) - 1
	if closed {
		nsegs = len(q)
	}
	ns := make([]Point, nsegs)
	for i := range ns {
		dir := q[(i+1)%len(q)].Sub(q[i])
		ns[i] = Point{dir.Y, -dir.X, 0.0}.Norm(d)
	}

	pieces := [][]Point{}
	cur := []Point{}
	if !closed {
		cur = append(cur, q[0].Add(ns[0]))
	}
	first, last := 1, len(q)-1
	if closed {
		first, last = 0, len(q)
	}
	for k := first; k < last; k++ {
		n0, n1 := ns[(k-1+nsegs)%nsegs], ns[k]
		if n0.Dot(n1) <= -(1.0-1e-9)*d*d {
			// cusp
			cur = append(cur, q[k].Add(n0))
			pieces = append(pieces, cur)
			cur = []Point{q[k].Add(n1)}
			continue
		}
		cur = jr.Join(cur, q[k], n0, n1, d, tolerance)
	}
	if !closed {
		cur = append(cur, q[len(q)-1].Add(ns[nsegs-1]))
		pieces = append(pieces, cur)
	} else if len(pieces) == 0 {
		cur = append(cur, cur[0])
		pieces = append(pieces, cur)
	} else {
		pieces[0] = append(cur, pieces[0]...)
	}

	cs := make([]*Curve, 0, len(pieces))
	for _, piece := range pieces {
		coords := make([]Point, 0, len(piece))
		for _, p := range piece {
			p = plane.FromLocal(p)
			if 0 < len(coords) && coords[len(coords)-1].Equals(p) {
				continue
			}
			coords = append(coords, p)
		}
		if closed && len(pieces) == 1 && 2 < len(coords) {
			coords[len(coords)-1] = coords[0]
		}
		if 1 < len(coords) {
			cs = append(cs, &Curve{coords})
		}
	}
	if len(cs) == 0 {
		return nil, ErrDegenerateCurve
	}
	return cs, nil
}

// planarDist returns the distance between P and Q in plane coordinates, ignoring their height.
func planarDist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
