package relief

import (
	"fmt"
	"math"
	"sort"
)

// Interval is a parameter interval on a curve. Bounds may come in either order, see Normalize.
type Interval struct {
	Lo, Hi float64
}

// Normalize returns the interval with Lo <= Hi.
func (iv Interval) Normalize() Interval {
	iv.Lo, iv.Hi = minmax(iv.Lo, iv.Hi)
	return iv
}

// Width returns the absolute width of the interval.
func (iv Interval) Width() float64 {
	return math.Abs(iv.Hi - iv.Lo)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g,%g]", iv.Lo, iv.Hi)
}

// IntersectionKind tags an intersection as a single point or an overlapping stretch.
type IntersectionKind int

// see IntersectionKind
const (
	PointIntersection IntersectionKind = iota
	OverlapIntersection
)

func (v IntersectionKind) String() string {
	switch v {
	case PointIntersection:
		return "Point"
	case OverlapIntersection:
		return "Overlap"
	}
	return fmt.Sprintf("IntersectionKind(%d)", int(v))
}

// Intersection is an intersection event between curves A and B. For point events the intervals are degenerate, with Lo == Hi. For overlap events A holds the coinciding stretch in the parametrization of curve A, and B the same stretch in the parametrization of curve B, in corresponding order so that B.Lo may exceed B.Hi.
type Intersection struct {
	Kind           IntersectionKind
	PointA, PointB Point // start of the event on A and B
	A, B           Interval
}

// Overlap returns true for overlap events.
func (z Intersection) Overlap() bool {
	return z.Kind == OverlapIntersection
}

func (z Intersection) String() string {
	return fmt.Sprintf("%v A=%v B=%v", z.Kind, z.A, z.B)
}

// Intersections returns the intersection events between curves A and B, sorted along A. Segments that come within tolerance of each other intersect at a point, segments that are collinear within overlapTolerance and coincide over more than tolerance overlap.
func Intersections(a, b *Curve, tolerance, overlapTolerance float64) []Intersection {
	zs := []Intersection{}
	if a.Empty() || b.Empty() {
		return zs
	}
	for i := 0; i+1 < len(a.coords); i++ {
		for j := 0; j+1 < len(b.coords); j++ {
			zs = intersectionSegment(zs, i, a.coords[i], a.coords[i+1], j, b.coords[j], b.coords[j+1], tolerance, overlapTolerance)
		}
	}
	sort.SliceStable(zs, func(i, j int) bool {
		if zs[i].A.Lo != zs[j].A.Lo {
			return zs[i].A.Lo < zs[j].A.Lo
		}
		return zs[j].Kind < zs[i].Kind // overlaps first
	})
	return dedupPointIntersections(zs, tolerance)
}

// intersectionSegment appends the intersection between segment i (A0A1) of curve A and segment j (B0B1) of curve B.
func intersectionSegment(zs []Intersection, i int, a0, a1 Point, j int, b0, b1 Point, tolerance, overlapTolerance float64) []Intersection {
	da, db := a1.Sub(a0), b1.Sub(b0)
	la, lb := da.Length(), db.Length()
	if la == 0.0 || lb == 0.0 {
		return zs
	}

	if distToLine(b0, a0, a1) <= overlapTolerance && distToLine(b1, a0, a1) <= overlapTolerance &&
		distToLine(a0, b0, b1) <= overlapTolerance && distToLine(a1, b0, b1) <= overlapTolerance {
		// collinear
		s0 := b0.Sub(a0).Dot(da) / (la * la)
		s1 := b1.Sub(a0).Dot(da) / (la * la)
		s0, s1 = minmax(s0, s1)
		lo, hi := math.Max(0.0, s0), math.Min(1.0, s1)
		if hi < lo {
			return zs
		}
		plo, phi := a0.Interpolate(a1, lo), a0.Interpolate(a1, hi)
		ulo, uhi := closestOnSegment(plo, b0, b1), closestOnSegment(phi, b0, b1)
		if (hi-lo)*la <= tolerance {
			return append(zs, Intersection{
				Kind:   PointIntersection,
				PointA: plo,
				PointB: b0.Interpolate(b1, ulo),
				A:      Interval{float64(i) + lo, float64(i) + lo},
				B:      Interval{float64(j) + ulo, float64(j) + ulo},
			})
		}
		return append(zs, Intersection{
			Kind:   OverlapIntersection,
			PointA: plo,
			PointB: b0.Interpolate(b1, ulo),
			A:      Interval{float64(i) + lo, float64(i) + hi},
			B:      Interval{float64(j) + ulo, float64(j) + uhi},
		})
	}

	s, u := closestSegmentSegment(a0, a1, b0, b1)
	pa, pb := a0.Interpolate(a1, s), b0.Interpolate(b1, u)
	if pa.Dist(pb) <= tolerance {
		zs = append(zs, Intersection{
			Kind:   PointIntersection,
			PointA: pa,
			PointB: pb,
			A:      Interval{float64(i) + s, float64(i) + s},
			B:      Interval{float64(j) + u, float64(j) + u},
		})
	}
	return zs
}

// closestSegmentSegment returns the parameters in [0,1] of the closest points between segments A0A1 and B0B1.
// see Real-Time Collision Detection by C. Ericson, section 5.1.9
func closestSegmentSegment(a0, a1, b0, b1 Point) (float64, float64) {
	d1, d2 := a1.Sub(a0), b1.Sub(b0)
	r := a0.Sub(b0)
	a, e := d1.Dot(d1), d2.Dot(d2)
	f := d2.Dot(r)
	clamp := func(x float64) float64 { return math.Max(0.0, math.Min(1.0, x)) }

	c := d1.Dot(r)
	b := d1.Dot(d2)
	denom := a*e - b*b
	s := 0.0
	if Epsilon < denom {
		s = clamp((b*f - c*e) / denom)
	}
	t := (b*s + f) / e
	if t < 0.0 {
		t = 0.0
		s = clamp(-c / a)
	} else if 1.0 < t {
		t = 1.0
		s = clamp((b - c) / a)
	}
	return s, t
}

// dedupPointIntersections removes point events that coincide with a previous event, as happens when curves touch at shared vertices or where an overlap ends.
func dedupPointIntersections(zs []Intersection, tolerance float64) []Intersection {
	out := zs[:0]
	for _, z := range zs {
		dup := false
		if z.Kind == PointIntersection {
			for _, o := range out {
				if o.Kind == PointIntersection && o.PointA.Dist(z.PointA) <= tolerance ||
					o.Kind == OverlapIntersection && o.A.Lo-1e-9 <= z.A.Lo && z.A.Lo <= o.A.Hi+1e-9 {
					dup = true
					break
				}
			}
		}
		if !dup {
			out = append(out, z)
		}
	}
	return out
}
