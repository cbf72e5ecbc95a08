package relief

import "fmt"

// StitchMode selects how a candidate's pieces are stitched back together. It is derived from the pieces of each candidate.
type StitchMode int

// see StitchMode
const (
	SingleLinearOverlap    StitchMode = iota // linear candidate, the offset is the result
	SingleNonlinearOverlap                   // one offset and one complementary sub-curve, closed by two bridges
	MultiOverlap                             // bridges between nearest end points of all pieces
)

func (v StitchMode) String() string {
	switch v {
	case SingleLinearOverlap:
		return "SingleLinearOverlap"
	case SingleNonlinearOverlap:
		return "SingleNonlinearOverlap"
	case MultiOverlap:
		return "MultiOverlap"
	}
	return fmt.Sprintf("StitchMode(%d)", int(v))
}

// SelectStitchMode returns the stitch mode for a candidate from whether it is linear and from its number of offset and complementary sub-curves.
func SelectStitchMode(linear bool, offsets, complementary int) StitchMode {
	if offsets == 1 && linear {
		return SingleLinearOverlap
	} else if offsets == 1 && complementary == 1 {
		return SingleNonlinearOverlap
	}
	return MultiOverlap
}

// Stitched is the result of stitching a single candidate.
type Stitched struct {
	Curve   *Curve
	Bridges []*Curve // straight bridges inserted between pieces
	Mode    StitchMode
}

// Stitch reassembles the complementary and offset sub-curves of a candidate into a single closed curve, inserting straight bridges between nearest end points. Bridges shorter than the intersection tolerance are left out as the pieces already touch. If joining results in more than one curve it fails with ErrJoinAmbiguous, unless keepFirst is set in which case the first curve is kept. Except for SingleLinearOverlap, a result that is not closed fails with ErrClosureFailed. For SingleNonlinearOverlap the offset is traversed from the end nearest to the end of the complementary curve.
func Stitch(k Kernel, mode StitchMode, complementary, offsets []*Curve, tol Tolerances, keepFirst bool) (*Stitched, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: no offset segments", ErrClosureFailed)
	}

	var bridges []*Curve
	pieces := []*Curve{}
	switch mode {
	case SingleLinearOverlap:
		return &Stitched{
			Curve: offsets[0],
			Mode:  mode,
		}, nil
	case SingleNonlinearOverlap:
		if len(complementary) != 1 || len(offsets) != 1 {
			return nil, fmt.Errorf("%w: %v needs one complementary and one offset segment", ErrClosureFailed, mode)
		}
		comp, off := complementary[0], offsets[0]
		if comp.End().Dist(off.End()) < comp.End().Dist(off.Start()) {
			off = off.Reverse()
		}
		bridges = appendBridge(bridges, comp.End(), off.Start(), tol.Intersection)
		bridges = appendBridge(bridges, off.End(), comp.Start(), tol.Intersection)
		pieces = append(pieces, comp, off)
	default:
		bridges = nearestBridges(complementary, offsets, tol.Intersection)
		pieces = append(pieces, complementary...)
		pieces = append(pieces, offsets...)
	}
	pieces = append(pieces, bridges...)

	joined := k.Join(pieces)
	if len(joined) == 0 {
		return nil, fmt.Errorf("%w: nothing joined", ErrClosureFailed)
	} else if 1 < len(joined) {
		if !keepFirst {
			return nil, fmt.Errorf("%w: %d curves", ErrJoinAmbiguous, len(joined))
		}
		Logger().Warn("ambiguous join, keeping first curve", "curves", len(joined))
	}

	c := joined[0]
	if c.Len() < 2 || tol.Intersection < c.Start().Dist(c.End()) {
		return nil, fmt.Errorf("%w: gap of %g", ErrClosureFailed, c.Start().Dist(c.End()))
	}
	return &Stitched{
		Curve:   c,
		Bridges: bridges,
		Mode:    mode,
	}, nil
}

// nearestBridges connects each end point of each open offset sub-curve to the nearest unused end point of the complementary sub-curves. Ties resolve to the first end point in list order.
func nearestBridges(complementary, offsets []*Curve, tolerance float64) []*Curve {
	type endpoint struct {
		p    Point
		used bool
	}

	ends := []endpoint{}
	for _, c := range complementary {
		if !c.Closed() {
			ends = append(ends, endpoint{p: c.Start()}, endpoint{p: c.End()})
		}
	}

	bridges := []*Curve{}
	for _, off := range offsets {
		if off.Closed() {
			continue
		}
		for _, p := range [2]Point{off.Start(), off.End()} {
			best := -1
			for i, end := range ends {
				if !end.used && (best == -1 || p.Dist(end.p) < p.Dist(ends[best].p)) {
					best = i
				}
			}
			if best == -1 {
				continue
			}
			ends[best].used = true
			bridges = appendBridge(bridges, p, ends[best].p, tolerance)
		}
	}
	return bridges
}

// appendBridge appends a straight bridge from A to B unless they already touch.
func appendBridge(bridges []*Curve, a, b Point, tolerance float64) []*Curve {
	if a.Dist(b) <= tolerance {
		return bridges
	}
	return append(bridges, Line(a, b))
}
