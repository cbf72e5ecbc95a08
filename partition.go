package relief

import "math"

// Segments is the partition of a candidate into the sub-curves that overlap the part and the complementary sub-curves that do not.
type Segments struct {
	Overlapping   []*Curve
	Complementary []*Curve
}

// Partition splits the candidate into overlapping and complementary sub-curves, given the overlap events of the candidate against the part. Contiguous pieces are joined, including complementary pieces that meet at the seam of a closed candidate.
func Partition(k Kernel, candidate *Curve, events []Intersection, tol Tolerances) (Segments, error) {
	intervals := make([]Interval, 0, len(events))
	for _, z := range events {
		if iv := z.A.Normalize(); Epsilon < iv.Width() {
			intervals = append(intervals, iv)
		}
	}
	if len(intervals) == 0 {
		return Segments{}, ErrPartitionEmpty
	}

	pieces := make([]*Curve, 0, len(intervals))
	for _, iv := range intervals {
		piece, err := k.Trim(candidate, iv.Lo, iv.Hi)
		if err != nil {
			// the overlap covers the whole candidate
			Logger().Debug("trim failed, using whole candidate", "interval", iv, "err", err)
			pieces = []*Curve{candidate.Copy()}
			break
		}
		pieces = append(pieces, piece)
	}
	overlapping := k.Join(pieces)

	// joined pieces lose their parameters, recover them from the nearest interval bound
	ts := []float64{}
	for _, c := range overlapping {
		if c.Closed() {
			continue
		}
		ts = append(ts, nearestBound(candidate, intervals, c.Start()))
		ts = append(ts, nearestBound(candidate, intervals, c.End()))
	}

	complementary := []*Curve{}
	for _, piece := range k.Split(candidate, ts...) {
		if onCurves(overlapping, piece.Midpoint(), tol.PointMatch) {
			continue
		}
		complementary = append(complementary, piece)
	}
	if 1 < len(complementary) {
		complementary = k.Join(complementary)
	}
	return Segments{
		Overlapping:   overlapping,
		Complementary: complementary,
	}, nil
}

// nearestBound returns the interval bound whose point on the curve is nearest to P. Ties resolve to the first bound in list order.
func nearestBound(c *Curve, intervals []Interval, p Point) float64 {
	t, dMin := 0.0, math.Inf(1)
	for _, iv := range intervals {
		for _, bound := range [2]float64{iv.Lo, iv.Hi} {
			if d := c.PointAt(bound).Dist(p); d < dMin {
				t, dMin = bound, d
			}
		}
	}
	return t
}

// onCurves returns true if P lies within tolerance of any of the curves.
func onCurves(cs []*Curve, p Point, tolerance float64) bool {
	for _, c := range cs {
		if _, d := c.ClosestPoint(p); d <= tolerance {
			return true
		}
	}
	return false
}
