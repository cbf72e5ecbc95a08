package relief

import (
	"errors"
	"sort"
)

var (
	// ErrEmptyInterval is returned when trimming to an interval without extent.
	ErrEmptyInterval = errors.New("empty parameter interval")

	// ErrOutOfDomain is returned when trimming outside of the curve's domain.
	ErrOutOfDomain = errors.New("parameter interval outside of curve domain")

	// ErrFullDomain is returned when a closed curve is trimmed to its complete domain, which leaves nothing to trim.
	ErrFullDomain = errors.New("parameter interval spans the full domain of a closed curve")
)

// Trim returns the part of the curve between parameters t0 and t1, with t0 < t1.
func (c *Curve) Trim(t0, t1 float64) (*Curve, error) {
	if c.Empty() {
		return nil, ErrDegenerateCurve
	}
	tmin, tmax := c.Domain()
	if t1-t0 <= Epsilon {
		return nil, ErrEmptyInterval
	} else if t0 < tmin-Epsilon || tmax+Epsilon < t1 {
		return nil, ErrOutOfDomain
	} else if c.Closed() && t0 <= tmin+Epsilon && tmax-Epsilon <= t1 {
		return nil, ErrFullDomain
	}
	return c.trim(t0, t1), nil
}

// trim cuts out the curve between t0 and t1 without validation.
func (c *Curve) trim(t0, t1 float64) *Curve {
	coords := []Point{c.PointAt(t0)}
	for i := 1; i+1 < len(c.coords); i++ {
		if t0+Epsilon < float64(i) && float64(i) < t1-Epsilon {
			coords = append(coords, c.coords[i])
		}
	}
	coords = append(coords, c.PointAt(t1))
	return &Curve{coords}
}

// Split splits the curve at the given parameters and returns the pieces in order. Parameters at the ends of the domain and duplicates are ignored. A closed curve is split at its seam as well, so that k parameters inside the domain yield k+1 pieces; the first and last piece can be joined again over the seam.
func (c *Curve) Split(ts ...float64) []*Curve {
	if c.Empty() {
		return nil
	}
	tmin, tmax := c.Domain()

	ts = append([]float64{}, ts...)
	sort.Float64s(ts)
	cuts := []float64{tmin}
	for _, t := range ts {
		if t <= tmin+Epsilon || tmax-Epsilon <= t || t <= cuts[len(cuts)-1]+Epsilon {
			continue
		}
		cuts = append(cuts, t)
	}
	cuts = append(cuts, tmax)

	cs := make([]*Curve, 0, len(cuts)-1)
	for i := 1; i < len(cuts); i++ {
		cs = append(cs, c.trim(cuts[i-1], cuts[i]))
	}
	return cs
}

// Join joins curves whose end points coincide within tolerance into as few curves as possible. Curves are reversed where needed. Matching is greedy: the first curve in list order that touches the current chain is attached. A chain whose ends meet is closed exactly and not extended any further.
func Join(cs []*Curve, tolerance float64) []*Curve {
	used := make([]bool, len(cs))
	joined := []*Curve{}
	for i, c := range cs {
		if used[i] {
			continue
		}
		used[i] = true
		if c.Empty() {
			continue
		}

		chain := c.Coords()
		for !closes(chain, tolerance) {
			extended := false
			for j, d := range cs {
				if used[j] || d.Empty() {
					continue
				}

				start, end := chain[0], chain[len(chain)-1]
				if end.Dist(d.Start()) <= tolerance {
					chain = append(chain, d.coords[1:]...)
				} else if end.Dist(d.End()) <= tolerance {
					chain = append(chain, d.Reverse().coords[1:]...)
				} else if start.Dist(d.End()) <= tolerance {
					chain = append(d.Coords()[:d.Len()], chain...)
				} else if start.Dist(d.Start()) <= tolerance {
					chain = append(d.Reverse().coords[:d.Len()], chain...)
				} else {
					continue
				}
				used[j] = true
				extended = true
				break
			}
			if !extended {
				break
			}
		}
		if closes(chain, tolerance) {
			chain[len(chain)-1] = chain[0]
		}
		joined = append(joined, &Curve{chain})
	}
	return joined
}

// closes returns true if the chain of points forms a loop within tolerance.
func closes(chain []Point, tolerance float64) bool {
	return 2 < len(chain) && chain[0].Dist(chain[len(chain)-1]) <= tolerance
}
