package relief

// Kernel is the geometry kernel that the relief pipeline uses to intersect, offset, cut and join curves. All operations are tolerance-parameterized by the kernel itself and return new curves, never modifying their input.
type Kernel interface {
	// Intersect returns the point and overlap events between curves A and B, sorted along A.
	Intersect(a, b *Curve) []Intersection

	// Offset offsets the curve by a signed distance within the plane. It may return more than one piece if continuity cannot be kept.
	Offset(c *Curve, plane Plane, d float64) ([]*Curve, error)

	// Trim returns the part of the curve between parameters t0 < t1.
	Trim(c *Curve, t0, t1 float64) (*Curve, error)

	// Split splits the curve at the given parameters.
	Split(c *Curve, ts ...float64) []*Curve

	// Join joins curves with coinciding end points, ideally into a single curve.
	Join(cs []*Curve) []*Curve

	// Planar returns true if the curve lies in a plane.
	Planar(c *Curve) bool

	// Linear returns true if the curve is an open, straight curve.
	Linear(c *Curve) bool
}

// PolylineKernel is the Kernel for polyline curves.
type PolylineKernel struct {
	Tolerances
	Joiner Joiner // corner style of offsets, MiterJoiner if nil
}

// NewPolylineKernel returns a polyline kernel with the tolerances and corner style of the options.
func NewPolylineKernel(opts Options) *PolylineKernel {
	return &PolylineKernel{
		Tolerances: opts.Tolerances,
		Joiner:     opts.Corner.Joiner(),
	}
}

func (k *PolylineKernel) Intersect(a, b *Curve) []Intersection {
	return Intersections(a, b, k.Intersection, k.Overlap)
}

func (k *PolylineKernel) Offset(c *Curve, plane Plane, d float64) ([]*Curve, error) {
	jr := k.Joiner
	if jr == nil {
		jr = MiterJoiner
	}
	return c.Offset(plane, d, k.Intersection, jr)
}

func (k *PolylineKernel) Trim(c *Curve, t0, t1 float64) (*Curve, error) {
	return c.Trim(t0, t1)
}

func (k *PolylineKernel) Split(c *Curve, ts ...float64) []*Curve {
	return c.Split(ts...)
}

func (k *PolylineKernel) Join(cs []*Curve) []*Curve {
	return Join(cs, k.Intersection)
}

func (k *PolylineKernel) Planar(c *Curve) bool {
	return c.Planar(k.Intersection)
}

func (k *PolylineKernel) Linear(c *Curve) bool {
	return c.Linear(k.Intersection)
}
