package relief

import "fmt"

// OffsetOverlaps offsets each overlapping sub-curve by the signed distance d within the plane and joins the pieces of each sub-curve again. A distance of zero returns the sub-curves unchanged. Any failure to offset fails the candidate with ErrOffsetFailed.
func OffsetOverlaps(k Kernel, plane Plane, d float64, overlapping []*Curve) ([]*Curve, error) {
	if d == 0.0 {
		offsets := make([]*Curve, len(overlapping))
		for i, c := range overlapping {
			offsets[i] = c.Copy()
		}
		return offsets, nil
	}

	offsets := []*Curve{}
	for i, c := range overlapping {
		pieces, err := k.Offset(c, plane, d)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", ErrOffsetFailed, i, err)
		} else if len(pieces) == 0 {
			return nil, fmt.Errorf("%w: segment %d: no result", ErrOffsetFailed, i)
		}
		offsets = append(offsets, k.Join(pieces)...)
	}
	return offsets, nil
}
