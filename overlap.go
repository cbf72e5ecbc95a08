package relief

// Overlap is the result of overlap analysis of a candidate against the part.
type Overlap struct {
	Length float64        // total length of all overlaps, measured on the candidate
	Events []Intersection // overlap events, with A in the domain of the candidate
}

// AnalyzeOverlap returns the overlap events between the candidate and the part. Point events are ignored. A candidate without overlap has a zero Length.
func AnalyzeOverlap(k Kernel, candidate, part *Curve) Overlap {
	overlap := Overlap{}
	for _, z := range k.Intersect(candidate, part) {
		if !z.Overlap() {
			continue
		}
		overlap.Length += candidate.LengthBetween(z.A.Lo, z.A.Hi)
		overlap.Events = append(overlap.Events, z)
	}
	return overlap
}
