package relief

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Processor displaces the stretches where candidate curves coincide with a part boundary by an offset distance, and closes each candidate again around the displaced stretch.
type Processor struct {
	Kernel Kernel
	Options
}

// NewProcessor returns a processor using the polyline kernel.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		Kernel:  NewPolylineKernel(opts),
		Options: opts,
	}
}

// Validate checks the part and candidates and returns normalized copies. Closed curves are oriented counter clockwise when looking down the plane's normal, and all curves are reversed when the part is a hole. The inputs are not modified.
func (p *Processor) Validate(part *Curve, candidates []*Curve) (*Curve, []*Curve, error) {
	if part.Empty() || part.Length() <= p.Tolerances.Intersection {
		return nil, nil, ErrPartInvalid
	} else if len(candidates) == 0 {
		return nil, nil, ErrNoCandidates
	} else if !p.Kernel.Planar(part) {
		return nil, nil, ErrPartNonPlanar
	}
	for i, c := range candidates {
		if !c.Empty() && !p.Kernel.Planar(c) {
			return nil, nil, fmt.Errorf("%w: candidate %d", ErrCandidatesNonPlanar, i)
		}
	}

	normalized := make([]*Curve, len(candidates))
	for i, c := range candidates {
		normalized[i] = p.orient(c)
	}
	return p.orient(part), normalized, nil
}

func (p *Processor) orient(c *Curve) *Curve {
	if c.Empty() {
		return &Curve{}
	}
	c = c.Copy()
	if c.Closed() && c.Normal().Dot(p.Plane.Normal) < 0.0 {
		c = c.Reverse()
	}
	if p.Reverse {
		c = c.Reverse()
	}
	return c
}

// Candidate runs the pipeline for a single validated candidate: overlap analysis, partition, offset and stitching. It returns ErrNoOverlap if the candidate does not overlap the part.
func (p *Processor) Candidate(part, candidate *Curve) (*Stitched, error) {
	overlap := AnalyzeOverlap(p.Kernel, candidate, part)
	if overlap.Length == 0.0 {
		return nil, ErrNoOverlap
	}

	segs, err := Partition(p.Kernel, candidate, overlap.Events, p.Tolerances)
	if err != nil {
		return nil, err
	}
	offsets, err := OffsetOverlaps(p.Kernel, p.Plane, p.Distance, segs.Overlapping)
	if err != nil {
		return nil, err
	}

	mode := SelectStitchMode(p.Kernel.Linear(candidate), len(offsets), len(segs.Complementary))
	Logger().Debug("stitching",
		"overlap", overlap.Length,
		"events", len(overlap.Events),
		"overlapping", len(segs.Overlapping),
		"complementary", len(segs.Complementary),
		"offsets", len(offsets),
		"mode", mode)
	return Stitch(p.Kernel, mode, segs.Complementary, offsets, p.Tolerances, p.KeepFirstJoin)
}

// Result is the stitched curve of the candidate at Index.
type Result struct {
	Index int
	*Stitched
}

// Report is the outcome of a batch.
type Report struct {
	Results  []Result          // successful candidates in input order
	Skipped  []int             // candidates that do not overlap the part
	Failures []*CandidateError // candidates that overlap but could not be processed
}

// Curves returns the output curves in input order.
func (r *Report) Curves() []*Curve {
	cs := make([]*Curve, 0, len(r.Results))
	for _, result := range r.Results {
		cs = append(cs, result.Curve)
	}
	return cs
}

// Run validates the inputs and processes every candidate. Validation errors abort the batch and return an empty report. Failures of a candidate are collected in the report and do not affect other candidates. With more than one worker, candidates are processed concurrently, the report keeps input order either way.
func (p *Processor) Run(part *Curve, candidates []*Curve) (*Report, error) {
	part, candidates, err := p.Validate(part, candidates)
	if err != nil {
		Logger().Error("validation failed", "err", err)
		return &Report{}, err
	}

	results := make([]*Stitched, len(candidates))
	errs := make([]error, len(candidates))
	if p.Workers <= 1 {
		for i, c := range candidates {
			results[i], errs[i] = p.Candidate(part, c)
		}
	} else {
		g := errgroup.Group{}
		g.SetLimit(p.Workers)
		for i, c := range candidates {
			i, c := i, c
			g.Go(func() error {
				results[i], errs[i] = p.Candidate(part, c)
				return nil
			})
		}
		_ = g.Wait()
	}

	report := &Report{}
	for i := range candidates {
		if errs[i] == nil {
			report.Results = append(report.Results, Result{i, results[i]})
		} else if errors.Is(errs[i], ErrNoOverlap) {
			report.Skipped = append(report.Skipped, i)
		} else {
			Logger().Warn("candidate dropped", "candidate", i, "err", errs[i])
			report.Failures = append(report.Failures, &CandidateError{i, errs[i]})
		}
	}
	return report, nil
}
