package relief

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestProcessor(t *testing.T) {
	part := square(0, 0, 100)

	var tts = []struct {
		name      string
		candidate *Curve
		mode      StitchMode
		bridges   int
		coords    []Point
	}{
		{"edge", curveXY(20, 0, 60, 0, 60, 30, 20, 30).Close(), SingleNonlinearOverlap, 2,
			pointsXY(60, 0, 60, 30, 20, 30, 20, 0, 20, -10, 60, -10, 60, 0)},
		{"clockwise", curveXY(20, 0, 20, 30, 60, 30, 60, 0).Close(), SingleNonlinearOverlap, 2,
			pointsXY(60, 0, 60, 30, 20, 30, 20, 0, 20, -10, 60, -10, 60, 0)},
		{"corner", curveXY(80, 0, 100, 0, 100, 20, 80, 20).Close(), SingleNonlinearOverlap, 2,
			pointsXY(100, 20, 80, 20, 80, 0, 80, -10, 110, -10, 110, 20, 100, 20)},
		{"full edge", curveXY(0, 0, 100, 0, 100, 30, 0, 30).Close(), SingleNonlinearOverlap, 2,
			pointsXY(100, 30, 0, 30, -10, 30, -10, -10, 110, -10, 110, 30, 100, 30)},
		{"strip", curveXY(0, 40, 100, 40, 100, 60, 0, 60).Close(), MultiOverlap, 4,
			pointsXY(0, 40, 100, 40, 110, 40, 110, 60, 100, 60, 0, 60, -10, 60, -10, 40, 0, 40)},
		{"linear", curveXY(20, 0, 60, 0), SingleLinearOverlap, 0,
			pointsXY(20, -10, 60, -10)},
		{"linear full edge", curveXY(0, 0, 100, 0), SingleLinearOverlap, 0,
			pointsXY(0, -10, 100, -10)},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			report, err := NewProcessor(DefaultOptions()).Run(part, []*Curve{tt.candidate})
			test.Error(t, err)
			test.T(t, len(report.Skipped), 0)
			test.T(t, len(report.Failures), 0)
			test.T(t, len(report.Results), 1)
			if len(report.Results) != 1 {
				return
			}

			result := report.Results[0]
			test.T(t, result.Index, 0)
			test.T(t, result.Mode, tt.mode)
			test.T(t, len(result.Bridges), tt.bridges)
			testCoords(t, result.Curve, tt.coords)
			test.That(t, tt.mode == SingleLinearOverlap || result.Curve.Closed(), "closed")
		})
	}
}

func TestProcessorReverse(t *testing.T) {
	opts := DefaultOptions()
	opts.Reverse = true
	candidate := curveXY(20, 0, 60, 0, 60, 30, 20, 30).Close()

	report, err := NewProcessor(opts).Run(square(0, 0, 100), []*Curve{candidate})
	test.Error(t, err)
	test.T(t, len(report.Results), 1)
	testCoords(t, report.Results[0].Curve, pointsXY(20, 0, 20, 30, 60, 30, 60, 0, 60, 10, 20, 10, 20, 0))
}

func TestProcessorZeroDistance(t *testing.T) {
	opts := DefaultOptions()
	opts.Distance = 0.0
	candidate := curveXY(20, 0, 60, 0, 60, 30, 20, 30).Close()

	report, err := NewProcessor(opts).Run(square(0, 0, 100), []*Curve{candidate})
	test.Error(t, err)
	test.T(t, len(report.Results), 1)
	result := report.Results[0]
	test.T(t, len(result.Bridges), 0)
	test.That(t, result.Curve.Closed())
	test.Float(t, result.Curve.Length(), candidate.Length())
	testCoords(t, result.Curve, pointsXY(60, 0, 60, 30, 20, 30, 20, 0, 60, 0))
}

func TestProcessorIdempotent(t *testing.T) {
	part := square(0, 0, 100)
	candidate := curveXY(20, 0, 60, 0, 60, 30, 20, 30).Close()
	partCoords, candidateCoords := part.Coords(), candidate.Coords()

	p := NewProcessor(DefaultOptions())
	report0, err := p.Run(part, []*Curve{candidate})
	test.Error(t, err)
	report1, err := p.Run(part, []*Curve{candidate})
	test.Error(t, err)
	test.T(t, len(report0.Results), 1)
	test.T(t, len(report1.Results), 1)
	testCoords(t, report1.Results[0].Curve, report0.Results[0].Curve.Coords())

	// inputs are left untouched
	testCoords(t, part, partCoords)
	testCoords(t, candidate, candidateCoords)
}

func TestProcessorBatch(t *testing.T) {
	part := square(0, 0, 100)
	candidates := []*Curve{
		curveXY(20, 0, 60, 0, 60, 30, 20, 30).Close(),
		square(200, 200, 10),
		curveXY(80, 0, 100, 0, 100, 20, 80, 20).Close(),
		square(40, 40, 10),
		curveXY(0, 40, 100, 40, 100, 60, 0, 60).Close(),
	}

	for _, workers := range []int{1, 3} {
		opts := DefaultOptions()
		opts.Workers = workers
		report, err := NewProcessor(opts).Run(part, candidates)
		test.Error(t, err)
		test.T(t, len(report.Results), 3)
		test.T(t, report.Skipped, []int{1, 3})
		test.T(t, len(report.Failures), 0)

		indices := []int{}
		for _, result := range report.Results {
			indices = append(indices, result.Index)
		}
		test.T(t, indices, []int{0, 2, 4})
		test.T(t, len(report.Curves()), 3)
		test.T(t, report.Results[2].Mode, MultiOverlap)
	}
}

func TestProcessorValidate(t *testing.T) {
	p := NewProcessor(DefaultOptions())
	candidate := curveXY(20, 0, 60, 0, 60, 30, 20, 30).Close()
	nonPlanar := NewCurve(Point{0, 0, 0}, Point{100, 0, 0}, Point{100, 100, 50}, Point{0, 100, 0}).Close()

	var tts = []struct {
		name       string
		part       *Curve
		candidates []*Curve
		err        error
	}{
		{"empty part", &Curve{}, []*Curve{candidate}, ErrPartInvalid},
		{"nil part", nil, []*Curve{candidate}, ErrPartInvalid},
		{"short part", curveXY(0, 0, 0.001, 0), []*Curve{candidate}, ErrPartInvalid},
		{"no candidates", square(0, 0, 100), nil, ErrNoCandidates},
		{"non-planar part", nonPlanar, []*Curve{candidate}, ErrPartNonPlanar},
		{"non-planar candidate", square(0, 0, 100), []*Curve{candidate, nonPlanar}, ErrCandidatesNonPlanar},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			report, err := p.Run(tt.part, tt.candidates)
			test.That(t, errors.Is(err, tt.err), err)
			test.T(t, len(report.Results), 0)
		})
	}

	// closed curves are oriented counter clockwise
	part, candidates, err := p.Validate(square(0, 0, 100).Reverse(), []*Curve{candidate.Reverse(), curveXY(0, 0, 10, 0)})
	test.Error(t, err)
	test.That(t, 0.0 < part.Normal().Z)
	test.That(t, 0.0 < candidates[0].Normal().Z)
	testCoords(t, candidates[1], pointsXY(0, 0, 10, 0))
}

type offsetFailKernel struct {
	*PolylineKernel
}

func (k offsetFailKernel) Offset(*Curve, Plane, float64) ([]*Curve, error) {
	return nil, errors.New("offset failure")
}

type joinSplitKernel struct {
	*PolylineKernel
}

func (k joinSplitKernel) Join(cs []*Curve) []*Curve {
	return cs
}

func TestProcessorFailures(t *testing.T) {
	opts := DefaultOptions()
	part := square(0, 0, 100)
	candidates := []*Curve{
		square(200, 200, 10),
		curveXY(20, 0, 60, 0, 60, 30, 20, 30).Close(),
	}

	p := &Processor{Kernel: offsetFailKernel{NewPolylineKernel(opts)}, Options: opts}
	report, err := p.Run(part, candidates)
	test.Error(t, err)
	test.T(t, report.Skipped, []int{0})
	test.T(t, len(report.Failures), 1)
	test.T(t, report.Failures[0].Index, 1)
	test.That(t, errors.Is(report.Failures[0], ErrOffsetFailed))

	p = &Processor{Kernel: joinSplitKernel{NewPolylineKernel(opts)}, Options: opts}
	report, err = p.Run(part, candidates)
	test.Error(t, err)
	test.T(t, len(report.Failures), 1)
	test.That(t, errors.Is(report.Failures[0], ErrJoinAmbiguous))

	p.KeepFirstJoin = true
	report, err = p.Run(part, candidates)
	test.Error(t, err)
	test.T(t, len(report.Failures), 1)
	test.That(t, errors.Is(report.Failures[0], ErrClosureFailed))
}
