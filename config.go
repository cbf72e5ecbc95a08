package relief

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tolerances are the lengths within which geometry is considered coincident.
type Tolerances struct {
	Intersection float64 // intersections, offsets, joins and closure of the output
	Overlap      float64 // collinearity of overlapping segments
	PointMatch   float64 // matching split points and segment midpoints
}

// DefaultTolerances are suitable for curves in millimeters.
var DefaultTolerances = Tolerances{
	Intersection: 0.01,
	Overlap:      0.01,
	PointMatch:   1e-3,
}

// Validate returns an error if any tolerance is not positive.
func (tol Tolerances) Validate() error {
	if !(0.0 < tol.Intersection) || !(0.0 < tol.Overlap) || !(0.0 < tol.PointMatch) {
		return fmt.Errorf("tolerances must be positive: %+v", tol)
	}
	return nil
}

// CornerStyle is the style of corners of offset curves.
type CornerStyle int

// see CornerStyle
const (
	SharpCorner CornerStyle = iota
	ChamferCorner
	RoundCorner
)

// ParseCornerStyle parses "sharp", "chamfer" or "round".
func ParseCornerStyle(s string) (CornerStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sharp":
		return SharpCorner, nil
	case "chamfer":
		return ChamferCorner, nil
	case "round":
		return RoundCorner, nil
	}
	return SharpCorner, fmt.Errorf("unknown corner style: %s", s)
}

// Joiner returns the offset joiner for the corner style.
func (v CornerStyle) Joiner() Joiner {
	switch v {
	case ChamferCorner:
		return BevelJoiner
	case RoundCorner:
		return RoundJoiner
	}
	return MiterJoiner
}

func (v CornerStyle) String() string {
	switch v {
	case SharpCorner:
		return "sharp"
	case ChamferCorner:
		return "chamfer"
	case RoundCorner:
		return "round"
	}
	return fmt.Sprintf("CornerStyle(%d)", int(v))
}

// Options configure a Processor.
type Options struct {
	Plane         Plane       // working plane, WorldXY by default
	Distance      float64     // signed offset distance
	Reverse       bool        // the part is a hole, reverse all curves
	Corner        CornerStyle // corner style of offsets
	KeepFirstJoin bool        // keep the first curve of an ambiguous join instead of dropping the candidate
	Workers       int         // number of candidates processed concurrently, sequential if 1 or less
	Tolerances    Tolerances
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Plane:      WorldXY,
		Distance:   10.0,
		Corner:     SharpCorner,
		Workers:    1,
		Tolerances: DefaultTolerances,
	}
}

type configFile struct {
	Tolerances struct {
		Intersection float64 `yaml:"intersection"`
		Overlap      float64 `yaml:"overlap"`
		PointMatch   float64 `yaml:"point_match"`
	} `yaml:"tolerances"`
	Plane struct {
		Origin []float64 `yaml:"origin"`
		Normal []float64 `yaml:"normal"`
	} `yaml:"plane"`
	Distance      float64 `yaml:"distance"`
	Reverse       bool    `yaml:"reverse"`
	Corner        string  `yaml:"corner"`
	KeepFirstJoin bool    `yaml:"keep_first_join"`
	Workers       int     `yaml:"workers"`
}

// LoadConfig reads options from a YAML document. Keys that are not present keep their default value, unknown keys are an error. For example:
//
//	distance: 6
//	corner: chamfer
//	plane:
//	  origin: [0, 0, 0]
//	  normal: [0, 0, 1]
//	tolerances:
//	  intersection: 0.01
//	  overlap: 0.01
//	  point_match: 0.001
func LoadConfig(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	cfg := configFile{}
	cfg.Tolerances.Intersection = opts.Tolerances.Intersection
	cfg.Tolerances.Overlap = opts.Tolerances.Overlap
	cfg.Tolerances.PointMatch = opts.Tolerances.PointMatch
	cfg.Plane.Origin = []float64{0.0, 0.0, 0.0}
	cfg.Plane.Normal = []float64{0.0, 0.0, 1.0}
	cfg.Distance = opts.Distance
	cfg.Corner = opts.Corner.String()
	cfg.Workers = opts.Workers

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("config: %w", err)
	}

	if len(cfg.Plane.Origin) != 3 || len(cfg.Plane.Normal) != 3 {
		return opts, fmt.Errorf("config: plane origin and normal must have three coordinates")
	}
	origin := Point{cfg.Plane.Origin[0], cfg.Plane.Origin[1], cfg.Plane.Origin[2]}
	normal := Point{cfg.Plane.Normal[0], cfg.Plane.Normal[1], cfg.Plane.Normal[2]}
	plane, err := NewPlane(origin, normal)
	if err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}
	corner, err := ParseCornerStyle(cfg.Corner)
	if err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}

	opts.Plane = plane
	opts.Distance = cfg.Distance
	opts.Reverse = cfg.Reverse
	opts.Corner = corner
	opts.KeepFirstJoin = cfg.KeepFirstJoin
	opts.Workers = cfg.Workers
	opts.Tolerances = Tolerances{
		Intersection: cfg.Tolerances.Intersection,
		Overlap:      cfg.Tolerances.Overlap,
		PointMatch:   cfg.Tolerances.PointMatch,
	}
	if err := opts.Tolerances.Validate(); err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}
