package relief

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ReadGeoJSON reads the part and candidate curves from a GeoJSON feature collection. The feature with property "role" equal to "part" is the part, all other features are candidates. Polygons give a closed curve for every ring.
func ReadGeoJSON(data []byte) (*Curve, []*Curve, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, nil, err
	}

	var part *Curve
	candidates := []*Curve{}
	for i, f := range fc.Features {
		cs, err := curvesFromGeometry(f.Geometry)
		if err != nil {
			return nil, nil, fmt.Errorf("feature %d: %w", i, err)
		}
		if f.Properties.MustString("role", "") == "part" {
			if part != nil {
				return nil, nil, fmt.Errorf("feature %d: multiple parts", i)
			} else if len(cs) != 1 {
				return nil, nil, fmt.Errorf("feature %d: part must be a single curve", i)
			}
			part = cs[0]
		} else {
			candidates = append(candidates, cs...)
		}
	}
	if part == nil {
		return nil, nil, ErrNoPart
	}
	return part, candidates, nil
}

func curvesFromGeometry(g orb.Geometry) ([]*Curve, error) {
	switch g := g.(type) {
	case orb.LineString:
		return []*Curve{curveFromPoints(g, false)}, nil
	case orb.Ring:
		return []*Curve{curveFromPoints(g, true)}, nil
	case orb.MultiLineString:
		cs := make([]*Curve, 0, len(g))
		for _, ls := range g {
			cs = append(cs, curveFromPoints(ls, false))
		}
		return cs, nil
	case orb.Polygon:
		cs := make([]*Curve, 0, len(g))
		for _, ring := range g {
			cs = append(cs, curveFromPoints(ring, true))
		}
		return cs, nil
	case orb.MultiPolygon:
		cs := []*Curve{}
		for _, poly := range g {
			for _, ring := range poly {
				cs = append(cs, curveFromPoints(ring, true))
			}
		}
		return cs, nil
	case nil:
		return nil, fmt.Errorf("missing geometry")
	}
	return nil, fmt.Errorf("unsupported geometry %s", g.GeoJSONType())
}

func curveFromPoints(ps []orb.Point, closed bool) *Curve {
	c := &Curve{}
	for _, p := range ps {
		c.Add(p[0], p[1], 0.0)
	}
	if closed && 2 < len(c.coords) {
		c.Close()
	}
	return c
}

func curveToGeometry(c *Curve) orb.Geometry {
	ls := make(orb.LineString, 0, len(c.coords))
	for _, coord := range c.coords {
		ls = append(ls, orb.Point{coord.X, coord.Y})
	}
	if c.Closed() {
		return orb.Polygon{orb.Ring(ls)}
	}
	return ls
}

// WriteGeoJSON writes the results as a GeoJSON feature collection. Closed curves become polygons and open curves line strings, each feature carries the candidate index and stitch mode as properties.
func WriteGeoJSON(w io.Writer, results []Result) error {
	fc := geojson.NewFeatureCollection()
	for _, result := range results {
		f := geojson.NewFeature(curveToGeometry(result.Curve))
		f.Properties["candidate"] = result.Index
		f.Properties["mode"] = result.Mode.String()
		f.Properties["bridges"] = len(result.Bridges)
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
