package relief

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// ParseSVGPath parses SVG path data into curves, one for each subpath, in the XY plane. Supported commands are M, L, H, V, C, Q and Z in absolute and relative form. Béziers are flattened within Tolerance.
func ParseSVGPath(s string) ([]*Curve, error) {
	path := []byte(s)
	cs := []*Curve{}

	var cur *Curve
	var prevCmd byte
	var x, y, x0, y0 float64 // current point and start of subpath
	lineTo := func(xn, yn float64) {
		if cur == nil {
			cur = &Curve{}
			cur.Add(x, y, 0.0)
		}
		cur.Add(xn, yn, 0.0)
		x, y = xn, yn
	}
	endSubpath := func() {
		if cur != nil && 2 <= len(cur.coords) {
			cs = append(cs, cur)
		}
		cur = nil
	}

	i := 0
	nums := func(vals []float64) error {
		for j := range vals {
			i += skipCommaWhitespace(path[i:])
			f, n := strconv.ParseFloat(path[i:])
			if n == 0 {
				return fmt.Errorf("bad path: expected number at position %d", i)
			}
			vals[j] = f
			i += n
		}
		return nil
	}

	var vals [6]float64
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("bad path: expected command at position %d", i)
		}

		rel := 'a' <= cmd
		dx, dy := 0.0, 0.0
		if rel {
			dx, dy = x, y
		}
		switch cmd {
		case 'M', 'm':
			if err := nums(vals[:2]); err != nil {
				return nil, err
			}
			endSubpath()
			x, y = vals[0]+dx, vals[1]+dy
			x0, y0 = x, y
			cur = &Curve{}
			cur.Add(x, y, 0.0)
		case 'L', 'l':
			if err := nums(vals[:2]); err != nil {
				return nil, err
			}
			lineTo(vals[0]+dx, vals[1]+dy)
		case 'H', 'h':
			if err := nums(vals[:1]); err != nil {
				return nil, err
			}
			lineTo(vals[0]+dx, y)
		case 'V', 'v':
			if err := nums(vals[:1]); err != nil {
				return nil, err
			}
			lineTo(x, vals[0]+dy)
		case 'C', 'c':
			if err := nums(vals[:6]); err != nil {
				return nil, err
			}
			p0 := Point{x, y, 0.0}
			p1 := Point{vals[0] + dx, vals[1] + dy, 0.0}
			p2 := Point{vals[2] + dx, vals[3] + dy, 0.0}
			p3 := Point{vals[4] + dx, vals[5] + dy, 0.0}
			for _, p := range flattenCubicBezier(nil, p0, p1, p2, p3, Tolerance, 0) {
				lineTo(p.X, p.Y)
			}
		case 'Q', 'q':
			if err := nums(vals[:4]); err != nil {
				return nil, err
			}
			p0 := Point{x, y, 0.0}
			q1 := Point{vals[0] + dx, vals[1] + dy, 0.0}
			p3 := Point{vals[2] + dx, vals[3] + dy, 0.0}
			p1 := p0.Interpolate(q1, 2.0/3.0)
			p2 := p3.Interpolate(q1, 2.0/3.0)
			for _, p := range flattenCubicBezier(nil, p0, p1, p2, p3, Tolerance, 0) {
				lineTo(p.X, p.Y)
			}
		case 'Z', 'z':
			if cur != nil {
				cur.Close()
			}
			endSubpath()
			x, y = x0, y0
		default:
			return nil, fmt.Errorf("bad path: unsupported command %q", cmd)
		}

		if cmd == 'M' {
			prevCmd = 'L'
		} else if cmd == 'm' {
			prevCmd = 'l'
		} else {
			prevCmd = cmd
		}
	}
	endSubpath()
	return cs, nil
}

// flattenCubicBezier appends the end points of line segments approximating the cubic Bézier P0-P3 within flatness, by recursive subdivision.
func flattenCubicBezier(coords []Point, p0, p1, p2, p3 Point, flatness float64, depth int) []Point {
	if 16 <= depth || distToLine(p1, p0, p3) <= flatness && distToLine(p2, p0, p3) <= flatness {
		return append(coords, p3)
	}

	// de Casteljau
	p01 := p0.Interpolate(p1, 0.5)
	p12 := p1.Interpolate(p2, 0.5)
	p23 := p2.Interpolate(p3, 0.5)
	p012 := p01.Interpolate(p12, 0.5)
	p123 := p12.Interpolate(p23, 0.5)
	q := p012.Interpolate(p123, 0.5)
	coords = flattenCubicBezier(coords, p0, p01, p012, q, flatness, depth+1)
	return flattenCubicBezier(coords, q, p123, p23, p3, flatness, depth+1)
}

// parsePoints parses the points attribute of SVG polyline and polygon elements.
func parsePoints(s string) (*Curve, error) {
	b := []byte(s)
	c := &Curve{}
	for i := 0; ; {
		i += skipCommaWhitespace(b[i:])
		if len(b) <= i {
			break
		}
		x, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("bad points: expected number at position %d", i)
		}
		i += n
		i += skipCommaWhitespace(b[i:])
		y, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("bad points: expected number at position %d", i)
		}
		i += n
		c.Add(x, y, 0.0)
	}
	return c, nil
}
