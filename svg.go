package relief

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Precision is the number of significant digits of coordinates written to SVG.
var Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// ToSVG returns the SVG path data of the curve projected onto the XY plane. Closed curves end with a z command.
func (c *Curve) ToSVG() string {
	if c.Empty() {
		return ""
	}

	n := len(c.coords)
	if c.Closed() {
		n--
	}
	sb := strings.Builder{}
	for i, coord := range c.coords[:n] {
		if i == 0 {
			fmt.Fprintf(&sb, "M%v %v", num(coord.X), num(coord.Y))
		} else {
			fmt.Fprintf(&sb, "L%v %v", num(coord.X), num(coord.Y))
		}
	}
	if c.Closed() {
		sb.WriteString("z")
	}
	return sb.String()
}

// ReadSVG reads the part and candidate curves from an SVG document. The element with id or class "part" is the part, every other path, polyline and polygon element is a candidate with one candidate per subpath. Transforms and styles are ignored.
func ReadSVG(r io.Reader) (*Curve, []*Curve, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	var part *Curve
	candidates := []*Curve{}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, nil, l.Err()
			} else if part == nil {
				return nil, nil, ErrNoPart
			}
			return part, candidates, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = string(val)
			}

			var err error
			var cs []*Curve
			switch tag := string(data[1:]); tag {
			case "path":
				cs, err = ParseSVGPath(attrs["d"])
			case "polyline", "polygon":
				var c *Curve
				if c, err = parsePoints(attrs["points"]); err == nil {
					if tag == "polygon" {
						c.Close()
					}
					cs = []*Curve{c}
				}
			default:
				continue
			}
			if err != nil {
				return nil, nil, parse.NewErrorLexer(z, "%v", err)
			}

			if isPart(attrs) {
				if part != nil {
					return nil, nil, parse.NewErrorLexer(z, "multiple parts")
				} else if len(cs) != 1 {
					return nil, nil, parse.NewErrorLexer(z, "part must be a single curve")
				}
				part = cs[0]
			} else {
				candidates = append(candidates, cs...)
			}
		}
	}
}

func isPart(attrs map[string]string) bool {
	if attrs["id"] == "part" {
		return true
	}
	for _, class := range strings.Fields(attrs["class"]) {
		if class == "part" {
			return true
		}
	}
	return false
}

// WriteSVG writes an SVG document with the part, the candidates and the resulting curves. The Y axis points up, so the document flips the drawing. The part keeps id "part" so that the document can be read again by ReadSVG.
func WriteSVG(w io.Writer, part *Curve, candidates, results []*Curve) error {
	all := append([]*Curve{part}, candidates...)
	all = append(all, results...)
	view := Bounds(all...)
	view = view.Expand(math.Max(1.0, 0.05*math.Max(view.W(), view.H())))
	stroke := math.Max(view.W(), view.H()) / 500.0

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="%v %v %v %v">`, num(view.X0), num(-view.Y1), num(view.W()), num(view.H()))
	fmt.Fprintf(bw, `<g transform="scale(1,-1)" fill="none" stroke-width="%v" stroke-linejoin="round">`, num(stroke))
	if !part.Empty() {
		fmt.Fprintf(bw, `<path id="part" stroke="#000" d="%s"/>`, part.ToSVG())
	}
	for _, c := range candidates {
		if !c.Empty() {
			fmt.Fprintf(bw, `<path class="candidate" stroke="#888" stroke-dasharray="%v" d="%s"/>`, num(4.0*stroke), c.ToSVG())
		}
	}
	for _, c := range results {
		if !c.Empty() {
			fmt.Fprintf(bw, `<path class="relief" stroke="#d00" d="%s"/>`, c.ToSVG())
		}
	}
	bw.WriteString("</g></svg>")
	return bw.Flush()
}
