package relief

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// xyer implements plotter.XYer for the XY coordinates of a curve.
type xyer []Point

func (xy xyer) Len() int {
	return len(xy)
}

func (xy xyer) XY(i int) (float64, float64) {
	return xy[i].X, xy[i].Y
}

// Plot returns a gonum plot of the part, the candidates and the resulting curves, each as a legend entry.
func Plot(part *Curve, candidates, results []*Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Relief"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Add(plotter.NewGrid())

	add := func(name string, cs []*Curve, col color.Color, width vg.Length, dashes []vg.Length) error {
		first := true
		for _, c := range cs {
			if c.Empty() {
				continue
			}
			l, err := plotter.NewLine(xyer(c.coords))
			if err != nil {
				return err
			}
			l.LineStyle.Color = col
			l.LineStyle.Width = width
			l.LineStyle.Dashes = dashes
			p.Add(l)
			if first {
				p.Legend.Add(name, l)
				first = false
			}
		}
		return nil
	}
	if err := add("part", []*Curve{part}, color.Black, vg.Points(1.5), nil); err != nil {
		return nil, err
	}
	if err := add("candidates", candidates, color.Gray{Y: 0x88}, vg.Points(1), []vg.Length{vg.Points(4), vg.Points(2)}); err != nil {
		return nil, err
	}
	if err := add("relief", results, color.RGBA{R: 0xdd, A: 0xff}, vg.Points(1.5), nil); err != nil {
		return nil, err
	}
	return p, nil
}
