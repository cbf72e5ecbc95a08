package relief

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Style is the fill and stroke style of rasterized curves. A nil color is not drawn. The stroke width is in pixels.
type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
}

// Rasterizer draws curves onto an image, mapping a view rectangle in the XY plane onto the image bounds with the Y axis pointing up.
type Rasterizer struct {
	img  draw.Image
	view Rect
	dpu  float64 // dots per unit
}

// NewRasterizer returns a rasterizer that draws onto img. The view is scaled uniformly to fit the image.
func NewRasterizer(img draw.Image, view Rect) *Rasterizer {
	size := img.Bounds().Size()
	dpu := 1.0
	if 0.0 < view.W() && 0.0 < view.H() {
		dpu = math.Min(float64(size.X)/view.W(), float64(size.Y)/view.H())
	}
	return &Rasterizer{
		img:  img,
		view: view,
		dpu:  dpu,
	}
}

func (r *Rasterizer) toPixel(p Point) (float32, float32) {
	x := (p.X - r.view.X0) * r.dpu
	y := (r.view.Y1 - p.Y) * r.dpu
	return float32(x), float32(y)
}

func (r *Rasterizer) addPolygon(ras *vector.Rasterizer, coords []Point) {
	if len(coords) < 3 {
		return
	}
	ras.MoveTo(r.toPixel(coords[0]))
	for _, coord := range coords[1:] {
		ras.LineTo(r.toPixel(coord))
	}
	ras.ClosePath()
}

func (r *Rasterizer) draw(ras *vector.Rasterizer, col color.Color) {
	size := r.img.Bounds().Size()
	ras.Draw(r.img, image.Rect(0, 0, size.X, size.Y), image.NewUniform(col), image.Point{})
}

// Draw fills the closed curves and strokes all curves using the given style.
func (r *Rasterizer) Draw(cs []*Curve, style Style) {
	size := r.img.Bounds().Size()
	if style.Fill != nil {
		ras := vector.NewRasterizer(size.X, size.Y)
		for _, c := range cs {
			if c.Closed() {
				r.addPolygon(ras, c.coords)
			}
		}
		r.draw(ras, style.Fill)
	}
	if style.Stroke != nil && 0.0 < style.StrokeWidth {
		ras := vector.NewRasterizer(size.X, size.Y)
		for _, c := range cs {
			for _, outline := range strokeOutline(c, style.StrokeWidth/2.0/r.dpu) {
				r.addPolygon(ras, outline)
			}
		}
		r.draw(ras, style.Stroke)
	}
}

// strokeOutline returns the polygons that cover the curve stroked with half width hw in the XY plane. Open curves give one polygon per offset piece pair, closed curves give an outer and a reversed inner ring so that the interior stays empty.
func strokeOutline(c *Curve, hw float64) [][]Point {
	if c.Empty() {
		return nil
	}
	right, err := c.Offset(WorldXY, hw, Tolerance, BevelJoiner)
	if err != nil {
		return nil
	}
	left, err := c.Offset(WorldXY, -hw, Tolerance, BevelJoiner)
	if err != nil {
		return nil
	}

	if c.Closed() {
		outlines := [][]Point{}
		for _, piece := range right {
			outlines = append(outlines, piece.coords)
		}
		for _, piece := range left {
			outlines = append(outlines, piece.Reverse().coords)
		}
		return outlines
	}

	outline := []Point{}
	for _, piece := range right {
		outline = append(outline, piece.coords...)
	}
	for i := len(left) - 1; 0 <= i; i-- {
		outline = append(outline, left[i].Reverse().coords...)
	}
	return [][]Point{outline}
}
