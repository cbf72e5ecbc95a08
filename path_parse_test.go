package relief

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		path   string
		curves [][]Point
	}{
		{"", [][]Point{}},
		{"M0 0L10 0L10 10z", [][]Point{pointsXY(0, 0, 10, 0, 10, 10, 0, 0)}},
		{"M0,0 L10,0 L10,10 Z", [][]Point{pointsXY(0, 0, 10, 0, 10, 10, 0, 0)}},
		{"m5 5l10 0 0 10z", [][]Point{pointsXY(5, 5, 15, 5, 15, 15, 5, 5)}},
		{"M0 0h10v10H0z", [][]Point{pointsXY(0, 0, 10, 0, 10, 10, 0, 10, 0, 0)}},
		{"M0 0h10v10h-10z", [][]Point{pointsXY(0, 0, 10, 0, 10, 10, 0, 10, 0, 0)}},
		{"M0 0 10 0 10 10", [][]Point{pointsXY(0, 0, 10, 0, 10, 10)}},
		{"m0 0 10 0 0 10", [][]Point{pointsXY(0, 0, 10, 0, 10, 10)}},
		{"M0 0L1 0M5 5L6 5", [][]Point{pointsXY(0, 0, 1, 0), pointsXY(5, 5, 6, 5)}},
		{"M0 0L1 0zL0 1", [][]Point{pointsXY(0, 0, 1, 0, 0, 0), pointsXY(0, 0, 0, 1)}},
		{"M0 0M5 5L6 5", [][]Point{pointsXY(5, 5, 6, 5)}},
		{"M-1.5.5L1e1-2", [][]Point{pointsXY(-1.5, 0.5, 10, -2)}},
	}
	for _, tt := range tts {
		t.Run(tt.path, func(t *testing.T) {
			cs, err := ParseSVGPath(tt.path)
			test.Error(t, err)
			test.T(t, len(cs), len(tt.curves))
			for i := 0; i < len(cs) && i < len(tt.curves); i++ {
				testCoords(t, cs[i], tt.curves[i])
			}
		})
	}
}

func TestParseSVGPathBezier(t *testing.T) {
	cs, err := ParseSVGPath("M0 0C0 10 10 10 10 0")
	test.Error(t, err)
	test.T(t, len(cs), 1)
	test.That(t, 4 < cs[0].Len())
	test.T(t, cs[0].Start(), Point{0, 0, 0})
	testPoint(t, cs[0].End(), Point{10, 0, 0})
	testPoint(t, cs[0].PointAt(float64(cs[0].Len())/2.0), Point{5, 7.5, 0})

	cs, err = ParseSVGPath("M0 0q5 10 10 0")
	test.Error(t, err)
	test.T(t, len(cs), 1)
	test.That(t, 4 < cs[0].Len())
	testPoint(t, cs[0].End(), Point{10, 0, 0})
	for _, coord := range cs[0].Coords() {
		test.That(t, coord.Y <= 5.0+Epsilon, coord)
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	var tts = []string{
		"10 10",
		"M0",
		"M0 0L10",
		"M0 0A5 5 0 0 1 10 0",
		"M0 0Lx",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseSVGPath(tt)
			test.That(t, err != nil)
		})
	}
}

func TestParsePoints(t *testing.T) {
	c, err := parsePoints("0,0 10,0\n10,10")
	test.Error(t, err)
	testCoords(t, c, pointsXY(0, 0, 10, 0, 10, 10))

	_, err = parsePoints("0,0 10")
	test.That(t, err != nil)
}
