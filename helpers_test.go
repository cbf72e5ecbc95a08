package relief

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// curveXY returns a curve in the XY plane through the coordinate pairs.
func curveXY(xy ...float64) *Curve {
	c := &Curve{}
	for i := 0; i+1 < len(xy); i += 2 {
		c.Add(xy[i], xy[i+1], 0.0)
	}
	return c
}

func pointsXY(xy ...float64) []Point {
	return curveXY(xy...).coords
}

var approx = cmpopts.EquateApprox(0.0, 1e-6)

func testCoords(t *testing.T, c *Curve, want []Point) {
	t.Helper()
	if c == nil {
		t.Fatalf("expected curve %v, got nil", want)
	}
	if diff := cmp.Diff(want, c.Coords(), approx); diff != "" {
		t.Errorf("coords mismatch (-want +got):\n%s", diff)
	}
}

func testPoint(t *testing.T, got, want Point) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("point mismatch (-want +got):\n%s", diff)
	}
}

// square returns the counter clockwise square with corners (x,y) and (x+w,y+w).
func square(x, y, w float64) *Curve {
	return curveXY(x, y, x+w, y, x+w, y+w, x, y+w).Close()
}
