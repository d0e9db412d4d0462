package draw

import (
	"math"
	"strconv"

	"github.com/gogpu/gasket"
)

// drawLabels prints the normalised curvature of every circle that is
// large enough to hold it. The bounding circle is skipped.
func (r *Renderer) drawLabels(circles []gasket.Circle) {
	unit := curvatureUnit(circles)
	if unit == 0 {
		return
	}

	r.dc.SetRGBA(r.style.LabelColor.R, r.style.LabelColor.G, r.style.LabelColor.B, r.style.LabelColor.A)
	r.dc.SetFont(r.face)
	for _, c := range circles {
		if c.IsBounding() {
			continue
		}
		x, y, radius := r.frame.project(c, r.scale)
		if radius < r.style.LabelMinRadius {
			continue
		}
		r.dc.DrawStringAnchored(Label(c, unit), x, y, 0.5, 0.5)
	}
}

// curvatureUnit returns |k| of the bounding circle, or of the first circle
// when none is bounding. Zero means there is nothing to label.
func curvatureUnit(circles []gasket.Circle) float64 {
	for _, c := range circles {
		if c.IsBounding() {
			return math.Abs(c.Curvature())
		}
	}
	if len(circles) == 0 {
		return 0
	}
	return math.Abs(circles[0].Curvature())
}

// Label formats c's curvature as a multiple of unit, rounded to an integer.
// For the canvas seed every curvature is an exact multiple.
func Label(c gasket.Circle, unit float64) string {
	return strconv.FormatInt(int64(math.Round(c.Curvature()/unit)), 10)
}
