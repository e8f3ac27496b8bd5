// Package plot renders the correlation summary figure: a scatter of the two
// aggregated samples colored by point density, the fitted regression line, a
// grey dashed identity line, a stats box, and a density colorbar.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"

	"github.com/genomelab/trackcorr"
)

const (
	canvasW = 900
	canvasH = 700

	marginLeft   = 80
	marginRight  = 140
	marginTop    = 70
	marginBottom = 70

	pointRadius = 4
)

// Render draws the scatter figure for the paired samples and writes it to
// outPath as a PNG. dens supplies one color weight per point; xName and yName
// label the axes; newlines in title are honored.
func Render(x, y []float64, fit trackcorr.Fit, dens []float64, xName, yName, title, outPath string) error {
	if len(x) != len(y) || len(x) != len(dens) {
		return fmt.Errorf("mismatched plot inputs: %d x, %d y, %d densities", len(x), len(y), len(dens))
	}

	xMin, xMax := dataRange(x)
	yMin, yMax := dataRange(y)

	// Keep the fitted line's endpoints in view.
	yMin = math.Min(yMin, fit.Slope*xMin+fit.Intercept)
	yMax = math.Max(yMax, fit.Slope*xMax+fit.Intercept)
	xMin, xMax = pad(xMin, xMax)
	yMin, yMax = pad(yMin, yMax)

	plotW := float64(canvasW - marginLeft - marginRight)
	plotH := float64(canvasH - marginTop - marginBottom)
	toPx := func(v float64) float64 { return marginLeft + (v-xMin)/(xMax-xMin)*plotW }
	toPy := func(v float64) float64 { return float64(canvasH-marginBottom) - (v-yMin)/(yMax-yMin)*plotH }

	dc := gg.NewContext(canvasW, canvasH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	drawAxes(dc, xMin, xMax, yMin, yMax, toPx, toPy, xName, yName)

	// Identity line, clipped to the visible square.
	lo := math.Max(xMin, yMin)
	hi := math.Min(xMax, yMax)
	if hi > lo {
		dc.SetRGB(0.5, 0.5, 0.5)
		dc.SetLineWidth(1.5)
		dc.SetDash(6, 5)
		dc.DrawLine(toPx(lo), toPy(lo), toPx(hi), toPy(hi))
		dc.Stroke()
		dc.SetDash()
	}

	// Regression line across the full x range.
	dc.SetRGB(0.86, 0.37, 0.10)
	dc.SetLineWidth(2)
	dc.DrawLine(toPx(xMin), toPy(fit.Slope*xMin+fit.Intercept), toPx(xMax), toPy(fit.Slope*xMax+fit.Intercept))
	dc.Stroke()

	dMin, dMax := dataRange(dens)
	for i := range x {
		r, g, b := rampColor(normalize(dens[i], dMin, dMax))
		dc.SetRGB(r, g, b)
		dc.DrawCircle(toPx(x[i]), toPy(y[i]), pointRadius)
		dc.Fill()
	}

	drawStatsBox(dc, fit)
	drawColorbar(dc, dMin, dMax)

	// Title, honoring embedded newlines
	dc.SetRGB(0, 0, 0)
	for i, line := range strings.Split(title, "\n") {
		dc.DrawStringAnchored(line, canvasW/2, 22+float64(i)*16, 0.5, 0.5)
	}

	return pfx.Err(dc.SavePNG(outPath))
}

func dataRange(v []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range v {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(hi), 1)
	}
	return lo - 0.05*span, hi + 0.05*span
}

func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func drawAxes(dc *gg.Context, xMin, xMax, yMin, yMax float64, toPx, toPy func(float64) float64, xName, yName string) {
	left := float64(marginLeft)
	right := float64(canvasW - marginRight)
	top := float64(marginTop)
	bottom := float64(canvasH - marginBottom)

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(left, top, right-left, bottom-top)
	dc.Stroke()

	for _, tick := range ticks(xMin, xMax) {
		px := toPx(tick)
		dc.DrawLine(px, bottom, px, bottom+5)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(tick), px, bottom+15, 0.5, 0.5)
	}
	for _, tick := range ticks(yMin, yMax) {
		py := toPy(tick)
		dc.DrawLine(left-5, py, left, py)
		dc.Stroke()
		dc.DrawStringAnchored(tickLabel(tick), left-10, py, 1, 0.5)
	}

	dc.DrawStringAnchored(xName, (left+right)/2, bottom+40, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 25, (top+bottom)/2)
	dc.DrawStringAnchored(yName, 25, (top+bottom)/2, 0.5, 0.5)
	dc.Pop()
}

// ticks picks round tick positions covering [lo, hi].
func ticks(lo, hi float64) []float64 {
	span := hi - lo
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return nil
	}

	rawStep := span / 5
	mag := math.Pow(10, math.Floor(math.Log10(rawStep)))
	var step float64
	switch frac := rawStep / mag; {
	case frac < 1.5:
		step = mag
	case frac < 3.5:
		step = 2 * mag
	case frac < 7.5:
		step = 5 * mag
	default:
		step = 10 * mag
	}

	var out []float64
	for tick := math.Ceil(lo/step) * step; tick <= hi; tick += step {
		out = append(out, tick)
	}
	return out
}

func tickLabel(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e7 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.3g", v)
}

func drawStatsBox(dc *gg.Context, fit trackcorr.Fit) {
	lines := []string{
		fmt.Sprintf("y = %.3fx + %.3f", fit.Slope, fit.Intercept),
		fmt.Sprintf("R2=%.3f", fit.R2),
	}

	var textW float64
	for _, line := range lines {
		if w, _ := dc.MeasureString(line); w > textW {
			textW = w
		}
	}

	boxX := float64(marginLeft + 20)
	boxY := float64(marginTop + 20)
	boxW := textW + 24
	boxH := float64(len(lines)*16 + 16)

	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(boxX, boxY, boxW, boxH, 8)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.DrawRoundedRectangle(boxX, boxY, boxW, boxH, 8)
	dc.Stroke()

	for i, line := range lines {
		dc.DrawString(line, boxX+12, boxY+14+float64(i)*16+5)
	}
}

func drawColorbar(dc *gg.Context, dMin, dMax float64) {
	barX := float64(canvasW - marginRight + 30)
	barW := 18.0
	top := float64(marginTop)
	bottom := float64(canvasH - marginBottom)

	for py := top; py <= bottom; py++ {
		r, g, b := rampColor((bottom - py) / (bottom - top))
		dc.SetRGB(r, g, b)
		dc.DrawRectangle(barX, py, barW, 1)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(barX, top, barW, bottom-top)
	dc.Stroke()

	dc.DrawStringAnchored(fmt.Sprintf("%.3g", dMax), barX+barW/2, top-12, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.3g", dMin), barX+barW/2, bottom+12, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(90), barX+barW+35, (top+bottom)/2)
	dc.DrawStringAnchored("Gaussian Kernel Density", barX+barW+35, (top+bottom)/2, 0.5, 0.5)
	dc.Pop()
}

// rampColor maps t in [0,1] onto a viridis-like dark-blue-to-yellow ramp.
func rampColor(t float64) (r, g, b float64) {
	anchors := [][3]float64{
		{0.267, 0.005, 0.329},
		{0.283, 0.141, 0.458},
		{0.254, 0.265, 0.530},
		{0.207, 0.372, 0.553},
		{0.164, 0.471, 0.558},
		{0.128, 0.567, 0.551},
		{0.135, 0.659, 0.518},
		{0.267, 0.749, 0.441},
		{0.478, 0.821, 0.318},
		{0.741, 0.873, 0.150},
		{0.993, 0.906, 0.144},
	}

	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))

	pos := t * float64(len(anchors)-1)
	i := int(pos)
	if i >= len(anchors)-1 {
		c := anchors[len(anchors)-1]
		return c[0], c[1], c[2]
	}
	frac := pos - float64(i)
	a, c := anchors[i], anchors[i+1]
	return a[0] + frac*(c[0]-a[0]), a[1] + frac*(c[1]-a[1]), a[2] + frac*(c[2]-a[2])
}
