package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/genomelab/trackcorr"
)

func TestRenderWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fig.png")

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1.2, 1.8, 3.1, 4.2, 4.9}
	dens := []float64{0.1, 0.3, 0.5, 0.3, 0.1}
	fit := trackcorr.Fit{Slope: 0.97, Intercept: 0.12, R2: 0.99}

	if err := Render(x, y, fit, dens, "WT", "Mutant", "Correlation\nreplicate 1", out); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != canvasW || img.Bounds().Dy() != canvasH {
		t.Fatalf("expected %dx%d canvas, got %v", canvasW, canvasH, img.Bounds())
	}
}

func TestRenderMismatchedInputs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fig.png")
	err := Render([]float64{1, 2}, []float64{1}, trackcorr.Fit{}, []float64{1, 2}, "a", "b", "t", out)
	if err == nil {
		t.Fatal("expected an error for mismatched inputs")
	}
}

func TestRampColorEndpoints(t *testing.T) {
	r0, g0, b0 := rampColor(0)
	r1, g1, b1 := rampColor(1)
	if r0 == r1 && g0 == g1 && b0 == b1 {
		t.Fatal("ramp endpoints should differ")
	}
	for _, c := range []float64{r0, g0, b0, r1, g1, b1} {
		if c < 0 || c > 1 {
			t.Fatalf("ramp component %g out of range", c)
		}
	}
}
