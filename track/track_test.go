package track

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBedGraphQueryMean(t *testing.T) {
	contents := "track type=bedGraph\n" +
		"chr1\t0\t10\t1\n" +
		"chr1\t10\t20\t3\n" +
		"chr1\t30\t40\t5\n"
	tr, err := Open(writeFile(t, t.TempDir(), "sig.bedgraph", contents))
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Close()

	for _, v := range []struct {
		start, end int
		want       float64
	}{
		{0, 10, 1},                 // single run
		{0, 20, 2},                 // equal-width runs average
		{5, 15, 2},                 // straddles the boundary
		{0, 40, 3},                 // the 20-30 gap contributes nothing
		{18, 32, (2*3 + 2*5) / 4.}, // partial overlaps weighted by bases
	} {
		if got := tr.QueryMean("chr1", v.start, v.end); math.Abs(got-v.want) > 1e-12 {
			t.Fatalf("QueryMean(%d, %d): expected %g, got %g", v.start, v.end, v.want, got)
		}
	}
}

func TestQueryMeanNoData(t *testing.T) {
	tr, err := Open(writeFile(t, t.TempDir(), "sig.bedgraph", "chr1\t0\t10\t1\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Close()

	for _, v := range []struct {
		chrom      string
		start, end int
	}{
		{"chr2", 0, 10},    // unknown chromosome
		{"chr1", 100, 200}, // past the data
		{"chr1", 10, 20},   // adjacent but not overlapping
	} {
		if got := tr.QueryMean(v.chrom, v.start, v.end); !math.IsNaN(got) {
			t.Fatalf("QueryMean(%s, %d, %d): expected NaN, got %g", v.chrom, v.start, v.end, got)
		}
	}
}

func TestWiggleFixedStep(t *testing.T) {
	contents := "track type=wiggle_0\n" +
		"fixedStep chrom=chr1 start=1 step=10 span=10\n" +
		"4\n8\n"
	tr, err := Open(writeFile(t, t.TempDir(), "sig.wig", contents))
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Close()

	// Positions 1-10 carry 4, positions 11-20 carry 8 (one-based).
	if got := tr.QueryMean("chr1", 0, 10); got != 4 {
		t.Fatalf("first step: expected 4, got %g", got)
	}
	if got := tr.QueryMean("chr1", 10, 20); got != 8 {
		t.Fatalf("second step: expected 8, got %g", got)
	}
	if got := tr.QueryMean("chr1", 0, 20); got != 6 {
		t.Fatalf("both steps: expected 6, got %g", got)
	}
}

func TestWiggleVariableStep(t *testing.T) {
	contents := "variableStep chrom=chr2 span=5\n" +
		"1\t10\n" +
		"21\t30\n"
	tr, err := Open(writeFile(t, t.TempDir(), "sig.wig", contents))
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Close()

	if got := tr.QueryMean("chr2", 0, 5); got != 10 {
		t.Fatalf("first span: expected 10, got %g", got)
	}
	if got := tr.QueryMean("chr2", 20, 25); got != 30 {
		t.Fatalf("second span: expected 30, got %g", got)
	}
	if got := tr.QueryMean("chr2", 5, 20); !math.IsNaN(got) {
		t.Fatalf("gap: expected NaN, got %g", got)
	}
}

func TestWiggleMissingDeclaration(t *testing.T) {
	if _, err := Open(writeFile(t, t.TempDir(), "sig.wig", "track type=wiggle_0\n7\n")); err == nil {
		t.Fatal("expected an error for wiggle data with no step declaration")
	}
}

func TestOpenDetectsShape(t *testing.T) {
	dir := t.TempDir()

	for _, v := range []struct {
		name     string
		contents string
	}{
		{"a.bedgraph", "chr1\t0\t10\t1\n"},
		{"b.wig", "fixedStep chrom=chr1 start=1 step=1\n1\n"},
		{"c.wig", "track type=wiggle_0\nvariableStep chrom=chr1\n1\t2\n"},
	} {
		tr, err := Open(writeFile(t, dir, v.name, v.contents))
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}
		if got := tr.QueryMean("chr1", 0, 1); math.IsNaN(got) {
			t.Fatalf("%s: expected data at chr1:0-1", v.name)
		}
		tr.Close()
	}
}

func TestOpenEmptyTrack(t *testing.T) {
	if _, err := Open(writeFile(t, t.TempDir(), "empty.bedgraph", "# nothing\n")); err == nil {
		t.Fatal("expected an error for a track with no data lines")
	}
}

func TestUnsortedInputIsSorted(t *testing.T) {
	contents := "chr1\t20\t30\t9\nchr1\t0\t10\t3\n"
	tr, err := Open(writeFile(t, t.TempDir(), "sig.bedgraph", contents))
	if err != nil {
		t.Fatal(err)
	}
	defer tr.Close()

	if got := tr.QueryMean("chr1", 0, 10); got != 3 {
		t.Fatalf("expected 3, got %g", got)
	}
	if got := tr.QueryMean("chr1", 20, 30); got != 9 {
		t.Fatalf("expected 9, got %g", got)
	}
}
