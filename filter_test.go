package trackcorr

import (
	"math"
	"reflect"
	"testing"
)

func TestFilterPercentile100KeepsFiniteColumns(t *testing.T) {
	m := Matrix{
		{1, 2, 3, 4, 100},
		{5, 4, 3, 2, 1},
	}

	out, kept, err := FilterOutliers(m, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(kept, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("expected all columns kept, got %v", kept)
	}
	if !reflect.DeepEqual(out, m) {
		t.Fatalf("expected matrix unchanged, got %v", out)
	}
}

func TestFilterDropsNaNColumnsAtEveryPercentile(t *testing.T) {
	m := Matrix{
		{1, math.NaN(), 3},
		{4, 5, 6},
	}

	for _, p := range []float64{50, 90, 100} {
		out, kept, err := FilterOutliers(m, p)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range kept {
			if c == 1 {
				t.Fatalf("p=%g: NaN column survived", p)
			}
		}
		if len(out[0]) != len(out[1]) {
			t.Fatalf("p=%g: rows have different lengths %d and %d", p, len(out[0]), len(out[1]))
		}
	}
}

func TestFilterDropsColumnsAcrossAllRows(t *testing.T) {
	// Column 4 only exceeds the threshold on the first row, but must be
	// dropped from both.
	m := Matrix{
		{1, 2, 3, 4, 100},
		{1, 1, 1, 1, 1},
	}

	out, kept, err := FilterOutliers(m, 90)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(kept, []int{0, 1, 2, 3}) {
		t.Fatalf("expected columns 0-3 kept, got %v", kept)
	}
	want := Matrix{{1, 2, 3, 4}, {1, 1, 1, 1}}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestFilterIdempotentAt100(t *testing.T) {
	m := Matrix{
		{1, math.NaN(), 3, 9},
		{2, 2, 2, 2},
	}

	once, keptOnce, err := FilterOutliers(m, 100)
	if err != nil {
		t.Fatal(err)
	}
	twice, keptTwice, err := FilterOutliers(once, 100)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("refiltering changed the matrix: %v then %v", once, twice)
	}
	if len(keptOnce) != len(keptTwice) {
		t.Fatalf("refiltering changed the column count: %d then %d", len(keptOnce), len(keptTwice))
	}
}

func TestFilterThreshold(t *testing.T) {
	m := Matrix{
		{1, 2, 3, 4, 5},
		{1, 1, 1, 1, 1},
	}

	// The 80th percentile of 1..5 is 4; 5 exceeds it.
	out, kept, err := FilterOutliers(m, 80)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(kept, []int{0, 1, 2, 3}) {
		t.Fatalf("expected columns 0-3 kept, got %v", kept)
	}
	if len(out[0]) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(out[0]))
	}
}

func TestFilterEmptyMatrix(t *testing.T) {
	out, kept, err := FilterOutliers(Matrix{}, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 || len(kept) != 0 {
		t.Fatalf("expected empty result, got %v / %v", out, kept)
	}
}
