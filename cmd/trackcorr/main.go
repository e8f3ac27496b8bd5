// trackcorr finds the linear correlation between two genome-wide signal data
// sets over an annotated feature list, e.g. wild-type vs mutant sequencing
// coverage over genes. It accepts 2 track files (compared directly) or 4
// (consecutive pairs combined per sample, by summing or by strand matching),
// and writes a density-colored scatter figure with the fitted line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/genomelab/trackcorr"
	"github.com/genomelab/trackcorr/annot"
	"github.com/genomelab/trackcorr/plot"
	"github.com/genomelab/trackcorr/track"
)

type nameList []string

func (n *nameList) String() string { return strings.Join(*n, ",") }

func (n *nameList) Set(v string) error {
	*n = append(*n, v)
	return nil
}

func main() {
	var (
		bedPath    string
		names      nameList
		title      string
		byStrand   bool
		percentile float64
		outPath    string
		showHist   bool
	)

	flag.StringVar(&bedPath, "bed", "", "Annotation file, BED or GTF/GFF, optionally compressed (required)")
	flag.Var(&names, "name", "Display name for one data set; pass once per set (defaults: WT, Mutant)")
	flag.StringVar(&title, "title", "Median Correlation Between WT and Mutant", "Plot title. A literal \\n starts a new line.")
	flag.BoolVar(&byStrand, "strands", false, "Treat each consecutive track pair as the +/- strand variants of one data set (requires 4 tracks)")
	flag.Float64Var(&percentile, "percentile", 100, "Drop intervals whose value exceeds this percentile on any data set")
	flag.StringVar(&outPath, "out", "trackcorr.png", "Output figure path (PNG)")
	flag.BoolVar(&showHist, "hist", false, "Also print terminal histograms of both aggregated data sets")
	flag.Parse()

	trackPaths := flag.Args()
	if len(trackPaths) == 0 || bedPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: trackcorr [flags] track1 track2 [track3 track4]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(trackPaths, bedPath, names, title, byStrand, percentile, outPath, showHist); err != nil {
		log.Fatalln(err)
	}
}

func run(trackPaths []string, bedPath string, names nameList, title string, byStrand bool, percentile float64, outPath string, showHist bool) error {
	if n := len(trackPaths); n != 2 && n != 4 {
		return fmt.Errorf("%w (got %d)", trackcorr.ErrInvalidInputCount, n)
	}
	if byStrand && len(trackPaths) != 4 {
		return fmt.Errorf("-strands needs 4 tracks (a +/- pair per data set), got %d", len(trackPaths))
	}

	if len(names) == 0 {
		names = nameList{"WT", "Mutant"}
	}
	if len(names) != 2 {
		return fmt.Errorf("expected 2 -name values, got %d", len(names))
	}
	title = strings.ReplaceAll(title, `\n`, "\n")

	cfg := trackcorr.Config{ByStrand: byStrand, Percentile: percentile}

	loader, err := annot.Open(ExpandHome(bedPath))
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	intervals, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	log.Println("Loaded", len(intervals), "annotated intervals from", bedPath)

	tracks := make([]track.Track, 0, len(trackPaths))
	defer func() {
		for _, t := range tracks {
			t.Close()
		}
	}()
	for _, path := range trackPaths {
		t, err := track.Open(ExpandHome(path))
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		tracks = append(tracks, t)
	}

	matrix, err := trackcorr.Aggregate(intervals, tracks, cfg)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	filtered, kept, err := trackcorr.FilterOutliers(matrix, cfg.Percentile)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	log.Println("Kept", len(kept), "of", len(intervals), "intervals after filtering")

	x, y := filtered[0], filtered[1]

	fit, err := trackcorr.FitOLS(x, y)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	dens, err := trackcorr.Densities(x, y)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	if showHist {
		for i, sample := range [][]float64{x, y} {
			fmt.Printf("%s:\n", names[i])
			if err := histogram.Fprint(os.Stdout, histogram.Hist(10, sample), histogram.Linear(40)); err != nil {
				return err
			}
		}
	}

	if err := plot.Render(x, y, fit, dens, names[0], names[1], title, outPath); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	fmt.Printf("%s vs %s: y = %.3fx + %.3f, R2 = %.3f over %d intervals\n",
		names[0], names[1], fit.Slope, fit.Intercept, fit.R2, len(x))
	log.Println("Wrote", outPath)

	return nil
}
