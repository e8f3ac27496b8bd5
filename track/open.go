package track

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/genomelab/trackcorr/sniff"
)

// Open loads the track at path, detecting whether it is a wiggle or a
// bedGraph from its first data line. The file handle is released before Open
// returns, whether or not loading succeeded.
func Open(path string) (Track, error) {
	wiggle, err := detectWiggle(path)
	if err != nil {
		return nil, err
	}

	r, err := sniff.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	name := filepath.Base(path)
	if wiggle {
		return parseWiggle(name, r)
	}
	return parseBedGraph(name, r)
}

func detectWiggle(path string) (bool, error) {
	r, err := sniff.Open(path)
	if err != nil {
		return false, pfx.Err(err)
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "browser") {
			continue
		}
		if strings.HasPrefix(text, "track") {
			// A "track type=wiggle_0" header settles it; otherwise keep
			// looking at the data lines.
			if strings.Contains(text, "wiggle_0") {
				return true, nil
			}
			continue
		}
		return strings.HasPrefix(text, "fixedStep") || strings.HasPrefix(text, "variableStep"), nil
	}
	if err := scanner.Err(); err != nil {
		return false, pfx.Err(err)
	}

	return false, fmt.Errorf("%s: track file has no data lines", path)
}
