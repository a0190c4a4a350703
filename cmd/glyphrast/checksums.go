package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// readChecksums reads a "<glyph_index> <checksum>" per line file.
// A missing file yields an empty map, not an error.
func readChecksums(path string) (map[int]uint32, error) {
	sums := make(map[int]uint32)
	f, err := os.Open(path) //nolint:gosec // path derives from the font file argument
	if err != nil {
		if os.IsNotExist(err) {
			return sums, nil
		}
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var idx int
		var sum uint32
		if _, err := fmt.Sscanf(line, "%d %d", &idx, &sum); err != nil {
			return nil, fmt.Errorf("bad checksum line %q: %w", line, err)
		}
		sums[idx] = sum
	}
	return sums, sc.Err()
}

// writeChecksums writes the map sorted by glyph index.
func writeChecksums(path string, sums map[int]uint32) error {
	f, err := os.Create(path) //nolint:gosec // path derives from the font file argument
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	indices := make([]int, 0, len(sums))
	for idx := range sums {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	w := bufio.NewWriter(f)
	for _, idx := range indices {
		if _, err := fmt.Fprintf(w, "%d %d\n", idx, sums[idx]); err != nil {
			return err
		}
	}
	return w.Flush()
}
