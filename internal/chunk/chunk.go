// Package chunk plans how a text is divided for parallel searching.
package chunk

import "runtime"

// A Span is a half-open range [Start, End) of candidate match positions.
// The searcher of a span must scan `overlap` runes past End so occurrences
// that begin inside the span are found in full.
type Span struct {
	Start, End int
}

// Split divides the candidate start positions of a text of length n into at
// most workers spans. overlap is the number of runes a window extends past a
// start position, i.e. pattern length minus one. workers <= 0 defaults to
// the number of CPUs. Returns nil when no start position exists.
func Split(n, overlap, workers int) []Span {
	starts := n - overlap
	if starts <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > starts {
		workers = starts
	}
	if workers == 1 {
		return []Span{{Start: 0, End: starts}}
	}

	size := (starts + workers - 1) / workers
	spans := make([]Span, 0, workers)
	for start := 0; start < starts; start += size {
		end := start + size
		if end > starts {
			end = starts
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}
