package search

import "github.com/mailund/stralg-go/pkg/search/measure"

// borderMatcher scans the text with a border array: on a mismatch the pattern
// is shifted to its longest border instead of restarting from scratch.
type borderMatcher struct {
	x, p   []rune
	ba     []int
	i, j   int
	metric *measure.Metric
}

// BorderSearch returns a matcher driven by the border array of the pattern.
// It runs in O(n + m).
func BorderSearch(x, p string, opts ...Option) Matcher {
	s := applyOptions(opts)
	xs, ps := []rune(x), []rune(p)
	if len(ps) == 0 || len(xs) < len(ps) {
		return emptyMatcher{}
	}
	return &borderMatcher{x: xs, p: ps, ba: BorderArray(p), metric: s.metric}
}

func (bm *borderMatcher) Next() (int, bool) {
	pos, ok := borderScan(bm.x, bm.p, bm.ba, &bm.i, &bm.j, bm.metric)
	return pos, ok
}

// borderScan advances through x from position *i with *j pattern characters
// already matched. It is shared by BorderSearch and KMP, which differ only in
// the array they shift on.
func borderScan(x, p []rune, ba []int, i, j *int, metric *measure.Metric) (int, bool) {
	n, m := len(x), len(p)
	comparisons := 0
	for *i < n {
		// shift the pattern until the current character extends a border
		for *j > 0 && x[*i] != p[*j] {
			comparisons++
			*j = ba[*j-1]
		}
		comparisons++
		if x[*i] == p[*j] {
			*j++
		}
		*i++
		if *j == m {
			*j = ba[*j-1]
			if metric != nil {
				metric.AddComparisons(comparisons)
				metric.AddOccurrences(1)
			}
			return *i - m, true
		}
	}
	if metric != nil {
		metric.AddComparisons(comparisons)
	}
	return 0, false
}
