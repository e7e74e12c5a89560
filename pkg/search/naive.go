package search

import "github.com/mailund/stralg-go/pkg/search/measure"

type naiveMatcher struct {
	x, p   []rune
	i      int
	metric *measure.Metric
}

// Naive returns a matcher that checks the pattern against every position of
// the text. Worst case O((n-m+1)*m), best case O(n-m+1).
func Naive(x, p string, opts ...Option) Matcher {
	s := applyOptions(opts)
	xs, ps := []rune(x), []rune(p)
	if len(ps) == 0 || len(xs) < len(ps) {
		return emptyMatcher{}
	}
	return &naiveMatcher{x: xs, p: ps, metric: s.metric}
}

func (nm *naiveMatcher) Next() (int, bool) {
	n, m := len(nm.x), len(nm.p)
	comparisons := 0
	for nm.i <= n-m {
		i := nm.i
		nm.i++
		j := 0
		for j < m && nm.x[i+j] == nm.p[j] {
			comparisons++
			j++
		}
		if j < m {
			// count the mismatch that ended the inner loop
			comparisons++
		}
		if j == m {
			if nm.metric != nil {
				nm.metric.AddComparisons(comparisons)
				nm.metric.AddOccurrences(1)
			}
			return i, true
		}
	}
	if nm.metric != nil {
		nm.metric.AddComparisons(comparisons)
	}
	return 0, false
}
