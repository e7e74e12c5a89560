package search

import "github.com/mailund/stralg-go/pkg/search/measure"

type kmpMatcher struct {
	x, p   []rune
	ba     []int
	i, j   int
	metric *measure.Metric
}

// KMP returns a Knuth-Morris-Pratt matcher. It shifts on the strict border
// array, so a mismatched character is never compared against the same pattern
// character twice. It runs in O(n + m).
func KMP(x, p string, opts ...Option) Matcher {
	s := applyOptions(opts)
	xs, ps := []rune(x), []rune(p)
	if len(ps) == 0 || len(xs) < len(ps) {
		return emptyMatcher{}
	}
	return &kmpMatcher{x: xs, p: ps, ba: StrictBorderArray(p), metric: s.metric}
}

func (km *kmpMatcher) Next() (int, bool) {
	return borderScan(km.x, km.p, km.ba, &km.i, &km.j, km.metric)
}
