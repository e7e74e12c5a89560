package search

import (
	"github.com/mailund/stralg-go/pkg/search/alphabet"
	"github.com/mailund/stralg-go/pkg/search/measure"
)

// BMH returns a Boyer-Moore-Horspool matcher. The text and pattern are mapped
// onto the alphabet of the text, so the bad-character table is sized to the
// characters that actually occur instead of the whole rune space. A pattern
// containing a rune that never occurs in the text cannot match and yields an
// empty matcher.
//
// Texts whose alphabet exceeds the largest symbol width fall back to KMP.
func BMH(x, p string, opts ...Option) Matcher {
	s := applyOptions(opts)
	if x == "" || p == "" {
		return emptyMatcher{}
	}

	ab := alphabet.New(x)
	width, err := ab.Width()
	if err != nil {
		return KMP(x, p, opts...)
	}
	switch width {
	case alphabet.U8:
		return newBMH[uint8](x, p, ab, s.metric)
	default:
		return newBMH[uint16](x, p, ab, s.metric)
	}
}

func newBMH[S alphabet.Symbol](x, p string, ab *alphabet.Alphabet, metric *measure.Metric) Matcher {
	// x built the alphabet, so its translation cannot fail
	xs, err := alphabet.NewString[S](x, ab)
	if err != nil {
		return emptyMatcher{}
	}
	ps, err := alphabet.NewString[S](p, ab)
	if err != nil {
		return emptyMatcher{}
	}
	if xs.Len() < ps.Len() {
		return emptyMatcher{}
	}
	return &bmhMatcher[S]{x: xs, p: ps, shift: badCharTable(ps), metric: metric}
}

// badCharTable maps every symbol to the Horspool shift: the distance from the
// symbol's rightmost occurrence in p (the final position excluded) to the end
// of the pattern, or the full pattern length for symbols that never occur.
func badCharTable[S alphabet.Symbol](p *alphabet.String[S]) []int {
	m := p.Len()
	table := make([]int, p.Alphabet().Len()+1)
	for i := range table {
		table[i] = m
	}
	for i := 0; i < m-1; i++ {
		table[p.At(i)] = m - i - 1
	}
	return table
}

type bmhMatcher[S alphabet.Symbol] struct {
	x, p   *alphabet.String[S]
	i      int
	shift  []int
	metric *measure.Metric
}

func (bm *bmhMatcher[S]) Next() (int, bool) {
	n, m := bm.x.Len(), bm.p.Len()
	comparisons := 0
	for bm.i <= n-m {
		i := bm.i
		// compare right to left, shift on the window's last character
		k := m - 1
		for k >= 0 && bm.p.At(k) == bm.x.At(i+k) {
			comparisons++
			k--
		}
		if k >= 0 {
			comparisons++
		}
		bm.i += bm.shift[bm.x.At(i+m-1)]
		if k < 0 {
			if bm.metric != nil {
				bm.metric.AddComparisons(comparisons)
				bm.metric.AddOccurrences(1)
			}
			return i, true
		}
	}
	if bm.metric != nil {
		bm.metric.AddComparisons(comparisons)
	}
	return 0, false
}
