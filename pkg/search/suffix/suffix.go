// Package suffix provides suffix arrays and searches over them.
//
// As everywhere in this module, positions are rune offsets.
package suffix

import (
	"slices"
	"sort"
)

// Array returns the suffix array of x: the starting positions of all
// suffixes of x in lexicographic order. Construction sorts the suffixes
// directly, which is O(n^2 log n) in the worst case but perfectly fine for
// the text sizes this library is used with.
func Array(x string) []int {
	xs := []rune(x)
	sa := make([]int, len(xs))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return slices.Compare(xs[sa[i]:], xs[sa[j]:]) < 0
	})
	return sa
}

// Search returns the positions where p occurs in x, in ascending order,
// using the suffix array sa of x. Two binary searches locate the block of
// suffixes that start with p, so a lookup is O(m log n).
func Search(x string, sa []int, p string) []int {
	xs, ps := []rune(x), []rune(p)
	if len(ps) == 0 || len(ps) > len(xs) {
		return nil
	}

	lo := sort.Search(len(sa), func(i int) bool {
		return comparePrefix(xs[sa[i]:], ps) >= 0
	})
	hi := sort.Search(len(sa), func(i int) bool {
		return comparePrefix(xs[sa[i]:], ps) > 0
	})
	if hi == lo {
		return nil
	}

	positions := make([]int, hi-lo)
	copy(positions, sa[lo:hi])
	sort.Ints(positions)
	return positions
}

// comparePrefix compares a suffix against p, looking only at the first
// len(p) runes. A suffix shorter than p that matches as far as it goes
// compares smaller.
func comparePrefix(suffix, p []rune) int {
	for k := 0; k < len(p); k++ {
		if k == len(suffix) {
			return -1
		}
		switch {
		case suffix[k] < p[k]:
			return -1
		case suffix[k] > p[k]:
			return 1
		}
	}
	return 0
}

// LCPArray returns the longest-common-prefix array for x and its suffix
// array sa: lcp[i] is the length of the longest common prefix of the
// suffixes at sa[i-1] and sa[i], with lcp[0] = 0. Uses Kasai's algorithm,
// O(n).
func LCPArray(x string, sa []int) []int {
	xs := []rune(x)
	n := len(xs)
	lcp := make([]int, n)
	rank := make([]int, n)
	for i, pos := range sa {
		rank[pos] = i
	}

	h := 0
	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := sa[rank[i]-1]
		for i+h < n && j+h < n && xs[i+h] == xs[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}
