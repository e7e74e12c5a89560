package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailund/stralg-go/pkg/search"
)

var algorithms = map[string]search.Algorithm{
	"naive":  search.Naive,
	"border": search.BorderSearch,
	"kmp":    search.KMP,
	"bmh":    search.BMH,
}

func TestSearch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x    string
		p    string
		want []int
	}{
		{name: "empty text", x: "", p: "abr", want: nil},
		{name: "empty pattern", x: "abracadabra", p: "", want: nil},
		{name: "two occurrences", x: "abracadabra", p: "abr", want: []int{0, 7}},
		{name: "overlapping occurrences", x: "aaaaa", p: "aa", want: []int{0, 1, 2, 3}},
		{name: "single occurrence", x: "hello", p: "ll", want: []int{2}},
		{name: "pattern longer than text", x: "abracadabra", p: "abracadabracadabra", want: nil},
		{name: "pattern with character not in text", x: "abracadabra", p: "abrx", want: nil},
		{name: "pattern equals text", x: "abracadabra", p: "abracadabra", want: []int{0}},
		{name: "multi byte runes", x: "héllo héllo", p: "héllo", want: []int{0, 6}},
	}

	for algoName, algo := range algorithms {
		algoName, algo := algoName, algo
		for _, tc := range cases {
			tc := tc
			t.Run(algoName+"/"+tc.name, func(t *testing.T) {
				t.Parallel()
				got := search.Positions(algo(tc.x, tc.p))
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

func TestSearchWideAlphabet(t *testing.T) {
	t.Parallel()

	// more distinct runes than a byte-wide symbol can hold
	filler := make([]rune, 600)
	for i := range filler {
		filler[i] = rune(0x4E00 + i)
	}
	p := string(filler[:3])
	x := string(filler) + p + string(filler)

	want := search.Positions(search.Naive(x, p))
	assert.Equal(t, []int{0, 600, 603}, want)
	for algoName, algo := range algorithms {
		got := search.Positions(algo(x, p))
		assert.Equal(t, want, got, "algorithm %s", algoName)
	}
}

func TestSearchAlgorithmsAgree(t *testing.T) {
	t.Parallel()

	x := "mississippi mississippi mississippi"
	for _, p := range []string{"ss", "issi", "mississippi", "ppi ", "q"} {
		want := search.Positions(search.Naive(x, p))
		for algoName, algo := range algorithms {
			got := search.Positions(algo(x, p))
			assert.Equal(t, want, got, "algorithm %s, pattern %q", algoName, p)
		}
	}
}
