package search

// A Matcher reports successive occurrences of a pattern in a text.
// Positions are rune offsets and strictly ascending.
type Matcher interface {
	// Next returns the position of the next occurrence.
	// It returns ok == false when there are no more occurrences.
	Next() (pos int, ok bool)
}

// An Algorithm builds a matcher for a pattern over a text.
type Algorithm func(x, p string, opts ...Option) Matcher

// Positions drains m and returns every remaining occurrence.
func Positions(m Matcher) []int {
	var positions []int
	for {
		pos, ok := m.Next()
		if !ok {
			return positions
		}
		positions = append(positions, pos)
	}
}

// emptyMatcher is returned when no occurrence is possible, for instance when
// the pattern is empty or longer than the text.
type emptyMatcher struct{}

func (emptyMatcher) Next() (int, bool) { return 0, false }
