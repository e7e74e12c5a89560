package alphabet

// An Alphabet is the set of runes a text is drawn from, each mapped to a
// dense index. Index 0 is reserved as a sentinel and never assigned, so the
// first rune maps to 1.
type Alphabet struct {
	runes   []rune
	indices map[rune]int
}

// New builds an alphabet from the runes of s, keeping the order of first
// appearance and ignoring duplicates.
func New(s string) *Alphabet {
	return FromStrings(s)
}

// FromStrings builds an alphabet from the runes of every given string,
// keeping the order of first appearance across all of them.
func FromStrings(strs ...string) *Alphabet {
	a := &Alphabet{indices: make(map[rune]int)}
	for _, s := range strs {
		for _, r := range s {
			if _, ok := a.indices[r]; ok {
				continue
			}
			a.runes = append(a.runes, r)
			a.indices[r] = len(a.runes) // first assigned index is 1
		}
	}
	return a
}

// Contains reports whether r is part of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.indices[r]
	return ok
}

// Index returns the index of r, or ok == false when r is not in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	idx, ok := a.indices[r]
	return idx, ok
}

// Rune returns the rune mapped to the given index. It is the inverse of
// Index; the sentinel index 0 has no rune.
func (a *Alphabet) Rune(idx int) (rune, bool) {
	if idx < 1 || idx > len(a.runes) {
		return 0, false
	}
	return a.runes[idx-1], true
}

// Len returns the number of runes in the alphabet, excluding the sentinel.
func (a *Alphabet) Len() int {
	return len(a.runes)
}
