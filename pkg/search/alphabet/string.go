package alphabet

import "github.com/pkg/errors"

// ErrRuneNotInAlphabet is returned when translating a string that contains a
// rune the alphabet does not know.
var ErrRuneNotInAlphabet = errors.New("rune not in alphabet")

// A String is a text translated into alphabet symbols, giving constant-time
// access to characters without spending four bytes per rune.
type String[S Symbol] struct {
	alphabet *Alphabet
	symbols  []S
}

// NewString translates s over the given alphabet. It fails with
// ErrRuneNotInAlphabet if s contains a rune outside the alphabet. The caller
// is responsible for picking a symbol width that fits, see Alphabet.Width.
func NewString[S Symbol](s string, a *Alphabet) (*String[S], error) {
	symbols, err := Translate[S](s, a)
	if err != nil {
		return nil, err
	}
	return &String[S]{alphabet: a, symbols: symbols}, nil
}

// Translate maps the runes of s to their alphabet indices.
func Translate[S Symbol](s string, a *Alphabet) ([]S, error) {
	symbols := make([]S, 0, len(s))
	for _, r := range s {
		idx, ok := a.indices[r]
		if !ok {
			return nil, errors.Wrapf(ErrRuneNotInAlphabet, "%q", r)
		}
		symbols = append(symbols, S(idx))
	}
	return symbols, nil
}

// Alphabet returns the alphabet the string was translated with.
func (s *String[S]) Alphabet() *Alphabet {
	return s.alphabet
}

// Len returns the number of symbols in the string.
func (s *String[S]) Len() int {
	return len(s.symbols)
}

// At returns the symbol at position i.
func (s *String[S]) At(i int) S {
	return s.symbols[i]
}
