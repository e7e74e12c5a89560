package alphabet

import (
	"math"

	"github.com/pkg/errors"
)

// Symbol is a compact character type an alphabet-mapped string stores.
type Symbol interface {
	~uint8 | ~uint16
}

// Maximum alphabet sizes per symbol width. Index 0 is kept for the sentinel.
const (
	MaxSymbols8  = math.MaxUint8 - 1
	MaxSymbols16 = math.MaxUint16 - 2
)

// ErrAlphabetTooLarge is returned when no known symbol width can hold an
// alphabet.
var ErrAlphabetTooLarge = errors.New("alphabet too large for known symbol widths")

// Width is the number of bits needed per symbol for a given alphabet.
type Width int

const (
	// U8 fits alphabets of up to MaxSymbols8 runes.
	U8 Width = iota
	// U16 fits alphabets of up to MaxSymbols16 runes.
	U16
)

// WidthFor returns the symbol width needed for an alphabet of the given size.
func WidthFor(size int) (Width, error) {
	switch {
	case size <= MaxSymbols8:
		return U8, nil
	case size <= MaxSymbols16:
		return U16, nil
	default:
		return 0, errors.Wrapf(ErrAlphabetTooLarge, "%d runes", size)
	}
}

// Width returns the symbol width needed to translate strings over a.
func (a *Alphabet) Width() (Width, error) {
	return WidthFor(a.Len())
}
