package search

// BorderArray computes the border array of the pattern p.
//
// The value at index i is the length of the longest proper prefix of
// p[0..i+1] that is also a suffix of it. For "abracadabra" the result is
// [0 0 0 1 0 1 0 1 2 3 4].
func BorderArray(p string) []int {
	ps := []rune(p)
	ba := make([]int, len(ps))
	j := 0
	for i := 1; i < len(ps); i++ {
		for j > 0 && ps[i] != ps[j] {
			j = ba[j-1]
		}
		if ps[i] == ps[j] {
			j++
		}
		ba[i] = j
	}
	return ba
}

// StrictBorderArray computes the strict border array of the pattern p.
//
// A strict border additionally requires that the character following the
// border differs from the character following the position, which is the
// variant KMP shifts on. For "abracadabra" the result is
// [0 0 0 1 0 1 0 0 0 0 4].
func StrictBorderArray(p string) []int {
	ps := []rune(p)
	ba := BorderArray(p)
	for j := 1; j+1 < len(ba); j++ {
		b := ba[j]
		if b > 0 && ps[b] == ps[j+1] {
			ba[j] = ba[b-1]
		}
	}
	return ba
}

// ZArray computes the Z array of the pattern p.
//
// The value at index i is the length of the longest common prefix of p and
// p[i..]. By convention the value at index 0 is 0, mirroring the proper-prefix
// convention of BorderArray.
func ZArray(p string) []int {
	ps := []rune(p)
	z := make([]int, len(ps))
	l, r := 0, 0
	for i := 1; i < len(ps); i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < len(ps) && ps[z[i]] == ps[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}
