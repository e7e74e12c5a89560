// Package alphabet maps UTF-8 strings onto compact symbol slices.
//
// A rune takes four bytes in a []rune, which is wasteful for the small
// alphabets most texts use. An Alphabet assigns each distinct rune a dense
// index starting at 1 (index 0 is reserved as a sentinel), and a String holds
// the translated text as uint8 or uint16 symbols with constant-time access.
// Algorithms that index tables by character, such as Boyer-Moore-Horspool,
// size those tables to the alphabet instead of the full rune space.
package alphabet
