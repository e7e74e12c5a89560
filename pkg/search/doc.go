// Package search provides exact string matching algorithms.
//
// Every algorithm is exposed as a lazy Matcher that reports the starting
// positions of pattern occurrences one at a time, in ascending order. All
// positions are rune offsets, so the algorithms behave the same on ASCII and
// on multi-byte UTF-8 input.
//
// Besides the pull-style matchers, the package offers channel-driven entry
// points for concurrent use: Stream drains a matcher into a channel under a
// context, SearchAll runs one matcher per pattern and fans their results into
// a single channel, and SearchChunks splits a long text into overlapping
// chunks searched in parallel. The first error encountered stops everything.
package search
