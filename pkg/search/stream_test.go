package search_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailund/stralg-go/pkg/search"
	"github.com/mailund/stralg-go/pkg/search/measure"
)

func TestStream(t *testing.T) {
	t.Parallel()

	out := make(chan int)
	done := make(chan struct{})
	var got []int
	go func() {
		defer close(done)
		for pos := range out {
			got = append(got, pos)
		}
	}()

	err := search.Stream(context.Background(), search.KMP("abracadabra", "abr"), out)
	close(out)
	<-done

	require.NoError(t, err)
	assert.Equal(t, []int{0, 7}, got)
}

func TestStreamCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// an unbuffered channel nobody reads: only cancellation can end this
	out := make(chan int)
	err := search.Stream(ctx, search.KMP("abracadabra", "abr"), out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchAll(t *testing.T) {
	t.Parallel()

	out := make(chan search.Match)
	done := make(chan struct{})
	var got []search.Match
	go func() {
		defer close(done)
		for match := range out {
			got = append(got, match)
		}
	}()

	err := search.SearchAll(context.Background(), search.KMP, "abracadabra", []string{"abr", "ra"}, out)
	<-done

	require.NoError(t, err)
	assert.ElementsMatch(t, []search.Match{
		{Pattern: "abr", Pos: 0},
		{Pattern: "abr", Pos: 7},
		{Pattern: "ra", Pos: 2},
		{Pattern: "ra", Pos: 9},
	}, got)
}

func TestSearchAllNilAlgorithm(t *testing.T) {
	t.Parallel()

	out := make(chan search.Match)
	err := search.SearchAll(context.Background(), nil, "abracadabra", []string{"abr"}, out)
	assert.ErrorIs(t, err, search.ErrAlgorithmMustBeSet)
	_, open := <-out
	assert.False(t, open)
}

func TestSearchAllCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// nobody drains out, so the searches can only end through the context
	out := make(chan search.Match)
	err := search.SearchAll(ctx, search.KMP, "abracadabra", []string{"abr"}, out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchChunks(t *testing.T) {
	t.Parallel()

	x := strings.Repeat("abracadabra", 100)
	for _, p := range []string{"abr", "aa", "abracadabra", "raab"} {
		want := search.Positions(search.KMP(x, p))
		for _, workers := range []int{0, 1, 2, 3, 7} {
			got, err := search.SearchChunks(context.Background(), search.KMP, x, p, workers)
			require.NoError(t, err)
			assert.Equal(t, want, got, "pattern %q, %d workers", p, workers)
		}
	}
}

func TestSearchChunksEmptyPattern(t *testing.T) {
	t.Parallel()

	got, err := search.SearchChunks(context.Background(), search.KMP, "abracadabra", "", 4)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSearchChunksSharedMetric(t *testing.T) {
	t.Parallel()

	metric := &measure.Metric{}
	x := strings.Repeat("aab", 50)
	got, err := search.SearchChunks(context.Background(), search.Naive, x, "aab", 4, search.WithMetric(metric))
	require.NoError(t, err)
	assert.Len(t, got, 50)
	assert.EqualValues(t, 50, metric.Occurrences())
	assert.Greater(t, metric.Comparisons(), int64(0))
}
