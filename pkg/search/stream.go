package search

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mailund/stralg-go/internal/chunk"
)

// A Match pairs a pattern with a position where it occurs.
type Match struct {
	Pattern string
	Pos     int
}

// Stream drains m into out. It stops early when ctx is cancelled and returns
// the context error. The channel is not closed; that is the caller's job.
func Stream(ctx context.Context, m Matcher, out chan<- int) error {
	for {
		pos, ok := m.Next()
		if !ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "search interrupted")
		case out <- pos:
		}
	}
}

// SearchAll searches x for every pattern concurrently, one goroutine per
// pattern, and sends all matches to out. The channel is closed when every
// search has finished. The first error cancels the remaining searches and is
// returned, wrapped with the pattern it belongs to; the caller must keep
// draining out until it closes.
func SearchAll(ctx context.Context, algo Algorithm, x string, patterns []string, out chan<- Match) error {
	if algo == nil {
		close(out)
		return ErrAlgorithmMustBeSet
	}

	dCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errcList := &errorChans{}
	var wg sync.WaitGroup
	for _, p := range patterns {
		errC := make(chan error, 1)
		errcList.add(newErrorChan(p, errC))
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			defer close(errC)
			m := algo(x, p)
			for {
				pos, ok := m.Next()
				if !ok {
					return
				}
				select {
				case <-dCtx.Done():
					errC <- dCtx.Err()
					return
				case out <- Match{Pattern: p, Pos: pos}:
				}
			}
		}(p)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return waitForSearches(errcList.list...)
}

// SearchChunks splits x into spans of candidate start positions and searches
// them concurrently, scanning len(p)-1 runes past each span so no occurrence
// straddling a boundary is lost. The result equals the sequential match set,
// in ascending order. workers <= 0 means one worker per CPU. Options are
// passed to every chunk's matcher; a shared metric is safe, occurrence
// counts included, since border-straddling duplicates never match twice.
func SearchChunks(ctx context.Context, algo Algorithm, x, p string, workers int, opts ...Option) ([]int, error) {
	if algo == nil {
		return nil, ErrAlgorithmMustBeSet
	}
	xs, ps := []rune(x), []rune(p)
	if len(ps) == 0 || len(xs) < len(ps) {
		return nil, nil
	}

	spans := chunk.Split(len(xs), len(ps)-1, workers)
	results := make([][]int, len(spans))

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(len(spans))
	for spanIdx, span := range spans {
		spanIdx, span := spanIdx, span
		errGrp.Go(func() error {
			if err := dCtx.Err(); err != nil {
				return errors.Wrapf(err, "chunk %d", spanIdx)
			}
			end := span.End + len(ps) - 1
			if end > len(xs) {
				end = len(xs)
			}
			m := algo(string(xs[span.Start:end]), p, opts...)
			for {
				pos, ok := m.Next()
				if !ok {
					return nil
				}
				// occurrences starting past the span belong to the next chunk
				if span.Start+pos < span.End {
					results[spanIdx] = append(results[spanIdx], span.Start+pos)
				}
			}
		})
	}
	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	var positions []int
	for _, r := range results {
		positions = append(positions, r...)
	}
	return positions, nil
}
