package search

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrAlgorithmMustBeSet is returned by the concurrent entry points when no
// algorithm is given.
var ErrAlgorithmMustBeSet = errors.New("algorithm must be set")

type errorChans struct {
	mu   sync.Mutex
	list []*errorChan
}

func (ec *errorChans) add(errChan *errorChan) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.list = append(ec.list, errChan)
}

// errorChan carries the failure of one pattern's search, tagged with the
// pattern so the merged error says which search failed.
type errorChan struct {
	c       <-chan error
	pattern string
}

func newErrorChan(pattern string, c <-chan error) *errorChan {
	return &errorChan{
		c:       c,
		pattern: pattern,
	}
}

// mergeErrors merges multiple channels of errors.
// Based on https://blog.golang.org/pipelines.
func mergeErrors(cs ...*errorChan) <-chan error {
	var wg sync.WaitGroup
	// The output channel must have capacity for one error per input channel
	// so it never blocks, even when waitForSearches returns early.
	out := make(chan error, len(cs))

	output := func(c *errorChan) {
		defer wg.Done()
		if c.c == nil {
			return
		}
		for n := range c.c {
			out <- errors.Wrapf(n, "pattern %q", c.pattern)
		}
	}
	wg.Add(len(cs))
	for _, c := range cs {
		go output(c)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// waitForSearches waits for results from all error channels.
// It returns early on the first error.
func waitForSearches(errs ...*errorChan) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}

	return nil
}
