// Package measure collects statistics about matcher runs.
package measure

import (
	"fmt"
	"sync"
	"time"
)

// Metric accumulates the work done by one or more matchers. It is safe for
// concurrent use, so a single metric can be shared by the goroutines of a
// chunked search.
type Metric struct {
	mu          sync.Mutex
	comparisons int64
	occurrences int64
	elapsed     time.Duration
}

// AddComparisons records n symbol comparisons.
func (m *Metric) AddComparisons(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comparisons += int64(n)
}

// AddOccurrences records n reported matches.
func (m *Metric) AddOccurrences(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.occurrences += int64(n)
}

// AddElapsed records time spent searching.
func (m *Metric) AddElapsed(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elapsed += d
}

// Comparisons returns the number of symbol comparisons recorded so far.
func (m *Metric) Comparisons() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.comparisons
}

// Occurrences returns the number of matches recorded so far.
func (m *Metric) Occurrences() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.occurrences
}

// Elapsed returns the accumulated search time.
func (m *Metric) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

func (m *Metric) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("%d comparisons, %d occurrences, %s", m.comparisons, m.occurrences, round(m.elapsed))
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Minute)
	case d > time.Minute:
		d = d.Round(time.Second)
	case d > time.Second:
		d = d.Round(time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(time.Microsecond)
	}
	return d
}
