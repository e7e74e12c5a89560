package search

import "github.com/mailund/stralg-go/pkg/search/measure"

type settings struct {
	metric *measure.Metric
}

// Option configures a matcher.
type Option func(s *settings)

// WithMetric attaches a metric that records the comparisons and occurrences
// of the matcher. A single metric may be shared between matchers.
func WithMetric(metric *measure.Metric) Option {
	return func(s *settings) {
		s.metric = metric
	}
}

func applyOptions(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
