package matcher

import (
	"fmt"

	"zerohunger/internal/domain"
)

const (
	// DefaultThreshold is the exclusive lower bound a score must exceed to match.
	DefaultThreshold = 0.2
	// DefaultFallback is returned when nothing clears the threshold.
	DefaultFallback = "Sorry, I don’t have an answer to that yet."
)

// Options configures a Matcher.
type Options struct {
	Threshold float64
	Fallback  string
}

// Matcher selects the stored answer whose question is most similar to a query.
// It is immutable after construction.
type Matcher struct {
	vectorizer domain.Vectorizer
	index      *index
	answers    []string
	threshold  float64
	fallback   string
}

// New builds a matcher over pre-computed question vectors. vectors[i] must
// correspond to answers[i]. A zero Options value selects the defaults.
func New(vectorizer domain.Vectorizer, vectors []domain.SparseVector, answers []string, opts Options) (*Matcher, error) {
	if len(vectors) == 0 {
		return nil, domain.ErrEmptyKnowledgeBase
	}
	if len(vectors) != len(answers) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "matcher", fmt.Errorf("%d vectors for %d answers", len(vectors), len(answers)))
	}
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Fallback == "" {
		opts.Fallback = DefaultFallback
	}
	return &Matcher{
		vectorizer: vectorizer,
		index:      newIndex(vectors),
		answers:    append([]string(nil), answers...),
		threshold:  opts.Threshold,
		fallback:   opts.Fallback,
	}, nil
}

// Match projects the query and returns the best stored answer, or the
// fallback when the best score does not exceed the threshold.
func (m *Matcher) Match(query string) domain.MatchResult {
	vec := m.vectorizer.Transform(query)
	idx, score := m.index.best(vec)
	if idx < 0 || score <= m.threshold {
		return domain.MatchResult{Answer: m.fallback, Index: -1, Score: score}
	}
	return domain.MatchResult{Answer: m.answers[idx], Index: idx, Score: score, Matched: true}
}

// Threshold returns the configured exclusive match threshold.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Fallback returns the reply used for unmatched queries.
func (m *Matcher) Fallback() string { return m.fallback }

// Len returns the number of stored questions.
func (m *Matcher) Len() int { return m.index.len() }
