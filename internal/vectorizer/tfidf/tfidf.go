package tfidf

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"zerohunger/internal/domain"
)

// Vectorizer implements a TF-IDF feature space over a fixed corpus.
// The vocabulary and IDF values are computed once by Fit and never change.
type Vectorizer struct {
	vocabulary   domain.Vocabulary
	idf          []float64
	fitted       bool
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// Option customizes a Vectorizer.
type Option func(*Vectorizer)

// WithStopwords drops common English function words before weighting.
func WithStopwords() Option {
	return func(v *Vectorizer) { v.stopwords = defaultStopwords() }
}

// New creates an unfitted TF-IDF vectorizer.
func New(opts ...Option) *Vectorizer {
	v := &Vectorizer{
		vocabulary:   make(domain.Vocabulary),
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}_]{2,}`),
		stopwords:    map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Name returns the identifier of this vectorizer implementation.
func (v *Vectorizer) Name() string { return "tfidf" }

// Fit builds the vocabulary and IDF values from the corpus and returns one
// vector per corpus entry, in corpus order.
func (v *Vectorizer) Fit(corpus []string) (domain.Vocabulary, []domain.SparseVector, error) {
	if v.fitted {
		return nil, nil, domain.ErrAlreadyFitted
	}
	if len(corpus) == 0 {
		return nil, nil, domain.WrapError(domain.ErrEmptyKnowledgeBase, "tfidf fit", errors.New("empty corpus"))
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range v.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return nil, nil, domain.WrapError(domain.ErrEmptyKnowledgeBase, "tfidf fit", errors.New("no tokens found in corpus"))
	}
	v.vocabulary = make(domain.Vocabulary, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.fitted = true

	vectors := make([]domain.SparseVector, len(corpus))
	for i, text := range corpus {
		vectors[i] = v.Transform(text)
	}
	return v.Vocabulary(), vectors, nil
}

// Vocabulary returns a copy of the fitted vocabulary.
func (v *Vectorizer) Vocabulary() domain.Vocabulary {
	out := make(domain.Vocabulary, len(v.vocabulary))
	for term, idx := range v.vocabulary {
		out[term] = idx
	}
	return out
}

// Dimension returns the size of the feature space.
func (v *Vectorizer) Dimension() int { return len(v.idf) }

// Transform projects text into the fitted feature space. Unknown terms are
// ignored, so text made only of unknown terms yields the zero vector.
func (v *Vectorizer) Transform(text string) domain.SparseVector {
	if !v.fitted {
		return domain.SparseVector{}
	}
	tf := make(map[int]int)
	for _, tok := range v.tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
		}
	}
	if len(tf) == 0 {
		return domain.SparseVector{}
	}
	indices := make([]int, 0, len(tf))
	for idx := range tf {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	norm := 0.0
	for i, idx := range indices {
		values[i] = float64(tf[idx]) * v.idf[idx]
		norm += values[i] * values[i]
	}
	// L2 normalize
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range values {
			values[i] /= norm
		}
	}
	return domain.SparseVector{Indices: indices, Values: values}
}

func (v *Vectorizer) tokenize(text string) []string {
	raw := v.tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := v.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
