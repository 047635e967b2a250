package domain

// QAPair is a single knowledge base entry. Answers are returned verbatim.
type QAPair struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// SparseVector holds non-zero weights keyed by vocabulary index.
// Indices are strictly increasing.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no non-zero weight.
func (v SparseVector) IsZero() bool {
	for _, x := range v.Values {
		if x != 0 {
			return false
		}
	}
	return true
}

// Vocabulary maps a term to its column in the feature space.
type Vocabulary map[string]int

// Vectorizer builds a fixed feature space from a corpus and projects text into it.
type Vectorizer interface {
	Name() string
	Fit(corpus []string) (Vocabulary, []SparseVector, error)
	Transform(text string) SparseVector
}

// MatchResult describes the outcome of a similarity lookup.
// Index is -1 when no stored question cleared the threshold.
type MatchResult struct {
	Answer  string
	Index   int
	Score   float64
	Matched bool
}

// ReplySource tells where a reply came from.
type ReplySource string

const (
	SourceLexicon   ReplySource = "lexicon"
	SourceKnowledge ReplySource = "knowledge"
	SourceFallback  ReplySource = "fallback"
)

// Reply is an answer annotated with how it was produced.
type Reply struct {
	Text     string
	Source   ReplySource
	Question string
	Score    float64
}
