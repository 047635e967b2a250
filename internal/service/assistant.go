package service

import (
	"io"
	"log/slog"

	"zerohunger/internal/domain"
	"zerohunger/internal/knowledge"
	"zerohunger/internal/matcher"
	"zerohunger/internal/vectorizer/tfidf"
	"zerohunger/internal/yield"
)

// Options configures Initialize. Zero values select the compiled tables,
// a plain TF-IDF vectorizer and the default threshold and fallback.
type Options struct {
	Pairs      []domain.QAPair
	Lexicon    *knowledge.Lexicon
	Vectorizer domain.Vectorizer
	Threshold  float64
	Fallback   string
	Logger     *slog.Logger
}

// Assistant answers free-text questions. All state is computed by Initialize
// and is read-only afterwards, so one Assistant may serve any number of turns.
type Assistant struct {
	pairs   []domain.QAPair
	lexicon *knowledge.Lexicon
	matcher *matcher.Matcher
	logger  *slog.Logger
}

// Initialize fits the vectorizer over the knowledge base questions. An error
// means the assistant must not serve requests.
func Initialize(opts Options) (*Assistant, error) {
	if opts.Pairs == nil {
		opts.Pairs = knowledge.Default()
	}
	if len(opts.Pairs) == 0 {
		return nil, domain.ErrEmptyKnowledgeBase
	}
	if opts.Lexicon == nil {
		opts.Lexicon = knowledge.DefaultLexicon()
	}
	if opts.Vectorizer == nil {
		opts.Vectorizer = tfidf.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	pairs := append([]domain.QAPair(nil), opts.Pairs...)
	vocab, vectors, err := opts.Vectorizer.Fit(knowledge.Questions(pairs))
	if err != nil {
		return nil, err
	}
	m, err := matcher.New(opts.Vectorizer, vectors, knowledge.Answers(pairs), matcher.Options{
		Threshold: opts.Threshold,
		Fallback:  opts.Fallback,
	})
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("knowledge base fitted",
		"vectorizer", opts.Vectorizer.Name(),
		"questions", len(pairs),
		"vocabulary", len(vocab),
		"phrases", opts.Lexicon.Len(),
		"threshold", m.Threshold(),
	)
	return &Assistant{pairs: pairs, lexicon: opts.Lexicon, matcher: m, logger: opts.Logger}, nil
}

// Respond returns the reply for a single user turn.
func (a *Assistant) Respond(text string) string {
	return a.Explain(text).Text
}

// Explain answers like Respond and reports where the reply came from.
func (a *Assistant) Explain(text string) domain.Reply {
	if reply, ok := a.lexicon.Lookup(text); ok {
		a.logger.Debug("reply", "source", domain.SourceLexicon)
		return domain.Reply{Text: reply, Source: domain.SourceLexicon}
	}
	// The raw text goes to the vectorizer; it lowercases during tokenization.
	res := a.matcher.Match(text)
	if !res.Matched {
		a.logger.Debug("reply", "source", domain.SourceFallback, "score", res.Score)
		return domain.Reply{Text: res.Answer, Source: domain.SourceFallback, Score: res.Score}
	}
	q := a.pairs[res.Index].Question
	a.logger.Debug("reply", "source", domain.SourceKnowledge, "index", res.Index, "question", q, "score", res.Score)
	return domain.Reply{Text: res.Answer, Source: domain.SourceKnowledge, Question: q, Score: res.Score}
}

// EstimateYield validates the inputs and returns the estimated tonnage.
func (a *Assistant) EstimateYield(in yield.Inputs) (float64, error) {
	tons, err := in.Estimate()
	if err != nil {
		a.logger.Warn("yield inputs rejected", "error", err)
		return 0, err
	}
	a.logger.Debug("yield estimated", "crop", in.Crop, "soil", in.Soil, "area", in.Area, "tons", tons)
	return tons, nil
}

// Questions lists the knowledge base questions in order.
func (a *Assistant) Questions() []string { return knowledge.Questions(a.pairs) }
