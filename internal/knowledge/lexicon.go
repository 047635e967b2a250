package knowledge

import "strings"

var defaultReplies = map[string]string{
	"hi":        "Hello, How can I help you? 👋",
	"hello":     "Hi there! How can I assist you today?",
	"hey":       "Hey! Ask me anything about farming or hunger-related topics.",
	"thanks":    "You're welcome! 😊",
	"thank you": "You're welcome! 😊",
	"ok":        "Alright! Let me know if you have more questions.",
	"okay":      "Okay! I'm here if you need anything else.",
	"bye":       "bye! 👋 Stay aware and support Zero Hunger.",
	"goodbye":   "Goodbye! 👋 Stay aware and support Zero Hunger.",
}

// Lexicon maps short canonical phrases to literal replies.
type Lexicon struct {
	replies map[string]string
}

// NewLexicon copies replies, normalizing each key.
func NewLexicon(replies map[string]string) *Lexicon {
	m := make(map[string]string, len(replies))
	for k, v := range replies {
		m[Normalize(k)] = v
	}
	return &Lexicon{replies: m}
}

// DefaultLexicon returns the compiled small-talk replies.
func DefaultLexicon() *Lexicon { return NewLexicon(defaultReplies) }

// Lookup returns the reply for text after normalization. Only exact matches count.
func (l *Lexicon) Lookup(text string) (string, bool) {
	reply, ok := l.replies[Normalize(text)]
	return reply, ok
}

// Len returns the number of phrases.
func (l *Lexicon) Len() int { return len(l.replies) }

// Normalize lowercases text and strips surrounding whitespace.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
