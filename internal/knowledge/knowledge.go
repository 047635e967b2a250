// Package knowledge holds the compiled question/answer tables and the small-talk
// lexicon, plus an optional YAML file format that replaces them at startup.
package knowledge

import "zerohunger/internal/domain"

// Answers are kept as interpreted strings so trailing spaces and list
// formatting survive editors and gofmt untouched.
var defaultPairs = []domain.QAPair{
	{
		Question: "What is zero hunger?",
		Answer:   "Zero Hunger is SDG Goal 2, aiming to end hunger and promote sustainable agriculture.",
	},
	{
		Question: "What is crop rotation?",
		Answer: "\n- Crop rotation is the practice of growing different types of crops in the same field in a planned sequence over time" +
			"\n- It supports sustainable farming and helps achieve Zero Hunger by improving food production.",
	},
	{
		Question: "How to reduce food waste?",
		Answer: "Ways to Reduce Food Waste:" +
			"\n- Plan meals and buy only what you need  " +
			"\n- Store food properly  " +
			"\n- Use leftovers  " +
			"\n- Understand expiry dates  " +
			"\n- Serve smaller portions  " +
			"\n- Compost food scraps  " +
			"\n- Donate extra food  " +
			"\n" +
			"\n    Reducing food waste helps will fight hunger and protect the planet.",
	},
	{
		Question: "What is organic farming?",
		Answer:   "A method of farming that uses natural processes and organic inputs (like compost, manure, and biological pest control) to grow food without synthetic chemicals or genetically modified organisms (GMOs), aiming to produce healthy, sustainable, and nutritious food.",
	},
	{
		Question: "Why is hunger still a problem?",
		Answer: "Hunger is still a problem because of: " +
			"\n- Poverty" +
			"\n- Food waste" +
			"\n- Climate change" +
			"\n- Conflicts and wars" +
			"\n- Poor transport and storage" +
			"\n- Lack of education.",
	},
	{
		Question: "How can AI help in farming?",
		Answer:   "AI can help with crop prediction, soil analysis, and pest detection.",
	},
	{
		Question: "How can farmers improve yield?",
		Answer:   "By using proper irrigation, fertilization, crop rotation, and tech-based solutions.",
	},
	{
		Question: "What are sustainable farming practices?",
		Answer:   "Using compost, reducing chemical use, and conserving water are sustainable methods.",
	},
}

// Default returns a copy of the compiled knowledge base in its canonical order.
func Default() []domain.QAPair {
	return append([]domain.QAPair(nil), defaultPairs...)
}

// Questions returns the questions of pairs, preserving order.
func Questions(pairs []domain.QAPair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.Question
	}
	return out
}

// Answers returns the answers of pairs, preserving order.
func Answers(pairs []domain.QAPair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.Answer
	}
	return out
}
