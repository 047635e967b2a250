package knowledge

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"zerohunger/internal/domain"
)

// File is the on-disk shape of a replacement knowledge base.
type File struct {
	Entries []domain.QAPair   `yaml:"entries"`
	Replies map[string]string `yaml:"replies,omitempty"`
}

// LoadFile reads a YAML knowledge file. Replies are optional; when absent the
// compiled lexicon is used.
func LoadFile(path string) ([]domain.QAPair, *Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, domain.WrapError(domain.ErrInvalidInput, "knowledge file "+path, err)
	}
	if len(f.Entries) == 0 {
		return nil, nil, domain.WrapError(domain.ErrEmptyKnowledgeBase, "knowledge file "+path, fmt.Errorf("no entries"))
	}
	for i, e := range f.Entries {
		if strings.TrimSpace(e.Question) == "" || e.Answer == "" {
			return nil, nil, domain.WrapError(domain.ErrInvalidInput, "knowledge file "+path, fmt.Errorf("entry %d has an empty question or answer", i))
		}
	}
	lex := DefaultLexicon()
	if len(f.Replies) > 0 {
		lex = NewLexicon(f.Replies)
	}
	return f.Entries, lex, nil
}
