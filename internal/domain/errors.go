package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKnowledgeBase = errors.New("empty knowledge base")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyFitted      = errors.New("vectorizer already fitted")
)

// WrapError keeps the semantic kind of an error alongside operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}
