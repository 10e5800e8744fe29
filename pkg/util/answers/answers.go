package answers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnanswered is returned by a Provider that holds no answer for a question.
var ErrUnanswered = errors.New("question has no answer")

// Question is a yes/no question a check may need answered before it can decide.
// Scope and Key address the answer in an answer file:
//
//	[confirm_upgrade_for_saphana_version]
//	confirm = true
type Question struct {
	Scope       string
	Key         string
	Label       string
	Description string
	Reason      string
}

// String returns the scope.key address of the question.
func (q Question) String() string {
	return q.Scope + "." + q.Key
}

// Provider answers yes/no questions.
type Provider interface {
	// Answer returns the answer to q, or ErrUnanswered when the provider has none.
	Answer(ctx context.Context, q Question) (bool, error)
}

// FileStore answers questions from a TOML answer file, one table per scope.
type FileStore struct {
	answers map[string]map[string]any
}

// NewFileStore parses answer file content.
func NewFileStore(data []byte) (*FileStore, error) {
	answers := make(map[string]map[string]any)
	if err := toml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parsing answer file: %w", err)
	}

	return &FileStore{answers: answers}, nil
}

// LoadFileStore reads and parses the answer file at path.
// A missing file yields an empty store.
func LoadFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &FileStore{answers: map[string]map[string]any{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading answer file %s: %w", path, err)
	}

	return NewFileStore(data)
}

// Answer looks up q.Scope / q.Key. Boolean values are taken as is; the strings
// "true"/"yes"/"false"/"no" are accepted too.
func (s *FileStore) Answer(_ context.Context, q Question) (bool, error) {
	scope, ok := s.answers[q.Scope]
	if !ok {
		return false, ErrUnanswered
	}

	value, ok := scope[q.Key]
	if !ok {
		return false, ErrUnanswered
	}

	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "true", "True", "yes", "y":
			return true, nil
		case "false", "False", "no", "n":
			return false, nil
		}
	}

	return false, fmt.Errorf("answer %s has unsupported value %v", q, value)
}

// Chain asks each provider in turn and returns the first answer found.
type Chain []Provider

// Answer implements Provider.
func (c Chain) Answer(ctx context.Context, q Question) (bool, error) {
	for _, p := range c {
		if p == nil {
			continue
		}

		answer, err := p.Answer(ctx, q)
		if errors.Is(err, ErrUnanswered) {
			continue
		}

		return answer, err
	}

	return false, ErrUnanswered
}
