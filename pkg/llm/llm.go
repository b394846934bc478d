package llm

import (
	"context"
	"errors"
	"strings"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrEmptyCompletion = errors.New("llm: empty completion")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single chat completion: a system instruction followed by
// alternating turns, the last of which is the user's.
type Request struct {
	System      string
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// ICompleter is a black-box text generator. Implementations return the
// completion text unmodified.
type ICompleter interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// Checked rejects blank completions so callers can treat them like any other
// provider failure.
func Checked(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
