// Package ai talks to the hosted inference providers behind the chat
// endpoint: Gemini first, OpenRouter as the backup.
package ai

import "context"

// Reply is one provider answer plus the label of where it came from.
type Reply struct {
	Text   string
	Source string
}

// Provider is a single chat-completion backend.
type Provider interface {
	// Complete sends one system prompt + user message exchange and
	// returns the model's text.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)

	// Source labels replies from this provider.
	Source() string

	// Configured reports whether the provider has the credentials it
	// needs. Unconfigured providers fail fast without network I/O.
	Configured() bool
}
