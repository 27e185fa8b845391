package ai

import (
	"context"
	"log/slog"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

// Gateway runs the ordered provider fallback: try the primary once, then
// the secondary once, then give up. No retries beyond the two attempts.
type Gateway struct {
	primary   Provider
	secondary Provider
}

// NewGateway wires the fallback chain. Either provider may be nil or
// unconfigured; it is simply skipped.
func NewGateway(primary, secondary Provider) *Gateway {
	return &Gateway{primary: primary, secondary: secondary}
}

// GetResponse returns the first provider's answer that succeeds, tagged
// with its source label. When both fail the last error is returned; the
// caller decides what degraded text to show.
func (g *Gateway) GetResponse(ctx context.Context, systemPrompt, userMessage string) (*Reply, error) {
	var lastErr error = entity.ErrProviderNotConfigured

	if g.primary != nil && g.primary.Configured() {
		text, err := g.primary.Complete(ctx, systemPrompt, userMessage)
		if err == nil {
			return &Reply{Text: text, Source: g.primary.Source()}, nil
		}
		slog.Warn("primary ai provider failed",
			slog.String("source", g.primary.Source()),
			slog.Any("error", err))
		lastErr = err
	}

	if g.secondary != nil && g.secondary.Configured() {
		text, err := g.secondary.Complete(ctx, systemPrompt, userMessage)
		if err == nil {
			return &Reply{Text: text, Source: g.secondary.Source()}, nil
		}
		slog.Warn("secondary ai provider failed",
			slog.String("source", g.secondary.Source()),
			slog.Any("error", err))
		lastErr = err
	}

	return nil, lastErr
}
