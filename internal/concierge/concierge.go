// Package concierge is the recipe chat collaborator. It talks to Gemini
// behind a one-method Client port; the caller only ever sees a reply string,
// never an error. Any failure collapses into a fixed fallback line.
package concierge

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	// FallbackBusy answers any API failure.
	FallbackBusy = "The royal concierge is attending to other guests. Please try again shortly."
	// FallbackEmpty answers a successful call that carried no text.
	FallbackEmpty = "The concierge is momentarily unavailable. Please try again."
)

type Client interface {
	Generate(ctx context.Context, userMessage string) (string, error)
}

type Concierge struct {
	Client Client
	Log    *zap.Logger
}

func New(c Client, log *zap.Logger) *Concierge {
	return &Concierge{Client: c, Log: log}
}

// Ask returns the concierge reply, or a fallback string. It never fails.
func (c *Concierge) Ask(ctx context.Context, userMessage string) string {
	reply, err := c.Client.Generate(ctx, userMessage)
	if err != nil {
		c.Log.Warn("concierge request failed", zap.Error(err))
		return FallbackBusy
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackEmpty
	}
	return reply
}
