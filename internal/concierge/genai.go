package concierge

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-3-flash-preview"

	systemInstruction = "You are the 'Chaunsa Gold Concierge', a world-class expert on Chaunsa mangoes. " +
		"Provide high-end recipe suggestions, historical facts, and storage tips. " +
		"Keep responses elegant, sophisticated, and helpful."
)

// GenAIClient is the Gemini-backed Client.
type GenAIClient struct {
	client *genai.Client
	model  string
}

func NewGenAIClient(ctx context.Context, apiKey string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIClient{client: client, model: defaultModel}, nil
}

func (c *GenAIClient) Generate(ctx context.Context, userMessage string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userMessage),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// Disabled is the Client used when no API key is configured; every call
// fails so the concierge always answers with its fallback line.
type Disabled struct{}

func (Disabled) Generate(ctx context.Context, userMessage string) (string, error) {
	return "", fmt.Errorf("concierge is not configured")
}
