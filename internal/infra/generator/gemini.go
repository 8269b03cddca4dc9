// Package generator provides the concrete ContentGenerator implementation
// backed by the Gemini API.
package generator

import (
	"context"

	"google.golang.org/genai"

	"quill/config"
	"quill/internal/domain/service"
)

// geminiGenerator is a concrete implementation of the ContentGenerator
// interface using the Gemini API.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator is the constructor for geminiGenerator. The returned
// generator is stateless per request; the underlying client manages its own
// connection pool.
func NewGeminiGenerator(ctx context.Context, cfg *config.Config) (service.ContentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Generator.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &geminiGenerator{
		client: client,
		model:  cfg.Generator.Model,
	}, nil
}

// Complete sends one prompt to the configured model and returns its raw text
// reply. The reply is not validated or post-processed here; the prompt itself
// carries all formatting constraints.
func (g *geminiGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
