package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/evidex/ai"
)

// Embedder implements ai.Embedder using OpenAI-compatible embedding APIs.
type Embedder struct {
	embedder       embeddings.Embedder
	maxInputTokens int
	logger         *slog.Logger
}

// NewEmbedder creates a new embedder using the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIKey),
		openai.WithEmbeddingModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder:       embedder,
		maxInputTokens: config.MaxInputTokens,
		logger:         slog.Default().With("component", "openai-embedder"),
	}, nil
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	text = e.truncate(text)

	result, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}

	if len(result) == 0 {
		e.logger.Warn("embedder returned empty result")
		return []float32{}, nil
	}

	return result[0], nil
}

// EmbedTexts generates vector embeddings for multiple text strings.
// Each text is truncated to the model's input limit before submission.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts))

	truncated := make([]string, len(texts))
	for i, text := range texts {
		truncated[i] = e.truncate(text)
	}

	result, err := e.embedder.EmbedDocuments(ctx, truncated)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, err
	}

	return result, nil
}

// truncate cuts text to the first maxInputTokens whitespace-delimited words.
// Word count is an approximation of the model's token count; the loss is
// deliberate and preferred over a hard error.
func (e *Embedder) truncate(text string) string {
	words := strings.Fields(text)
	if len(words) <= e.maxInputTokens {
		return text
	}

	e.logger.Warn("text too long, truncating", "tokens", len(words), "limit", e.maxInputTokens)
	return strings.Join(words[:e.maxInputTokens], " ")
}
