package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultEmbeddingModel is the OpenAI model used for generating embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
	// DefaultChatModel is the OpenAI model used for analysis and memo generation
	DefaultChatModel = openai.GPT4oMini
)

var (
	// ErrNoAPIKey is returned when the OpenAI API key is not set
	ErrNoAPIKey = errors.New("OPENAI_API_KEY environment variable not set")
	// ErrNoChoices is returned when a completion response carries no choices
	ErrNoChoices = errors.New("no completion choices returned")
)

// API defines the subset of the OpenAI client the service uses
type API interface {
	CreateEmbeddings(ctx context.Context, req openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client wraps the OpenAI API client for embeddings and chat completions
type Client struct {
	api            API
	embeddingModel openai.EmbeddingModel
	chatModel      string
}

type Config struct {
	APIKey         string
	EmbeddingModel openai.EmbeddingModel
	ChatModel      string
}

// NewClient creates a new OpenAI client using defaults.
func NewClient(apiKey string) *Client {
	return NewClientWithConfig(Config{APIKey: apiKey})
}

// NewClientWithConfig creates a new OpenAI client with explicit configuration.
func NewClientWithConfig(cfg Config) *Client {
	embeddingModel := cfg.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	return &Client{
		api:            openai.NewClient(cfg.APIKey),
		embeddingModel: embeddingModel,
		chatModel:      chatModel,
	}
}

// NewClientFromEnv creates a new OpenAI client using OPENAI_API_KEY environment variable
func NewClientFromEnv() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return NewClient(apiKey), nil
}

// NewClientWithAPI creates a Client backed by a custom API implementation.
// Used by tests to substitute a fake transport.
func NewClientWithAPI(api API) *Client {
	return &Client{
		api:            api,
		embeddingModel: DefaultEmbeddingModel,
		chatModel:      DefaultChatModel,
	}
}

// Embed generates one embedding per input text, order-preserving. An empty
// batch short-circuits without an API call. Newlines are replaced with
// spaces before submission, as the embeddings endpoint expects.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	normalized := make([]string, len(texts))
	for i, text := range texts {
		normalized[i] = strings.ReplaceAll(text, "\n", " ")
	}

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: normalized,
		Model: c.embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	embeddings := make([][]float32, len(resp.Data))
	for i, item := range resp.Data {
		embeddings[i] = item.Embedding
	}
	return embeddings, nil
}

// Complete issues one chat completion and returns the first choice's
// content. When jsonMode is set, the request constrains the response to a
// JSON object.
func (c *Client) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: temperature,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
