// Package groq implements llm.Completer on Groq's OpenAI-compatible chat
// completion API.
package groq

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/BerylCAtieno/nlvx-arena/internal/llm"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1/"
	DefaultModel   = "llama-3.3-70b-versatile"
)

type Config struct {
	APIKey  string
	BaseURL string
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

type Client struct {
	client *openai.Client
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithMiddleware(captureErrorBody),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	client := openai.NewClient(opts...)
	return &Client{client: &client}
}

// NewFactory returns an llm.Factory that points every completer at baseURL.
func NewFactory(baseURL string) llm.Factory {
	return func(apiKey string) llm.Completer {
		return New(Config{APIKey: apiKey, BaseURL: baseURL})
	}
}

func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	model := req.Params.Model
	if model == "" {
		model = DefaultModel
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(req.Params.Temperature),
		TopP:        openai.Float(req.Params.TopP),
		MaxTokens:   openai.Int(int64(req.Params.MaxTokens)),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 || !resp.Choices[0].JSON.Message.Valid() {
		return "", llm.ErrMalformedResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// captureErrorBody turns any non-2xx reply into an *llm.StatusError holding
// the raw body, before the SDK reshapes it.
func captureErrorBody(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	res, err := next(req)
	if err != nil {
		return res, err
	}
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return res, nil
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream error body: %w", err)
	}
	return nil, &llm.StatusError{StatusCode: res.StatusCode, Body: string(body)}
}
