// Package gemini implements llm.Completer on Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/nlvx-arena/internal/llm"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.5-flash-lite"

type Client struct {
	apiKey string
	opts   []option.ClientOption
}

func New(apiKey string, opts ...option.ClientOption) *Client {
	return &Client{apiKey: apiKey, opts: opts}
}

func NewFactory(opts ...option.ClientOption) llm.Factory {
	return func(apiKey string) llm.Completer {
		return New(apiKey, opts...)
	}
}

// Complete opens a client for the single call and closes it afterwards.
func (g *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	opts := append([]option.ClientOption{option.WithAPIKey(g.apiKey)}, g.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	modelName := req.Params.Model
	if modelName == "" {
		modelName = DefaultModel
	}

	model := client.GenerativeModel(modelName)
	configure(model, req)

	resp, err := model.GenerateContent(ctx, genai.Text(req.User))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return "", &llm.StatusError{StatusCode: apiErr.Code, Body: apiErr.Body}
		}
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractText(resp)
}

func configure(model *genai.GenerativeModel, req llm.Request) {
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.System)},
	}
	model.SetTemperature(float32(req.Params.Temperature))
	model.SetTopP(float32(req.Params.TopP))
	model.SetMaxOutputTokens(int32(req.Params.MaxTokens))
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", llm.ErrMalformedResponse
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}
