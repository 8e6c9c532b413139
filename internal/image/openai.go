package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	imageModel = openai.ImageModelGPTImage1
	imageSize  = openai.ImageGenerateParamsSize1024x1024

	// One bounded attempt; the pipeline falls back rather than retrying.
	generateTimeout = 60 * time.Second
)

// Generator produces PNG bytes for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

type openaiGenerator struct {
	client openai.Client
}

// NewOpenAIGenerator builds an image client for the given API key. Extra
// request options (base URL, HTTP client) are a seam for tests.
func NewOpenAIGenerator(apiKey string, extra ...option.RequestOption) Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: generateTimeout}),
		option.WithMaxRetries(0),
	}
	opts = append(opts, extra...)

	return &openaiGenerator{client: openai.NewClient(opts...)}
}

func (g *openaiGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:  imageModel,
		Prompt: prompt,
		Size:   imageSize,
		N:      openai.Int(1),
	})
	if err != nil {
		return nil, fmt.Errorf("openai image API error: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("no image payload in openai response")
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decoding image payload: %w", err)
	}

	return raw, nil
}
