package assessor

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const defaultOpenAIResponsesURL = "https://api.openai.com/v1/responses"

// OpenAIConfig configures the OpenAI responses endpoint.
type OpenAIConfig struct {
	ResponsesURL string
	APIKey       string
	HTTPClient   *http.Client
}

type openAIProvider struct {
	cfg OpenAIConfig
}

// NewOpenAIProvider builds an OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) Provider {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.ResponsesURL) == "" {
		cfg.ResponsesURL = defaultOpenAIResponsesURL
	}
	return &openAIProvider{cfg: cfg}
}

func (p *openAIProvider) Name() string {
	return ProviderOpenAI
}

func (p *openAIProvider) Generate(ctx context.Context, req Request) (string, error) {
	apiKey := strings.TrimSpace(p.cfg.APIKey)
	if apiKey == "" {
		return "", fmt.Errorf("api key is required")
	}
	if err := validateRequest(req); err != nil {
		return "", err
	}

	body, err := sjson.SetBytes(nil, "model", strings.TrimSpace(req.Model))
	if err == nil {
		body, err = sjson.SetBytes(body, "input", req.Prompt)
	}
	if err == nil && strings.TrimSpace(req.System) != "" {
		body, err = sjson.SetBytes(body, "instructions", req.System)
	}
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ResponsesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	// The key travels only in this header and is never echoed.
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	payload, err := doJSON(p.cfg.HTTPClient, httpReq)
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(payload) {
		return "", fmt.Errorf("decode generate response: invalid json")
	}
	if text := strings.TrimSpace(gjson.GetBytes(payload, "output_text").String()); text != "" {
		return text, nil
	}
	for _, text := range gjson.GetBytes(payload, "output.#.content.#.text|@flatten").Array() {
		if trimmed := strings.TrimSpace(text.String()); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", nil
}
