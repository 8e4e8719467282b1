package assessor

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig configures the Gemini generateContent endpoint.
type GeminiConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

type geminiProvider struct {
	cfg GeminiConfig
}

// NewGeminiProvider builds a Gemini provider.
func NewGeminiProvider(cfg GeminiConfig) Provider {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	return &geminiProvider{cfg: cfg}
}

func (p *geminiProvider) Name() string {
	return ProviderGemini
}

func (p *geminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	apiKey := strings.TrimSpace(p.cfg.APIKey)
	if apiKey == "" {
		return "", fmt.Errorf("api key is required")
	}
	if err := validateRequest(req); err != nil {
		return "", err
	}

	body, err := sjson.SetBytes(nil, "contents.0.role", "user")
	if err == nil {
		body, err = sjson.SetBytes(body, "contents.0.parts.0.text", req.Prompt)
	}
	if err == nil && strings.TrimSpace(req.System) != "" {
		body, err = sjson.SetBytes(body, "systemInstruction.parts.0.text", req.System)
	}
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/models/" + url.PathEscape(strings.TrimSpace(req.Model)) + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	// The key travels only in this header and is never echoed.
	httpReq.Header.Set("x-goog-api-key", apiKey)

	payload, err := doJSON(p.cfg.HTTPClient, httpReq)
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(payload) {
		return "", fmt.Errorf("decode generate response: invalid json")
	}
	var parts []string
	for _, part := range gjson.GetBytes(payload, "candidates.0.content.parts.#.text").Array() {
		if text := part.String(); strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "")), nil
}
