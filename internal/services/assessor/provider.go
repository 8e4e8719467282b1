package assessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Provider names accepted by NewProvider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// errorBodyLimit caps how much of a failed response body is kept in errors.
const errorBodyLimit = 4096

// ErrUnavailable indicates that no provider is configured.
var ErrUnavailable = errors.New("assessor provider is not configured")

// Request is one generation call.
type Request struct {
	Model  string
	System string
	Prompt string
}

// Provider generates a completion for a request.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// ProviderConfig selects and configures a provider.
type ProviderConfig struct {
	// Name is ProviderGemini or ProviderOpenAI.
	Name string
	// APIKey authenticates against the provider; empty yields an
	// unavailable provider.
	APIKey string
	// BaseURL overrides the provider endpoint, mainly for tests and proxies.
	BaseURL    string
	HTTPClient *http.Client
}

// NewProvider builds the provider named by cfg.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Name))
	if strings.TrimSpace(cfg.APIKey) == "" {
		return unavailableProvider{name: name}, nil
	}
	switch name {
	case "", ProviderGemini:
		return NewGeminiProvider(GeminiConfig{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey, HTTPClient: cfg.HTTPClient}), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(OpenAIConfig{ResponsesURL: cfg.BaseURL, APIKey: cfg.APIKey, HTTPClient: cfg.HTTPClient}), nil
	default:
		return nil, fmt.Errorf("unknown assessor provider %q", cfg.Name)
	}
}

type unavailableProvider struct {
	name string
}

func (p unavailableProvider) Name() string {
	if p.name == "" {
		return "unavailable"
	}
	return p.name
}

func (unavailableProvider) Generate(context.Context, Request) (string, error) {
	return "", ErrUnavailable
}

func validateRequest(req Request) error {
	if strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	return nil
}

// doJSON posts body and returns the response payload of a 2xx reply.
func doJSON(client *http.Client, req *http.Request) ([]byte, error) {
	req.Header.Set("Content-Type", "application/json")
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, err := io.ReadAll(io.LimitReader(res.Body, errorBodyLimit))
		if err != nil {
			return nil, fmt.Errorf("read generate error body: %w", err)
		}
		return nil, fmt.Errorf("generate request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read generate response: %w", err)
	}
	return payload, nil
}
