package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/REBCDR07/marketconnect/internal/config"
)

// SuggestClient calls the external text-suggestion service that rewrites
// product descriptions. When no base URL is configured the client is a
// pass-through and returns the input unchanged.
type SuggestClient interface {
	Improve(ctx context.Context, description string) (string, error)
}

type suggestClientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewSuggestClient(cfg *config.Suggest) SuggestClient {
	return &suggestClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

type suggestRequest struct {
	Description string `json:"description"`
}

type suggestResponse struct {
	Suggestion string `json:"suggestion"`
}

func (c *suggestClientImpl) Improve(ctx context.Context, description string) (string, error) {
	if c.baseURL == "" {
		return description, nil
	}

	body, err := json.Marshal(suggestRequest{Description: description})
	if err != nil {
		return "", fmt.Errorf("marshal suggest request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/suggest-description", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("suggest service returned status %d", resp.StatusCode)
	}

	var res suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode suggest response: %w", err)
	}

	return res.Suggestion, nil
}
