package shorten

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no upstream API key is set
var ErrNotConfigured = errors.New("KUTT_API_KEY is not configured")

var schemeRe = regexp.MustCompile(`^https?://`)

// Client calls the Kutt link-shortening API
type Client struct {
	baseURL     string
	apiKey      string
	shortDomain string
	httpClient  *http.Client
}

// NewClient creates a shortening client. An empty apiKey is allowed;
// Shorten then fails with ErrNotConfigured.
func NewClient(baseURL, apiKey, shortDomain string) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      strings.TrimSpace(apiKey),
		shortDomain: strings.TrimSuffix(shortDomain, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Shorten asks the upstream to create a short link for targetURL,
// optionally under a custom slug, and returns the absolute short URL.
func (c *Client) Shorten(ctx context.Context, targetURL, customSlug string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	// Upstream wants the bare domain, not a URL
	domain := schemeRe.ReplaceAllString(c.shortDomain, "")

	payload := map[string]string{
		"target": targetURL,
		"domain": domain,
	}
	if customSlug != "" {
		payload["customurl"] = customSlug
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v2/links", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach shortening service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Kutt API error %d: %s", resp.StatusCode, string(text))
	}

	var result struct {
		Link string `json:"link"`
		ID   string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("Kutt API returned an unreadable response: %w", err)
	}

	link := result.Link
	if link == "" && result.ID != "" {
		link = c.shortDomain + "/" + result.ID
	}
	if link == "" {
		return "", errors.New("Kutt API did not return a short URL")
	}

	if !strings.HasPrefix(link, "http") {
		link = c.shortDomain + "/" + strings.TrimPrefix(link, "/")
	}
	return link, nil
}
