// Package imagegen produces pamphlet background images, either through the
// Stability AI API or from a caller-supplied upload.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/youruser/pamphletapp/internal/pamphlet"
)

// DefaultBaseURL is the Stability AI core generation endpoint.
const DefaultBaseURL = "https://api.stability.ai/v2beta/stable-image/generate/core"

// ErrNoAPIKey is returned when AI generation is requested without a key.
var ErrNoAPIKey = errors.New("stability api key not configured")

// Client fetches background images.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds an image generation client.
func NewClient(apiKey, baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
		log:     log.With().Str("component", "imagegen").Logger(),
	}
}

// Background returns raw image bytes for the request. Custom uploads are
// decoded and returned directly; everything else goes through the generation
// API. A custom upload that fails to decode falls back to AI generation, as
// long as a key is configured.
func (c *Client) Background(ctx context.Context, req pamphlet.Request) ([]byte, error) {
	if req.ImageSource == pamphlet.SourceCustomUpload && req.CustomImage != "" {
		data, err := base64.StdEncoding.DecodeString(req.CustomImage)
		if err == nil {
			return data, nil
		}
		c.log.Warn().Err(err).Msg("custom image decode failed, falling back to generation")
	}
	return c.generate(ctx, req)
}

func (c *Client) generate(ctx context.Context, req pamphlet.Request) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"prompt":        buildPrompt(req),
		"output_format": "png",
		"aspect_ratio":  "4:5",
		"mode":          "text-to-image",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "image/*")
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("image generation request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("image generation returned %d: %s", resp.StatusCode, snippet)
	}
	return io.ReadAll(resp.Body)
}
