// Package textgen generates pamphlet copy through a local Ollama instance.
// Every prompt has a deterministic fallback derived from the request, so a
// failed model call degrades to usable copy instead of an error.
package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/youruser/pamphletapp/internal/pamphlet"
)

// Client talks to the Ollama HTTP API.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a text generation client.
func NewClient(baseURL, model string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("component", "textgen").Logger(),
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// GenerateContent produces the structured pamphlet copy: headline,
// description, call to action and tagline, plus the request's feature list.
func (c *Client) GenerateContent(ctx context.Context, req pamphlet.Request) pamphlet.TextContent {
	profile := profileFor(req.RegenerationIndex)
	isVariation := req.RegenerationIndex > 0

	headline := c.complete(ctx, headlinePrompt(req, profile, isVariation))
	if headline == "" {
		headline = req.ProductName
	}
	description := c.complete(ctx, descriptionPrompt(req, profile, isVariation))
	if description == "" {
		description = fallbackDescription(req)
	}
	cta := c.complete(ctx, ctaPrompt(req, profile, isVariation))
	if cta == "" {
		cta = req.CallToAction
		if cta == "" {
			cta = "Learn more today"
		}
	}
	tagline := c.complete(ctx, taglinePrompt(req, profile, isVariation))
	if tagline == "" {
		tagline = req.ProductName
	}

	return pamphlet.TextContent{
		Headline:     stripQuotes(headline),
		Tagline:      stripQuotes(tagline),
		Description:  strings.TrimSpace(description),
		CallToAction: strings.TrimSpace(cta),
		Features:     req.KeyFeatures,
	}
}

// complete runs one prompt and returns the raw completion, or "" on failure.
func (c *Client) complete(ctx context.Context, prompt string) string {
	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt, Stream: false})
	if err != nil {
		return ""
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return ""
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn().Err(err).Msg("ollama call failed, using fallback copy")
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("ollama returned non-200, using fallback copy")
		return ""
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Warn().Err(err).Msg("ollama response decode failed")
		return ""
	}
	return strings.TrimSpace(out.Response)
}

func fallbackDescription(req pamphlet.Request) string {
	features := req.KeyFeatures
	if len(features) > 3 {
		features = features[:3]
	}
	return fmt.Sprintf("Discover %s: %s. %s", req.ProductName, strings.Join(features, ", "), req.CallToAction)
}

func stripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", "'", "").Replace(strings.TrimSpace(s))
}

const variationSuffix = "\nPlease ensure this version feels distinct from any previous iterations while staying on-brand."

func headlinePrompt(req pamphlet.Request, p variationProfile, variation bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a compelling, attention-grabbing headline for a pamphlet about: %s\n", req.ProductName)
	fmt.Fprintf(&b, "Description: %s\nTone: %s\nTarget audience: %s\n", req.Description, req.Tone, req.TargetAudience)
	if variation {
		fmt.Fprintf(&b, "Additional directive: %s\n", p.HeadlineHint)
	}
	fmt.Fprintf(&b, "\nThe headline should be:\n- 3-6 words maximum (for pamphlet layout)\n- %s in tone\n- Bold and impactful\n- Perfect for %s\n- Eye-catching and memorable\n", req.Tone, req.TargetAudience)
	if variation {
		b.WriteString("- Deliver a fresh phrasing that differs from prior versions\n")
	}
	b.WriteString("\nReturn only the headline, no quotes or additional text.")
	if variation {
		b.WriteString(variationSuffix)
	}
	return b.String()
}

func descriptionPrompt(req pamphlet.Request, p variationProfile, variation bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a concise, persuasive description for a pamphlet about: %s\n\n", req.ProductName)
	fmt.Fprintf(&b, "Original description: %s\nKey features: %s\nTone: %s\nTarget audience: %s\nStyle: %s\n", req.Description, strings.Join(req.KeyFeatures, ", "), req.Tone, req.TargetAudience, req.Style)
	if variation {
		fmt.Fprintf(&b, "Variation directive: %s\n", p.DescriptionHint)
	}
	fmt.Fprintf(&b, "\nThe description should be:\n- 1-2 short paragraphs (max 3-4 sentences total)\n- %s and %s\n- Highlight key benefits, not just features\n- Perfect for pamphlet layout\n- Appeal to %s\n- Easy to read and scan\n", req.Tone, req.Style, req.TargetAudience)
	if variation {
		b.WriteString("- Present a noticeably different angle than previous drafts\n")
	}
	b.WriteString("\nReturn only the description text.")
	if variation {
		b.WriteString(variationSuffix)
	}
	return b.String()
}

func ctaPrompt(req pamphlet.Request, p variationProfile, variation bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a compelling call-to-action for a pamphlet about: %s\n\n", req.ProductName)
	fmt.Fprintf(&b, "Original CTA: %s\nTone: %s\nTarget audience: %s\n", req.CallToAction, req.Tone, req.TargetAudience)
	if variation {
		fmt.Fprintf(&b, "Variation directive: %s\n", p.CTAHint)
	}
	fmt.Fprintf(&b, "\nThe CTA should be:\n- 1 short sentence (max 8-10 words)\n- Action-oriented and urgent\n- %s in tone\n- Perfect for pamphlet button or banner\n- Clear and specific\n", req.Tone)
	if variation {
		b.WriteString("- Provide an alternate framing versus previous CTAs\n")
	}
	b.WriteString("\nReturn only the call-to-action text.")
	if variation {
		b.WriteString(variationSuffix)
	}
	return b.String()
}

func taglinePrompt(req pamphlet.Request, p variationProfile, variation bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a memorable tagline for: %s\n\n", req.ProductName)
	fmt.Fprintf(&b, "Description: %s\nTone: %s\nTarget audience: %s\n", req.Description, req.Tone, req.TargetAudience)
	if variation {
		fmt.Fprintf(&b, "Variation directive: %s\n", p.TaglineHint)
	}
	fmt.Fprintf(&b, "\nThe tagline should be:\n- 2-4 words maximum\n- Memorable and catchy\n- %s in tone\n- Perfect for pamphlet subheading\n- Capture the essence of the product\n", req.Tone)
	if variation {
		b.WriteString("- Offer a distinctly new phrasing\n")
	}
	b.WriteString("\nReturn only the tagline.")
	if variation {
		b.WriteString(variationSuffix)
	}
	return b.String()
}
