package textgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/youruser/pamphletapp/internal/pamphlet"
)

func testRequest() pamphlet.Request {
	return pamphlet.Request{
		ProductName:    "Choco Cookies",
		Description:    "Handmade chocolate cookies",
		Tone:           "friendly",
		TargetAudience: "families",
		KeyFeatures:    []string{"Organic", "Fresh daily", "Local", "Affordable"},
		CallToAction:   "Order yours today",
	}
}

func TestGenerateContentUsesModelOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Fatalf("path = %q, want /api/generate", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Stream {
			t.Fatalf("stream should be disabled")
		}
		json.NewEncoder(w).Encode(generateResponse{Response: `"Crunch Into Joy"`})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", zerolog.Nop())
	got := c.GenerateContent(context.Background(), testRequest())
	if got.Headline != "Crunch Into Joy" {
		t.Fatalf("Headline = %q, want quotes stripped model output", got.Headline)
	}
	if len(got.Features) != 4 {
		t.Fatalf("Features = %v, want request features passed through", got.Features)
	}
}

func TestGenerateContentFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model offline", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", zerolog.Nop())
	req := testRequest()
	got := c.GenerateContent(context.Background(), req)
	if got.Headline != req.ProductName {
		t.Fatalf("Headline = %q, want product name fallback", got.Headline)
	}
	if got.CallToAction != req.CallToAction {
		t.Fatalf("CallToAction = %q, want request fallback", got.CallToAction)
	}
	wantDesc := "Discover Choco Cookies: Organic, Fresh daily, Local. Order yours today"
	if got.Description != wantDesc {
		t.Fatalf("Description = %q, want %q", got.Description, wantDesc)
	}
}

func TestGenerateContentFallsBackWhenUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "test-model", zerolog.Nop())
	req := testRequest()
	req.CallToAction = ""
	got := c.GenerateContent(context.Background(), req)
	if got.CallToAction != "Learn more today" {
		t.Fatalf("CallToAction = %q, want generic fallback", got.CallToAction)
	}
	if got.Tagline != req.ProductName {
		t.Fatalf("Tagline = %q, want product name fallback", got.Tagline)
	}
}

func TestPromptsCarryVariationDirectives(t *testing.T) {
	req := testRequest()
	req.RegenerationIndex = 2
	p := profileFor(req.RegenerationIndex)
	if p.Name != "data_focused" {
		t.Fatalf("profileFor(2) = %q, want data_focused", p.Name)
	}
	for name, prompt := range map[string]string{
		"headline":    headlinePrompt(req, p, true),
		"description": descriptionPrompt(req, p, true),
		"cta":         ctaPrompt(req, p, true),
		"tagline":     taglinePrompt(req, p, true),
	} {
		if !strings.Contains(prompt, "directive") {
			t.Fatalf("%s prompt missing variation directive", name)
		}
		if !strings.Contains(prompt, variationSuffix) {
			t.Fatalf("%s prompt missing variation suffix", name)
		}
	}
}

func TestPromptsOmitDirectivesOnFirstPass(t *testing.T) {
	req := testRequest()
	p := profileFor(0)
	prompt := headlinePrompt(req, p, false)
	if strings.Contains(prompt, "directive") || strings.Contains(prompt, variationSuffix) {
		t.Fatalf("first-pass prompt should carry no variation text")
	}
	if !strings.Contains(prompt, req.ProductName) {
		t.Fatalf("prompt missing product name")
	}
}

func TestProfileForCycles(t *testing.T) {
	if profileFor(0).Name != profileFor(4).Name {
		t.Fatalf("profiles should cycle with period 4")
	}
	if profileFor(1).Name == profileFor(2).Name {
		t.Fatalf("adjacent regenerations share a profile")
	}
}

func TestStripQuotes(t *testing.T) {
	if got := stripQuotes(`  "It's Great"  `); got != "Its Great" {
		t.Fatalf("stripQuotes = %q", got)
	}
}
