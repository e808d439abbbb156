package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/youruser/pamphletapp/internal/pamphlet"
)

func TestBackgroundReturnsCustomUpload(t *testing.T) {
	c := NewClient("", "", zerolog.Nop())
	raw := []byte("fake image bytes")
	req := pamphlet.Request{
		ImageSource: pamphlet.SourceCustomUpload,
		CustomImage: base64.StdEncoding.EncodeToString(raw),
	}
	got, err := c.Background(context.Background(), req)
	if err != nil {
		t.Fatalf("Background: %v", err)
	}
	if string(got) != string(raw) {
		t.Fatalf("Background = %q, want decoded upload", got)
	}
}

func TestBackgroundWithoutKeyFails(t *testing.T) {
	c := NewClient("", "", zerolog.Nop())
	_, err := c.Background(context.Background(), pamphlet.Request{ProductName: "Widget"})
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("error = %v, want ErrNoAPIKey", err)
	}
}

func TestBackgroundBadCustomImageFallsBackToGeneration(t *testing.T) {
	c := NewClient("", "", zerolog.Nop())
	req := pamphlet.Request{
		ImageSource: pamphlet.SourceCustomUpload,
		CustomImage: "not!!base64@@",
	}
	if _, err := c.Background(context.Background(), req); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("error = %v, want fallback to keyless generation error", err)
	}
}

func TestGenerateSendsMultipartRequest(t *testing.T) {
	var gotAuth, gotPrompt, gotFormat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPrompt = r.FormValue("prompt")
		gotFormat = r.FormValue("output_format")
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c := NewClient("secret-key", srv.URL, zerolog.Nop())
	data, err := c.Background(context.Background(), pamphlet.Request{ProductName: "Widget"})
	if err != nil {
		t.Fatalf("Background: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("Background = %q", data)
	}
	if gotAuth != "Bearer secret-key" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if !strings.Contains(gotPrompt, "Widget") {
		t.Fatalf("prompt %q missing product name", gotPrompt)
	}
	if gotFormat != "png" {
		t.Fatalf("output_format = %q, want png", gotFormat)
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := NewClient("secret-key", srv.URL, zerolog.Nop())
	_, err := c.Background(context.Background(), pamphlet.Request{ProductName: "Widget"})
	if err == nil || !strings.Contains(err.Error(), "402") {
		t.Fatalf("error = %v, want status surfaced", err)
	}
}
