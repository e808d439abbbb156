package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/youruser/pamphletapp/internal/design"
	"github.com/youruser/pamphletapp/internal/imagegen"
	"github.com/youruser/pamphletapp/internal/pamphlet"
	"github.com/youruser/pamphletapp/internal/render"
	"github.com/youruser/pamphletapp/internal/storage"
	"github.com/youruser/pamphletapp/internal/textgen"
)

func newTestRouter(t *testing.T) (*gin.Engine, *API) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	a := &API{
		// Unreachable endpoints: text generation degrades to fallback copy
		// and image generation fails without a key.
		Text:          textgen.NewClient("http://127.0.0.1:1", "test", zerolog.Nop()),
		Image:         imagegen.NewClient("", "", zerolog.Nop()),
		Store:         store,
		PublicBaseURL: "http://localhost:8080",
		Log:           zerolog.Nop(),
	}
	r := gin.New()
	RegisterRoutes(r, a)
	return r, a
}

func tinyPNGBase64(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 60, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 60; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 3), B: 90, A: 255})
		}
	}
	data, err := render.EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	return base64.StdEncoding.EncodeToString(data)
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field = %q, want ok", body["status"])
	}
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)
	tests := []struct {
		name    string
		mutate  func(*pamphlet.Request)
		missing string
	}{
		{"product name", func(q *pamphlet.Request) { q.ProductName = "" }, "product_name"},
		{"description", func(q *pamphlet.Request) { q.Description = "" }, "description"},
		{"tone", func(q *pamphlet.Request) { q.Tone = "" }, "tone"},
		{"audience", func(q *pamphlet.Request) { q.TargetAudience = "" }, "target_audience"},
		{"features", func(q *pamphlet.Request) { q.KeyFeatures = nil }, "key_features"},
		{"cta", func(q *pamphlet.Request) { q.CallToAction = "" }, "call_to_action"},
	}
	for _, tt := range tests {
		q := validRequest(t)
		tt.mutate(&q)
		w := postJSON(t, r, "/api/generate", q)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tt.name, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode body: %v", tt.name, err)
		}
		if want := "Missing required field: " + tt.missing; body["error"] != want {
			t.Fatalf("%s: error = %q, want %q", tt.name, body["error"], want)
		}
	}
}

func validRequest(t *testing.T) pamphlet.Request {
	t.Helper()
	return pamphlet.Request{
		ProductName:    "Choco Cookies",
		Description:    "Handmade chocolate cookies",
		Tone:           "friendly",
		TargetAudience: "families",
		KeyFeatures:    []string{"Organic", "Fresh daily"},
		CallToAction:   "Order yours today",
	}
}

func TestGenerateWithoutAPIKeyIsUnavailable(t *testing.T) {
	r, _ := newTestRouter(t)
	w := postJSON(t, r, "/api/generate", validRequest(t))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestGenerateWithCustomUpload(t *testing.T) {
	r, _ := newTestRouter(t)
	q := validRequest(t)
	q.ImageSource = pamphlet.SourceCustomUpload
	q.CustomImage = tinyPNGBase64(t)

	w := postJSON(t, r, "/api/generate", q)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body struct {
		Success     bool                 `json:"success"`
		Image       string               `json:"image"`
		LayoutBase  string               `json:"layout_base_image"`
		TextContent pamphlet.TextContent `json:"text_content"`
		Filename    string               `json:"filename"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Fatalf("success = false")
	}
	if body.Filename == "" {
		t.Fatalf("missing filename")
	}
	// Ollama is unreachable, so the copy must be the deterministic fallback.
	if body.TextContent.Headline != "Choco Cookies" {
		t.Fatalf("headline = %q, want fallback", body.TextContent.Headline)
	}

	for name, enc := range map[string]string{"image": body.Image, "layout_base_image": body.LayoutBase} {
		raw, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			t.Fatalf("%s not base64: %v", name, err)
		}
		img, err := render.DecodeImage(raw)
		if err != nil {
			t.Fatalf("%s not decodable: %v", name, err)
		}
		if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 1600 {
			t.Fatalf("%s = %v, want 1200x1600", name, img.Bounds())
		}
	}
}

func TestEditEndToEnd(t *testing.T) {
	r, _ := newTestRouter(t)
	layout := string(design.LayoutSplit)
	payload := map[string]any{
		"originalImage": tinyPNGBase64(t),
		"edits":         design.Overrides{Layout: &layout},
		"textContent": pamphlet.TextContent{
			Headline:     "Summer Sale",
			CallToAction: "Shop now",
		},
		"colorScheme": "minimal",
		"style":       "bold",
		"filename":    "pamphlet_choco_abc123.png",
	}
	w := postJSON(t, r, "/api/edit", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body struct {
		Success     bool   `json:"success"`
		EditedImage string `json:"editedImage"`
		Filename    string `json:"filename"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.EditedImage == "" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if got := body.Filename; got == "" || got == "pamphlet_choco_abc123.png" {
		t.Fatalf("filename = %q, want a fresh edited name", got)
	}
}

func TestEditRejectsBadInput(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(t, r, "/api/edit", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty payload status = %d, want 400", w.Code)
	}

	w = postJSON(t, r, "/api/edit", map[string]any{"originalImage": "!!not-base64!!"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad base64 status = %d, want 400", w.Code)
	}

	w = postJSON(t, r, "/api/edit", map[string]any{
		"originalImage": base64.StdEncoding.EncodeToString([]byte("not an image")),
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("undecodable image status = %d, want 400", w.Code)
	}

	bad := 999
	w = postJSON(t, r, "/api/edit", map[string]any{
		"originalImage": tinyPNGBase64(t),
		"edits":         design.Overrides{BodySize: &bad},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid config status = %d, want 400", w.Code)
	}
}

func TestDownload(t *testing.T) {
	r, a := newTestRouter(t)
	name, err := a.Store.Save("widget", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/download/"+name, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "png-bytes" {
		t.Fatalf("body = %q", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/download/missing.png", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing file status = %d, want 404", w.Code)
	}
}

func TestShareQR(t *testing.T) {
	r, a := newTestRouter(t)
	name, err := a.Store.Save("widget", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/qr?filename="+name, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q, want image/png", ct)
	}
	if _, err := render.DecodeImage(w.Body.Bytes()); err != nil {
		t.Fatalf("QR body not a decodable image: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/qr?filename=missing.png", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing file status = %d, want 404", w.Code)
	}
}
