// Package pamphlet holds the request and content types shared by the
// generation pipeline and the renderer.
package pamphlet

// Request describes one pamphlet generation request.
type Request struct {
	ProductName       string   `json:"product_name"`
	Description       string   `json:"description"`
	Tone              string   `json:"tone"`
	TargetAudience    string   `json:"target_audience"`
	KeyFeatures       []string `json:"key_features"`
	CallToAction      string   `json:"call_to_action"`
	ColorScheme       string   `json:"color_scheme"`
	Style             string   `json:"style"`
	ImagePrompt       string   `json:"image_prompt"`
	CustomImage       string   `json:"custom_image"`
	ImageSource       string   `json:"image_source"`
	RegenerationIndex int      `json:"regeneration_count"`
}

// Image source selectors.
const (
	SourceAIGenerated  = "ai_generated"
	SourceCustomUpload = "custom_upload"
)

// RemovalFlags suppress individual elements at render time without deleting
// the underlying text.
type RemovalFlags struct {
	Headline     bool `json:"headline"`
	Tagline      bool `json:"tagline"`
	Description  bool `json:"description"`
	CallToAction bool `json:"call_to_action"`
	Custom       bool `json:"custom"`
}

// TextContent is the textual payload rendered onto a pamphlet.
type TextContent struct {
	Headline     string       `json:"headline"`
	Tagline      string       `json:"tagline"`
	Description  string       `json:"description"`
	Features     []string     `json:"features"`
	CallToAction string       `json:"call_to_action"`
	CustomLines  []string     `json:"customText"`
	Removed      RemovalFlags `json:"removeLines"`
}

// Empty reports whether nothing would render: no text in any field.
func (t TextContent) Empty() bool {
	return t.Headline == "" && t.Tagline == "" && t.Description == "" &&
		len(t.Features) == 0 && t.CallToAction == "" && len(t.CustomLines) == 0
}
