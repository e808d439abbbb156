package imagegen

import (
	"fmt"
	"strings"

	"github.com/youruser/pamphletapp/internal/pamphlet"
)

// imageVariationHints nudge regenerated backgrounds toward a different
// composition on each pass.
var imageVariationHints = []string{
	"Feature diagonal lighting, soft depth-of-field, and open whitespace on the upper third for typography.",
	"Use a geometric framing element on one side and a cooler color palette with subtle gradients.",
	"Incorporate warm accent lighting with a bokeh background and a foreground focal point positioned off-center.",
	"Highlight natural textures with gentle shadows and a clean negative space band suitable for body copy.",
}

func variationHintFor(regenerationIndex int) string {
	if regenerationIndex <= 0 {
		return ""
	}
	return imageVariationHints[regenerationIndex%len(imageVariationHints)]
}

var (
	foodWords   = []string{"food", "cookies", "biscuits", "sweets", "chocolate", "bakery", "restaurant", "cafe"}
	techWords   = []string{"tech", "software", "app", "digital", "computer", "phone", "gadget"}
	beautyWords = []string{"beauty", "cosmetics", "skincare", "makeup", "fashion", "clothing"}
)

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// buildPrompt composes the background prompt: a caller-supplied prompt when
// present, otherwise a product-type template (food, tech, beauty, generic),
// plus the regeneration variation hint.
func buildPrompt(req pamphlet.Request) string {
	hint := variationHintFor(req.RegenerationIndex)

	var b strings.Builder
	if custom := strings.TrimSpace(req.ImagePrompt); custom != "" {
		fmt.Fprintf(&b, "%s\n\nAdditional requirements for pamphlet design:\n", custom)
		b.WriteString("- Professional pamphlet background\n- Space for text overlay\n")
		fmt.Fprintf(&b, "- %s and %s aesthetic\n- Perfect for %s\n", req.Tone, req.Style, req.TargetAudience)
		b.WriteString("- High quality, 4K resolution\n- Clean composition with room for headlines and text\n")
	} else {
		name := strings.ToLower(req.ProductName)
		switch {
		case containsAny(name, foodWords):
			fmt.Fprintf(&b, "Professional food product pamphlet background for %s:\n", req.ProductName)
			b.WriteString("- Appetizing food photography style\n- Warm, inviting colors (golden, brown, cream tones)\n- Clean white space for text overlay\n- High-quality commercial food photography\n")
			fmt.Fprintf(&b, "- %s and %s aesthetic\n- Perfect for %s\n", req.Tone, req.Style, req.TargetAudience)
			b.WriteString("- Professional lighting and composition\n- Space for headline and text\n- 4K quality, magazine-style photography\n")
		case containsAny(name, techWords):
			fmt.Fprintf(&b, "Modern tech product pamphlet background for %s:\n", req.ProductName)
			b.WriteString("- Clean, minimalist tech aesthetic\n- Blue, white, and silver color scheme\n- Geometric patterns and clean lines\n- High-tech, professional look\n")
			fmt.Fprintf(&b, "- %s and %s design\n- Perfect for %s\n", req.Tone, req.Style, req.TargetAudience)
			b.WriteString("- Space for text overlay\n- 4K quality, modern design\n")
		case containsAny(name, beautyWords):
			fmt.Fprintf(&b, "Elegant beauty/fashion pamphlet background for %s:\n", req.ProductName)
			b.WriteString("- Soft, elegant beauty photography\n- Pastel or sophisticated color palette\n- Clean, luxurious aesthetic\n")
			fmt.Fprintf(&b, "- %s and %s mood\n- Perfect for %s\n", req.Tone, req.Style, req.TargetAudience)
			b.WriteString("- Space for text overlay\n- 4K quality, magazine-style photography\n")
		default:
			fmt.Fprintf(&b, "Professional product pamphlet background for %s:\n", req.ProductName)
			fmt.Fprintf(&b, "- %s and %s style\n- %s color scheme\n", req.Style, req.Tone, req.ColorScheme)
			b.WriteString("- Clean, modern layout with space for text\n- High quality, professional photography style\n")
			fmt.Fprintf(&b, "- Suitable for %s\n", req.TargetAudience)
			b.WriteString("- Product-focused but not cluttered\n- Elegant and sophisticated\n- 4K quality, commercial photography\n")
		}
	}
	if hint != "" {
		fmt.Fprintf(&b, "- %s\n", hint)
	}
	return b.String()
}
