package design

// ColorScheme is a named palette applied before per-field overrides.
type ColorScheme struct {
	Text    RGB
	Accent  RGB
	CTA     RGB
	Overlay RGB
}

// DefaultScheme is used when an unknown scheme name is requested.
const DefaultScheme = "modern"

var colorSchemes = map[string]ColorScheme{
	"modern": {
		Text:    RGB{240, 247, 255},
		Accent:  RGB{111, 203, 255},
		CTA:     RGB{255, 102, 102},
		Overlay: RGB{12, 24, 42},
	},
	"elegant": {
		Text:    RGB{255, 255, 255},
		Accent:  RGB{255, 215, 0},
		CTA:     RGB{194, 24, 91},
		Overlay: RGB{35, 22, 58},
	},
	"minimal": {
		Text:    RGB{38, 38, 38},
		Accent:  RGB{18, 132, 108},
		CTA:     RGB{0, 112, 201},
		Overlay: RGB{245, 245, 245},
	},
}

// SchemeByName looks up a palette, falling back to the default scheme.
func SchemeByName(name string) ColorScheme {
	if s, ok := colorSchemes[name]; ok {
		return s
	}
	return colorSchemes[DefaultScheme]
}

// StylePreset tweaks the base typography and effect defaults.
type StylePreset struct {
	HeadlineSize    int
	BodySize        int
	TextShadow      int
	ShadowIntensity int
	BorderRadius    int
}

// DefaultPreset is used when an unknown preset name is requested.
const DefaultPreset = "professional"

var stylePresets = map[string]StylePreset{
	"professional": {HeadlineSize: 70, BodySize: 28, TextShadow: 30, ShadowIntensity: 35, BorderRadius: 12},
	"bold":         {HeadlineSize: 84, BodySize: 30, TextShadow: 45, ShadowIntensity: 50, BorderRadius: 8},
	"playful":      {HeadlineSize: 72, BodySize: 28, TextShadow: 25, ShadowIntensity: 30, BorderRadius: 28},
	"elegant":      {HeadlineSize: 64, BodySize: 26, TextShadow: 20, ShadowIntensity: 25, BorderRadius: 18},
}

// PresetByName looks up a style preset, falling back to the default preset.
func PresetByName(name string) StylePreset {
	if p, ok := stylePresets[name]; ok {
		return p
	}
	return stylePresets[DefaultPreset]
}
