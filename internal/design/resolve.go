package design

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration reports a style field outside its documented range.
// Out-of-range values are rejected, never silently clamped.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// CanvasSize is a width/height pair in pixels.
type CanvasSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Overrides carries per-field edits from the client. Only fields that are
// present replace the resolved base value; nil fields keep the scheme/preset
// defaults. The JSON keys match the editor payload.
type Overrides struct {
	Size              *CanvasSize `json:"size,omitempty"`
	Layout            *string     `json:"layout,omitempty"`
	TextPlacement     *string     `json:"textPlacement,omitempty"`
	BackgroundOpacity *int        `json:"backgroundOpacity,omitempty"`
	HeadlineFont      *string     `json:"headlineFont,omitempty"`
	HeadlineSize      *int        `json:"headlineSize,omitempty"`
	HeadlineColor     *string     `json:"headlineColor,omitempty"`
	BodyFont          *string     `json:"bodyFont,omitempty"`
	BodySize          *int        `json:"bodySize,omitempty"`
	BodyColor         *string     `json:"bodyColor,omitempty"`
	CTABgColor        *string     `json:"ctaBgColor,omitempty"`
	CTATextColor      *string     `json:"ctaTextColor,omitempty"`
	ImageFilter       *string     `json:"imageFilter,omitempty"`
	FilterIntensity   *int        `json:"filterIntensity,omitempty"`
	ImageCrop         *string     `json:"imageCrop,omitempty"`
	ImagePosition     *string     `json:"imagePosition,omitempty"`
	ShadowIntensity   *int        `json:"shadowIntensity,omitempty"`
	BorderRadius      *int        `json:"borderRadius,omitempty"`
	TextShadow        *int        `json:"textShadow,omitempty"`
	OverallBrightness *int        `json:"overallBrightness,omitempty"`
}

// Resolve merges a color scheme and style preset with caller overrides into a
// complete StyleConfiguration. Resolution order: override > preset > default.
func Resolve(schemeName, presetName string, o *Overrides) (StyleConfiguration, error) {
	scheme := SchemeByName(schemeName)
	preset := PresetByName(presetName)

	cfg := StyleConfiguration{
		CanvasWidth:       1200,
		CanvasHeight:      1600,
		Layout:            LayoutCentered,
		TextPlacement:     PlaceTop,
		BackgroundOpacity: 80,
		HeadlineFont:      "Arial-Bold",
		HeadlineSize:      preset.HeadlineSize,
		HeadlineColor:     scheme.Accent,
		BodyFont:          "Arial",
		BodySize:          preset.BodySize,
		BodyColor:         scheme.Text,
		CTABgColor:        scheme.CTA,
		CTATextColor:      RGB{255, 255, 255},
		Filter:            FilterNone,
		FilterIntensity:   50,
		Crop:              CropNone,
		Position:          AnchorCenter,
		ShadowIntensity:   preset.ShadowIntensity,
		BorderRadius:      preset.BorderRadius,
		TextShadow:        preset.TextShadow,
		Brightness:        100,
		PanelColor:        scheme.Overlay,
		LineSpacing:       1.25,
	}

	if o != nil {
		applyOverrides(&cfg, o)
	}
	if err := cfg.Validate(); err != nil {
		return StyleConfiguration{}, err
	}
	cfg.deriveSizes()
	return cfg, nil
}

func applyOverrides(cfg *StyleConfiguration, o *Overrides) {
	if o.Size != nil {
		cfg.CanvasWidth = o.Size.Width
		cfg.CanvasHeight = o.Size.Height
	}
	if o.Layout != nil {
		cfg.Layout = LayoutMode(*o.Layout)
	}
	if o.TextPlacement != nil {
		cfg.TextPlacement = TextPlacement(*o.TextPlacement)
	}
	if o.BackgroundOpacity != nil {
		cfg.BackgroundOpacity = *o.BackgroundOpacity
	}
	if o.HeadlineFont != nil {
		cfg.HeadlineFont = *o.HeadlineFont
	}
	if o.HeadlineSize != nil {
		cfg.HeadlineSize = *o.HeadlineSize
	}
	if o.HeadlineColor != nil {
		cfg.HeadlineColor = ParseHex(*o.HeadlineColor, cfg.HeadlineColor)
	}
	if o.BodyFont != nil {
		cfg.BodyFont = *o.BodyFont
	}
	if o.BodySize != nil {
		cfg.BodySize = *o.BodySize
	}
	if o.BodyColor != nil {
		cfg.BodyColor = ParseHex(*o.BodyColor, cfg.BodyColor)
	}
	if o.CTABgColor != nil {
		cfg.CTABgColor = ParseHex(*o.CTABgColor, cfg.CTABgColor)
	}
	if o.CTATextColor != nil {
		cfg.CTATextColor = ParseHex(*o.CTATextColor, cfg.CTATextColor)
	}
	if o.ImageFilter != nil {
		cfg.Filter = FilterName(*o.ImageFilter)
	}
	if o.FilterIntensity != nil {
		cfg.FilterIntensity = *o.FilterIntensity
	}
	if o.ImageCrop != nil {
		cfg.Crop = CropMode(*o.ImageCrop)
	}
	if o.ImagePosition != nil {
		cfg.Position = Anchor(*o.ImagePosition)
	}
	if o.ShadowIntensity != nil {
		cfg.ShadowIntensity = *o.ShadowIntensity
	}
	if o.BorderRadius != nil {
		cfg.BorderRadius = *o.BorderRadius
	}
	if o.TextShadow != nil {
		cfg.TextShadow = *o.TextShadow
	}
	if o.OverallBrightness != nil {
		cfg.Brightness = *o.OverallBrightness
	}
}

// deriveSizes computes the secondary typography values from the validated
// primary fields.
func (c *StyleConfiguration) deriveSizes() {
	c.TaglineSize, c.FeatureSize, c.CTASize = TypographyScale(c.BodySize)
	c.PanelRadius = maxInt(18, c.BorderRadius+12)
	c.PanelOpacity = clampFloat(float64(100-c.BackgroundOpacity)/100+0.15, 0, 0.92)
}

// TypographyScale derives the tagline, feature and CTA sizes from a body
// size. The renderer reuses it when shrinking content to fit.
func TypographyScale(bodySize int) (tagline, feature, cta int) {
	return clampInt(bodySize+6, 20, 60), maxInt(18, bodySize-2), maxInt(22, bodySize+4)
}

// Validate checks every field against its documented range.
func (c StyleConfiguration) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d must be positive", ErrInvalidConfiguration, c.CanvasWidth, c.CanvasHeight)
	}
	switch c.Layout {
	case LayoutCentered, LayoutSplit, LayoutLeft, LayoutRight:
	default:
		return fmt.Errorf("%w: unknown layout %q", ErrInvalidConfiguration, c.Layout)
	}
	switch c.TextPlacement {
	case PlaceTop, PlaceMiddle, PlaceBottom:
	default:
		return fmt.Errorf("%w: unknown text placement %q", ErrInvalidConfiguration, c.TextPlacement)
	}
	switch c.Filter {
	case FilterNone, FilterBrightness, FilterContrast, FilterSaturate, FilterBlur, FilterSepia, FilterGrayscale:
	default:
		return fmt.Errorf("%w: unknown filter %q", ErrInvalidConfiguration, c.Filter)
	}
	switch c.Crop {
	case CropNone, CropSquare, CropPortrait, CropLandscape:
	default:
		return fmt.Errorf("%w: unknown crop mode %q", ErrInvalidConfiguration, c.Crop)
	}
	switch c.Position {
	case AnchorCenter, AnchorTop, AnchorBottom, AnchorLeft, AnchorRight:
	default:
		return fmt.Errorf("%w: unknown image position %q", ErrInvalidConfiguration, c.Position)
	}
	ranges := []struct {
		name     string
		v, lo, hi int
	}{
		{"backgroundOpacity", c.BackgroundOpacity, 0, 100},
		{"headlineSize", c.HeadlineSize, 24, 120},
		{"bodySize", c.BodySize, 12, 48},
		{"filterIntensity", c.FilterIntensity, 0, 100},
		{"shadowIntensity", c.ShadowIntensity, 0, 100},
		{"borderRadius", c.BorderRadius, 0, 50},
		{"textShadow", c.TextShadow, 0, 100},
		{"overallBrightness", c.Brightness, 50, 150},
	}
	for _, r := range ranges {
		if r.v < r.lo || r.v > r.hi {
			return fmt.Errorf("%w: %s %d out of range [%d,%d]", ErrInvalidConfiguration, r.name, r.v, r.lo, r.hi)
		}
	}
	return nil
}

// layoutCycle is the rotation order applied across regenerations.
var layoutCycle = []LayoutMode{LayoutCentered, LayoutSplit, LayoutLeft, LayoutRight}

// NextLayoutMode maps a regeneration index onto the layout rotation. Pure
// function: index mod 4 selects centered, split, left-aligned, right-aligned.
func NextLayoutMode(regenerationIndex int) LayoutMode {
	if regenerationIndex < 0 {
		regenerationIndex = -regenerationIndex
	}
	return layoutCycle[regenerationIndex%len(layoutCycle)]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
