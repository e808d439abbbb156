// Package design resolves color schemes, style presets and per-field edit
// overrides into the fully specified configuration consumed by the renderer.
package design

import (
	"fmt"
	"strconv"
	"strings"
)

// LayoutMode controls horizontal placement of the text column.
type LayoutMode string

const (
	LayoutCentered LayoutMode = "centered"
	LayoutSplit    LayoutMode = "split"
	LayoutLeft     LayoutMode = "left-aligned"
	LayoutRight    LayoutMode = "right-aligned"
)

// TextPlacement controls vertical anchoring of the text block.
type TextPlacement string

const (
	PlaceTop    TextPlacement = "top"
	PlaceMiddle TextPlacement = "middle"
	PlaceBottom TextPlacement = "bottom"
)

// CropMode selects how the background is fitted to the canvas.
type CropMode string

const (
	CropNone      CropMode = "none"
	CropSquare    CropMode = "square"
	CropPortrait  CropMode = "portrait"
	CropLandscape CropMode = "landscape"
)

// Anchor names the focal point kept in frame when cropping.
type Anchor string

const (
	AnchorCenter Anchor = "center"
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
)

// FilterName names an image filter.
type FilterName string

const (
	FilterNone       FilterName = "none"
	FilterBrightness FilterName = "brightness"
	FilterContrast   FilterName = "contrast"
	FilterSaturate   FilterName = "saturate"
	FilterBlur       FilterName = "blur"
	FilterSepia      FilterName = "sepia"
	FilterGrayscale  FilterName = "grayscale"
)

// RGB is a plain 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" (hash optional). Invalid input returns the
// fallback color.
func ParseHex(s string, fallback RGB) RGB {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	r, err1 := strconv.ParseUint(s[0:2], 16, 8)
	g, err2 := strconv.ParseUint(s[2:4], 16, 8)
	b, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return fallback
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// StyleConfiguration is the single source of truth for one render. All fields
// are populated by Resolve; the renderer never sees a zero value.
type StyleConfiguration struct {
	CanvasWidth  int
	CanvasHeight int

	Layout        LayoutMode
	TextPlacement TextPlacement

	// BackgroundOpacity is the edit-facing 0-100 slider; PanelOpacity is the
	// effective 0.0-0.92 alpha derived from it.
	BackgroundOpacity int
	PanelOpacity      float64

	HeadlineFont  string
	HeadlineSize  int
	HeadlineColor RGB

	BodyFont  string
	BodySize  int
	BodyColor RGB

	CTABgColor   RGB
	CTATextColor RGB

	Filter          FilterName
	FilterIntensity int

	Crop     CropMode
	Position Anchor

	ShadowIntensity int
	BorderRadius    int
	TextShadow      int
	Brightness      int

	// Sizes derived from BodySize during resolution.
	TaglineSize int
	FeatureSize int
	CTASize     int

	PanelRadius int
	PanelColor  RGB
	LineSpacing float64
}
