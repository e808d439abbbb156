// Package render is the compositing engine: it turns a background image, text
// content and a resolved style configuration into the two pamphlet layers.
// Every call re-derives both layers from the original background, so repeated
// edits never accumulate artifacts.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/pamphletapp/internal/design"
	"github.com/youruser/pamphletapp/internal/pamphlet"
)

// ErrDecodeFailure reports background bytes that are not a supported raster
// format.
var ErrDecodeFailure = errors.New("image decode failure")

// Layers holds the two outputs of one render call.
type Layers struct {
	// Textless carries background, panels and the CTA shape but no glyphs;
	// it backs the live client preview.
	Textless image.Image
	// Final is Textless plus all visible text: the downloadable artifact.
	Final image.Image
}

// Render is the single entry point for both initial generation and every
// subsequent edit. It recomputes both layers from the caller's original
// background; identical inputs produce byte-identical outputs.
func Render(base image.Image, content pamphlet.TextContent, style design.StyleConfiguration) (Layers, error) {
	if err := style.Validate(); err != nil {
		return Layers{}, err
	}

	fitted := FitToCanvas(base, style.CanvasWidth, style.CanvasHeight, style.Crop, style.Position)
	filtered := ApplyFilter(fitted, style.Filter, style.FilterIntensity)
	filtered = ApplyGlobalBrightness(filtered, style.Brightness)
	background := imaging.Clone(filtered)

	textless, err := composeLayout(background, content, style, false)
	if err != nil {
		return Layers{}, fmt.Errorf("compose textless layer: %w", err)
	}
	final, err := composeLayout(background, content, style, true)
	if err != nil {
		return Layers{}, fmt.Errorf("compose final layer: %w", err)
	}

	return Layers{
		Textless: ApplyRoundedCorners(textless, style.BorderRadius),
		Final:    ApplyRoundedCorners(final, style.BorderRadius),
	}, nil
}

// DecodeImage decodes JPEG/PNG/GIF background bytes into an in-memory bitmap.
func DecodeImage(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return img, nil
}

// EncodePNG encodes an image to PNG bytes in memory, so callers never persist
// a partially written file.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
