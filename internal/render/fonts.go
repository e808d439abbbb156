// fonts.go - font faces for the layout engine. All configured font families
// resolve onto the embedded Go fonts: bold families (any "-Bold" suffix) map
// to Go Bold, everything else to Go Regular.
package render

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const fontDPI = 72

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse regular font: %w", fontErr)
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse bold font: %w", fontErr)
		}
	})
	return fontErr
}

// newFace builds a font.Face for the given family name and pixel size.
// Faces are not safe for concurrent use, so each render creates its own.
func newFace(family string, size int) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	src := regularFont
	if isBoldFamily(family) {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face %q/%d: %w", family, size, err)
	}
	return face, nil
}

func isBoldFamily(family string) bool {
	f := strings.ToLower(strings.TrimSpace(family))
	return strings.HasSuffix(f, "-bold") || strings.HasSuffix(f, " bold")
}
