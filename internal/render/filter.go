// filter.go - named image filters and the global brightness pass.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/youruser/pamphletapp/internal/design"
)

// ApplyFilter applies one named filter at the given 0-100 intensity and
// returns a new image. FilterNone returns the input unchanged. Intensity maps
// onto each filter's native range: brightness and contrast use the factor
// 1+(i-50)/70, saturation 1+(i-50)/65, blur sigma i/10, and sepia/grayscale
// blend between the original and fully filtered pixels by i/100.
func ApplyFilter(img image.Image, name design.FilterName, intensity int) image.Image {
	i := clamp(intensity, 0, 100)
	switch name {
	case design.FilterBrightness:
		return scaleChannels(img, 1+float64(i-50)/70)
	case design.FilterContrast:
		return imaging.AdjustContrast(img, float64(i-50)*100/70)
	case design.FilterSaturate:
		return imaging.AdjustSaturation(img, float64(i-50)*100/65)
	case design.FilterBlur:
		sigma := float64(i) / 10
		if sigma <= 0 {
			return img
		}
		return imaging.Blur(img, sigma)
	case design.FilterSepia:
		return blendSepia(img, float64(i)/100)
	case design.FilterGrayscale:
		return blendGrayscale(img, float64(i)/100)
	}
	return img
}

// ApplyGlobalBrightness multiplies all channels by pct/100. It runs after the
// named filter and independently of it; pct 100 is a no-op.
func ApplyGlobalBrightness(img image.Image, pct int) image.Image {
	if pct == 100 {
		return img
	}
	return scaleChannels(img, float64(clamp(pct, 50, 150))/100)
}

func scaleChannels(img image.Image, factor float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp8(float64(c.R) * factor),
			G: clamp8(float64(c.G) * factor),
			B: clamp8(float64(c.B) * factor),
			A: c.A,
		}
	})
}

// blendSepia applies the classic sepia matrix, mixed with the original pixel
// by the blend fraction f.
func blendSepia(img image.Image, f float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		r, g, b := float64(c.R), float64(c.G), float64(c.B)
		tr := 0.393*r + 0.769*g + 0.189*b
		tg := 0.349*r + 0.686*g + 0.168*b
		tb := 0.272*r + 0.534*g + 0.131*b
		return color.NRGBA{
			R: clamp8(r + (tr-r)*f),
			G: clamp8(g + (tg-g)*f),
			B: clamp8(b + (tb-b)*f),
			A: c.A,
		}
	})
}

// blendGrayscale mixes each pixel with its luminance by the blend fraction f.
func blendGrayscale(img image.Image, f float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
		return color.NRGBA{
			R: clamp8(float64(c.R) + (y-float64(c.R))*f),
			G: clamp8(float64(c.G) + (y-float64(c.G))*f),
			B: clamp8(float64(c.B) + (y-float64(c.B))*f),
			A: c.A,
		}
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
