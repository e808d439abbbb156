// geometry.go - fitting, cropping and masking primitives for the canvas.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/pamphletapp/internal/design"
)

// anchorFractions maps position anchors onto fractional crop centers.
var anchorFractions = map[design.Anchor][2]float64{
	design.AnchorCenter: {0.5, 0.5},
	design.AnchorTop:    {0.5, 0.1},
	design.AnchorBottom: {0.5, 0.9},
	design.AnchorLeft:   {0.1, 0.5},
	design.AnchorRight:  {0.9, 0.5},
}

// FitToCanvas produces an exactly targetW x targetH image from src. Crop mode
// "none" letterboxes the contained image over black; the fixed-aspect modes
// pre-crop to 1:1, 3:4 or 4:3 and then cover-crop about the anchor point.
func FitToCanvas(src image.Image, targetW, targetH int, crop design.CropMode, anchor design.Anchor) *image.NRGBA {
	fr, ok := anchorFractions[anchor]
	if !ok {
		fr = anchorFractions[design.AnchorCenter]
	}

	switch crop {
	case design.CropNone:
		return containLetterbox(src, targetW, targetH, fr)
	case design.CropSquare:
		src = cropToAspect(src, 1)
	case design.CropPortrait:
		src = cropToAspect(src, 3.0/4.0)
	case design.CropLandscape:
		src = cropToAspect(src, 4.0/3.0)
	}
	return coverCrop(src, targetW, targetH, fr)
}

// cropToAspect center-crops src to the given width/height ratio. The crop
// only ever removes pixels; a source narrower than the ratio is returned
// unchanged in that dimension.
func cropToAspect(src image.Image, ratio float64) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	cropW := int(float64(h) * ratio)
	if cropW < w {
		left := (w - cropW) / 2
		return imaging.Crop(src, image.Rect(b.Min.X+left, b.Min.Y, b.Min.X+left+cropW, b.Max.Y))
	}
	cropH := int(float64(w) / ratio)
	if cropH < h {
		top := (h - cropH) / 2
		return imaging.Crop(src, image.Rect(b.Min.X, b.Min.Y+top, b.Max.X, b.Min.Y+top+cropH))
	}
	return src
}

// coverCrop scales src so it covers targetW x targetH, then crops the excess
// around the fractional center (fx, fy).
func coverCrop(src image.Image, targetW, targetH int, fr [2]float64) *image.NRGBA {
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 {
		return imaging.New(targetW, targetH, color.NRGBA{0, 0, 0, 255})
	}
	scale := math.Max(float64(targetW)/float64(sw), float64(targetH)/float64(sh))
	rw := int(math.Ceil(float64(sw) * scale))
	rh := int(math.Ceil(float64(sh) * scale))
	if rw < targetW {
		rw = targetW
	}
	if rh < targetH {
		rh = targetH
	}
	resized := imaging.Resize(src, rw, rh, imaging.Lanczos)
	x0 := int(math.Round(fr[0] * float64(rw-targetW)))
	y0 := int(math.Round(fr[1] * float64(rh-targetH)))
	return imaging.Crop(resized, image.Rect(x0, y0, x0+targetW, y0+targetH))
}

// containLetterbox fits src inside the target preserving aspect ratio and
// letterboxes it over black, positioned by the fractional anchor.
func containLetterbox(src image.Image, targetW, targetH int, fr [2]float64) *image.NRGBA {
	fitted := imaging.Fit(src, targetW, targetH, imaging.Lanczos)
	fb := fitted.Bounds()
	canvas := imaging.New(targetW, targetH, color.NRGBA{0, 0, 0, 255})
	x := int(math.Round(fr[0] * float64(targetW-fb.Dx())))
	y := int(math.Round(fr[1] * float64(targetH-fb.Dy())))
	return imaging.Paste(canvas, fitted, image.Pt(x, y))
}

// ApplyRoundedCorners masks img to rounded-rectangle bounds. Radius 0 is a
// no-op; the radius is clamped to half the shorter side.
func ApplyRoundedCorners(img image.Image, radius int) image.Image {
	if radius <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if half := minInt(w, h) / 2; radius > half {
		radius = half
	}
	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}

// ApplyDropShadow composites a soft shadow behind contentBounds onto canvas,
// returning a new image. Offset and blur scale with intensity/100; intensity 0
// returns the canvas untouched.
func ApplyDropShadow(canvas *image.NRGBA, contentBounds image.Rectangle, cornerRadius, intensity int) *image.NRGBA {
	if intensity <= 0 {
		return canvas
	}
	b := canvas.Bounds()
	dx := int(math.Round(4 * float64(intensity) / 100))
	dy := int(math.Round(7 * float64(intensity) / 100))
	sigma := 18 * float64(intensity) / 100
	alpha := math.Min(0.7, 2.2*float64(intensity)/255)
	shadow := roundedShadow(b.Dx(), b.Dy(), contentBounds.Add(image.Pt(dx, dy)), float64(cornerRadius), alpha, sigma)
	return imaging.Overlay(canvas, shadow, image.Pt(0, 0), 1.0)
}

// roundedShadow renders a blurred black rounded rectangle on a transparent
// layer of the given size.
func roundedShadow(w, h int, rect image.Rectangle, corner, alpha, sigma float64) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, alpha)
	dc.DrawRoundedRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), corner)
	dc.Fill()
	if sigma <= 0 {
		return dc.Image()
	}
	return imaging.Blur(dc.Image(), sigma)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
