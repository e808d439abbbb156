// layout.go - panel placement, text wrapping and glyph rendering. A single
// plan drives both output layers so the textless base and the final composite
// share identical geometry.
package render

import (
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/youruser/pamphletapp/internal/design"
	"github.com/youruser/pamphletapp/internal/pamphlet"
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// Overflow policy floors and caps. Headlines shrink in 6px steps down to the
// 24px minimum and never exceed 3 lines; body-derived sizes shrink in 2px
// steps down to the 12px minimum before trailing lines are dropped whole.
const (
	headlineMaxLines   = 3
	headlineShrinkStep = 6
	headlineMinSize    = 24
	bodyShrinkStep     = 2
	bodyMinSize        = 12

	ctaPaddingX = 32
	ctaPaddingY = 18
)

type itemKind int

const (
	itemText itemKind = iota
	itemCTA
)

// planItem is one placed element: a single text line or the CTA button.
type planItem struct {
	kind   itemKind
	text   string
	family string
	size   int
	color  design.RGB
	align  align
	dy     int // offset from block top to the element top
	lineH  int
	btnW   int // CTA only
}

// textPlan is the measured layout of all visible content for one render.
type textPlan struct {
	items      []planItem
	height     int
	featureTop int // relative bounds of the feature block, -1 when absent
	featureBot int
}

// faceCache avoids rebuilding identical faces inside one render call.
type faceCache map[string]font.Face

func (fc faceCache) get(family string, size int) (font.Face, error) {
	key := family + "/" + strconv.Itoa(size)
	if f, ok := fc[key]; ok {
		return f, nil
	}
	f, err := newFace(family, size)
	if err != nil {
		return nil, err
	}
	fc[key] = f
	return f, nil
}

func lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

func measureWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// wrapText greedily wraps text into lines no wider than maxWidth, never
// splitting a word. A single word wider than the panel gets its own line.
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 4)
	current := words[0]
	for _, word := range words[1:] {
		test := current + " " + word
		if measureWidth(face, test) > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	return append(lines, current)
}

// wrapHeadline applies the headline overflow policy: shrink in fixed steps
// until the wrapped text fits the line budget, then ellipsize.
func wrapHeadline(fc faceCache, family, text string, size, maxWidth int) ([]string, int, error) {
	for {
		face, err := fc.get(family, size)
		if err != nil {
			return nil, 0, err
		}
		lines := wrapText(face, text, maxWidth)
		if len(lines) <= headlineMaxLines || size-headlineShrinkStep < headlineMinSize {
			if len(lines) > headlineMaxLines {
				lines = lines[:headlineMaxLines]
				lines[headlineMaxLines-1] += "…"
			}
			return lines, size, nil
		}
		size -= headlineShrinkStep
	}
}

// buildPlan measures all visible content at the given body size and returns
// the placed items with their total height.
func buildPlan(content pamphlet.TextContent, style design.StyleConfiguration, areaW int, colAlign align, bodySize int) (*textPlan, error) {
	fc := make(faceCache)
	taglineSize, featureSize, ctaSize := design.TypographyScale(bodySize)
	lineGap := int(float64(bodySize) * style.LineSpacing)

	plan := &textPlan{featureTop: -1, featureBot: -1}
	y := 0
	push := func(it planItem) {
		plan.items = append(plan.items, it)
	}

	if headline := strings.TrimSpace(content.Headline); headline != "" && !content.Removed.Headline {
		lines, size, err := wrapHeadline(fc, style.HeadlineFont, strings.ToUpper(headline), style.HeadlineSize, areaW)
		if err != nil {
			return nil, err
		}
		face, err := fc.get(style.HeadlineFont, size)
		if err != nil {
			return nil, err
		}
		lh := lineHeight(face)
		for _, line := range lines {
			push(planItem{kind: itemText, text: line, family: style.HeadlineFont, size: size, color: style.HeadlineColor, align: colAlign, dy: y, lineH: lh})
			y += lh
		}
		y += size * 8 / 100
	}

	if tagline := strings.TrimSpace(content.Tagline); tagline != "" && !content.Removed.Tagline {
		face, err := fc.get(style.BodyFont, taglineSize)
		if err != nil {
			return nil, err
		}
		lh := lineHeight(face)
		push(planItem{kind: itemText, text: strings.ToUpper(tagline), family: style.BodyFont, size: taglineSize, color: style.BodyColor, align: colAlign, dy: y, lineH: lh})
		y += lh + taglineSize*40/100
	}

	if desc := strings.TrimSpace(content.Description); desc != "" && !content.Removed.Description {
		face, err := fc.get(style.BodyFont, bodySize)
		if err != nil {
			return nil, err
		}
		lh := lineHeight(face)
		for _, line := range wrapText(face, desc, areaW) {
			push(planItem{kind: itemText, text: line, family: style.BodyFont, size: bodySize, color: style.BodyColor, align: colAlign, dy: y, lineH: lh})
			y += lh + bodySize*15/100
		}
		y += lineGap
	}

	if len(content.Features) > 0 {
		bulletAlign := colAlign
		if style.Layout == design.LayoutCentered {
			bulletAlign = alignLeft
		}
		y += bodySize * 40 / 100
		plan.featureTop = y

		titleFace, err := fc.get(style.BodyFont, taglineSize)
		if err != nil {
			return nil, err
		}
		push(planItem{kind: itemText, text: "KEY FEATURES", family: style.BodyFont, size: taglineSize, color: style.HeadlineColor, align: bulletAlign, dy: y, lineH: lineHeight(titleFace)})
		y += lineHeight(titleFace) + featureSize*40/100

		face, err := fc.get(style.BodyFont, featureSize)
		if err != nil {
			return nil, err
		}
		lh := lineHeight(face)
		for _, feature := range content.Features {
			push(planItem{kind: itemText, text: "• " + feature, family: style.BodyFont, size: featureSize, color: style.BodyColor, align: bulletAlign, dy: y, lineH: lh})
			y += lh + featureSize*30/100
		}
		plan.featureBot = y
		y += lineGap
	}

	if cta := strings.TrimSpace(content.CallToAction); cta != "" && !content.Removed.CallToAction {
		face, err := fc.get(style.HeadlineFont, ctaSize)
		if err != nil {
			return nil, err
		}
		y += ctaSize * 40 / 100
		btnW := measureWidth(face, strings.ToUpper(cta)) + 2*ctaPaddingX
		btnH := lineHeight(face) + 2*ctaPaddingY
		if btnW > areaW {
			btnW = areaW
		}
		push(planItem{kind: itemCTA, text: strings.ToUpper(cta), family: style.HeadlineFont, size: ctaSize, color: style.CTATextColor, align: colAlign, dy: y, lineH: btnH, btnW: btnW})
		y += btnH
	}

	if len(content.CustomLines) > 0 && !content.Removed.Custom {
		face, err := fc.get(style.BodyFont, bodySize)
		if err != nil {
			return nil, err
		}
		lh := lineHeight(face)
		y += bodySize * 60 / 100
		for _, raw := range content.CustomLines {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			for _, line := range wrapText(face, raw, areaW) {
				push(planItem{kind: itemText, text: line, family: style.BodyFont, size: bodySize, color: style.BodyColor, align: colAlign, dy: y, lineH: lh})
				y += lh + bodySize*20/100
			}
		}
	}

	plan.height = y
	return plan, nil
}

// planContent builds the layout plan and applies the vertical overflow
// policy: shrink body-derived sizes in fixed steps to the floor, then drop
// trailing custom lines and feature bullets whole until the block fits.
func planContent(content pamphlet.TextContent, style design.StyleConfiguration, areaW int, colAlign align, panelH int) (*textPlan, error) {
	bodySize := style.BodySize
	plan, err := buildPlan(content, style, areaW, colAlign, bodySize)
	if err != nil {
		return nil, err
	}
	for plan.height > panelH && bodySize-bodyShrinkStep >= bodyMinSize {
		bodySize -= bodyShrinkStep
		if plan, err = buildPlan(content, style, areaW, colAlign, bodySize); err != nil {
			return nil, err
		}
	}
	for plan.height > panelH && len(content.CustomLines) > 0 {
		content.CustomLines = content.CustomLines[:len(content.CustomLines)-1]
		if plan, err = buildPlan(content, style, areaW, colAlign, bodySize); err != nil {
			return nil, err
		}
	}
	for plan.height > panelH && len(content.Features) > 0 {
		content.Features = content.Features[:len(content.Features)-1]
		if plan, err = buildPlan(content, style, areaW, colAlign, bodySize); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// composeLayout renders panels and, when renderText is set, glyphs over the
// prepared background. The background must already match the canvas size.
func composeLayout(background *image.NRGBA, content pamphlet.TextContent, style design.StyleConfiguration, renderText bool) (*image.NRGBA, error) {
	w, h := style.CanvasWidth, style.CanvasHeight
	marginX := w * 8 / 100
	topMargin := h * 8 / 100
	bottomMargin := h * 12 / 100
	areaW := w - 2*marginX
	xStart := marginX
	colAlign := alignCenter

	switch style.Layout {
	case design.LayoutLeft:
		colAlign = alignLeft
	case design.LayoutRight:
		colAlign = alignRight
	case design.LayoutSplit:
		colAlign = alignLeft
		areaW = w * 42 / 100
		xStart = w - areaW - marginX
	}

	panelRect := image.Rect(xStart, topMargin, xStart+areaW, h-bottomMargin)
	panelH := panelRect.Dy()

	canvas := imaging.Clone(background)
	if style.PanelOpacity > 0 {
		canvas = ApplyDropShadow(canvas, panelRect, style.PanelRadius, style.ShadowIntensity)
	}

	dc := gg.NewContextForImage(canvas)
	if style.PanelOpacity > 0 {
		setRGB(dc, style.PanelColor, style.PanelOpacity)
		dc.DrawRoundedRectangle(float64(panelRect.Min.X), float64(panelRect.Min.Y), float64(panelRect.Dx()), float64(panelRect.Dy()), float64(style.PanelRadius))
		dc.Fill()
	}

	plan, err := planContent(content, style, areaW, colAlign, panelH)
	if err != nil {
		return nil, err
	}

	yStart := panelRect.Min.Y
	switch style.TextPlacement {
	case design.PlaceMiddle:
		if d := panelH - plan.height; d > 0 {
			yStart += d / 2
		}
	case design.PlaceBottom:
		if d := panelH - plan.height; d > 0 {
			yStart += d
		}
	}

	// Feature block background renders on both layers.
	if plan.featureTop >= 0 && style.PanelOpacity > 0 {
		pad := 10
		setRGB(dc, style.PanelColor, style.PanelOpacity*0.6)
		dc.DrawRoundedRectangle(float64(xStart-pad), float64(yStart+plan.featureTop-pad), float64(areaW+2*pad), float64(plan.featureBot-plan.featureTop+2*pad), float64(style.PanelRadius)/2)
		dc.Fill()
	}

	fc := make(faceCache)
	for _, it := range plan.items {
		switch it.kind {
		case itemCTA:
			if err := drawCTA(dc, it, style, xStart, yStart, areaW, renderText, fc); err != nil {
				return nil, err
			}
		case itemText:
			if !renderText {
				continue
			}
			if err := drawTextLine(dc, it, style, xStart, yStart, areaW, fc); err != nil {
				return nil, err
			}
		}
	}

	return imaging.Clone(dc.Image()), nil
}

// drawTextLine renders one line with its optional shadow pass.
func drawTextLine(dc *gg.Context, it planItem, style design.StyleConfiguration, xStart, yStart, areaW int, fc faceCache) error {
	face, err := fc.get(it.family, it.size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	tw := measureWidth(face, it.text)
	x := xStart
	switch it.align {
	case alignRight:
		x = xStart + areaW - tw
	case alignCenter:
		x = xStart + (areaW-tw)/2
	}
	baseline := float64(yStart + it.dy + ascent(face))

	if style.TextShadow > 0 {
		shadowAlpha := math.Min(200, 2.4*float64(style.TextShadow)) / 255
		dc.SetRGBA(0, 0, 0, shadowAlpha)
		for _, off := range [][2]int{{-2, 2}, {2, 2}, {0, 3}} {
			dc.DrawString(it.text, float64(x+off[0]), baseline+float64(off[1]))
		}
	}
	setRGB(dc, it.color, 1)
	dc.DrawString(it.text, float64(x), baseline)
	return nil
}

// drawCTA renders the button shape on every layer and its label only on the
// final one.
func drawCTA(dc *gg.Context, it planItem, style design.StyleConfiguration, xStart, yStart, areaW int, renderText bool, fc faceCache) error {
	btnX := xStart
	switch it.align {
	case alignRight:
		btnX = xStart + areaW - it.btnW
	case alignCenter:
		btnX = xStart + (areaW-it.btnW)/2
	}
	btnY := yStart + it.dy
	radius := float64(maxIntRender(18, style.BorderRadius))

	if style.ShadowIntensity > 0 {
		alpha := math.Min(255, 1.5*float64(style.ShadowIntensity)) / 255
		rect := image.Rect(btnX+3, btnY+6, btnX+3+it.btnW, btnY+6+it.lineH)
		dc.DrawImage(roundedShadow(dc.Width(), dc.Height(), rect, radius, alpha, 6), 0, 0)
	}

	setRGB(dc, style.CTABgColor, 235.0/255)
	dc.DrawRoundedRectangle(float64(btnX), float64(btnY), float64(it.btnW), float64(it.lineH), radius)
	dc.Fill()

	if !renderText {
		return nil
	}
	face, err := fc.get(it.family, it.size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	tw := measureWidth(face, it.text)
	tx := btnX + (it.btnW-tw)/2
	ty := btnY + (it.lineH-lineHeight(face))/2 + ascent(face)
	setRGB(dc, style.CTATextColor, 1)
	dc.DrawString(it.text, float64(tx), float64(ty))
	return nil
}

func setRGB(dc *gg.Context, c design.RGB, alpha float64) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
}

func maxIntRender(a, b int) int {
	if a > b {
		return a
	}
	return b
}
