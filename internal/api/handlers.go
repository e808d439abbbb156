package api

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/youruser/pamphletapp/internal/design"
	"github.com/youruser/pamphletapp/internal/imagegen"
	"github.com/youruser/pamphletapp/internal/pamphlet"
	"github.com/youruser/pamphletapp/internal/render"
	"github.com/youruser/pamphletapp/internal/storage"
	"github.com/youruser/pamphletapp/internal/textgen"
)

// API wires the handlers to their collaborators.
type API struct {
	Text          *textgen.Client
	Image         *imagegen.Client
	Store         *storage.Store
	PublicBaseURL string
	Log           zerolog.Logger
}

func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generate runs the full pipeline: copy generation, background generation,
// compositing, persistence.
func (a *API) generate(c *gin.Context) {
	var req pamphlet.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		a.fail(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if missing := missingField(req); missing != "" {
		a.fail(c, http.StatusBadRequest, "Missing required field: "+missing)
		return
	}

	ctx := c.Request.Context()
	content := pamphlet.Refine(a.Text.GenerateContent(ctx, req))

	background, err := a.Image.Background(ctx, req)
	if err != nil {
		a.failErr(c, fmt.Errorf("generate background: %w", err))
		return
	}
	baseImg, err := render.DecodeImage(background)
	if err != nil {
		a.failErr(c, err)
		return
	}

	layout := string(design.NextLayoutMode(req.RegenerationIndex))
	style, err := design.Resolve(req.ColorScheme, req.Style, &design.Overrides{Layout: &layout})
	if err != nil {
		a.failErr(c, err)
		return
	}

	layers, err := render.Render(baseImg, content, style)
	if err != nil {
		a.failErr(c, err)
		return
	}
	finalPNG, err := render.EncodePNG(layers.Final)
	if err != nil {
		a.failErr(c, err)
		return
	}
	basePNG, err := render.EncodePNG(layers.Textless)
	if err != nil {
		a.failErr(c, err)
		return
	}

	filename, err := a.Store.Save(req.ProductName, finalPNG)
	if err != nil {
		a.failErr(c, err)
		return
	}
	a.Log.Info().Str("filename", filename).Int("regeneration", req.RegenerationIndex).Msg("pamphlet generated")

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"image":             base64.StdEncoding.EncodeToString(finalPNG),
		"layout_base_image": base64.StdEncoding.EncodeToString(basePNG),
		"text_content":      content,
		"filename":          filename,
		"message":           "Pamphlet generated successfully!",
	})
}

type editRequest struct {
	OriginalImage string                `json:"originalImage"`
	Edits         design.Overrides      `json:"edits"`
	TextContent   *pamphlet.TextContent `json:"textContent"`
	Filename      string                `json:"filename"`
	ColorScheme   string                `json:"colorScheme"`
	Style         string                `json:"style"`
}

// edit replays the full render from the original background with the current
// edit set. Nothing from any previous render is reused.
func (a *API) edit(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.fail(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.OriginalImage == "" {
		a.fail(c, http.StatusBadRequest, "Missing required field: originalImage")
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.OriginalImage)
	if err != nil {
		a.fail(c, http.StatusBadRequest, "originalImage is not valid base64")
		return
	}
	baseImg, err := render.DecodeImage(raw)
	if err != nil {
		a.failErr(c, err)
		return
	}

	style, err := design.Resolve(req.ColorScheme, req.Style, &req.Edits)
	if err != nil {
		a.failErr(c, err)
		return
	}
	var content pamphlet.TextContent
	if req.TextContent != nil {
		content = *req.TextContent
	}

	layers, err := render.Render(baseImg, content, style)
	if err != nil {
		a.failErr(c, err)
		return
	}
	finalPNG, err := render.EncodePNG(layers.Final)
	if err != nil {
		a.failErr(c, err)
		return
	}
	basePNG, err := render.EncodePNG(layers.Textless)
	if err != nil {
		a.failErr(c, err)
		return
	}

	name := "edited"
	if req.Filename != "" {
		name = "edited_" + strings.TrimSuffix(req.Filename, ".png")
	}
	filename, err := a.Store.Save(name, finalPNG)
	if err != nil {
		a.failErr(c, err)
		return
	}
	a.Log.Info().Str("filename", filename).Msg("pamphlet edited")

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"editedImage":     base64.StdEncoding.EncodeToString(finalPNG),
		"layoutBaseImage": base64.StdEncoding.EncodeToString(basePNG),
		"filename":        filename,
		"message":         "Pamphlet edited successfully!",
	})
}

// download serves a persisted pamphlet as an attachment.
func (a *API) download(c *gin.Context) {
	filename := c.Param("filename")
	path, err := a.Store.Path(filename)
	if err != nil {
		a.failErr(c, err)
		return
	}
	c.FileAttachment(path, filename)
}

func missingField(req pamphlet.Request) string {
	switch {
	case req.ProductName == "":
		return "product_name"
	case req.Description == "":
		return "description"
	case req.Tone == "":
		return "tone"
	case req.TargetAudience == "":
		return "target_audience"
	case len(req.KeyFeatures) == 0:
		return "key_features"
	case req.CallToAction == "":
		return "call_to_action"
	}
	return ""
}

func (a *API) fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// failErr maps error kinds onto HTTP statuses.
func (a *API) failErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, design.ErrInvalidConfiguration), errors.Is(err, render.ErrDecodeFailure):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, imagegen.ErrNoAPIKey):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		a.Log.Error().Err(err).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
