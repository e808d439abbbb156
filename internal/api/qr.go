package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/pamphletapp/internal/storage"
)

// shareQR returns a QR code PNG pointing at the download URL for a stored
// pamphlet, so the result can be pulled onto a phone.
func (a *API) shareQR(c *gin.Context) {
	filename := c.Query("filename")
	if _, err := a.Store.Path(filename); err != nil {
		a.failErr(c, storage.ErrNotFound)
		return
	}
	url := a.PublicBaseURL + "/api/download/" + filename
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		a.failErr(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
