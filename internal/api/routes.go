package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the pamphlet API on the router.
func RegisterRoutes(r *gin.Engine, a *API) {
	grp := r.Group("/api")
	{
		grp.GET("/health", a.health)
		grp.POST("/generate", a.generate)
		grp.POST("/edit", a.edit)
		grp.GET("/download/:filename", a.download)
		grp.GET("/qr", a.shareQR)
	}
}
