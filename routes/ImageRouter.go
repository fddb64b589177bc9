package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anmol-virk/blitzgramm-backend/controllers"
)

// ImageRouter registers the upload endpoints. Neither requires a token.
func ImageRouter(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/upload", controllers.UploadImage)
	incomingRoutes.GET("/images", controllers.GetImages)
}
