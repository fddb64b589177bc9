package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anmol-virk/blitzgramm-backend/controllers"
	"github.com/anmol-virk/blitzgramm-backend/middlewares"
)

func BookmarkRouter(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/bookmark/:postId", middlewares.RequireAuth, controllers.AddBookmark)
	incomingRoutes.DELETE("/users/remove-bookmark/:postId", middlewares.RequireAuth, controllers.RemoveBookmark)
	incomingRoutes.GET("/users/bookmarks", middlewares.RequireAuth, controllers.GetBookmarks)
}
