package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anmol-virk/blitzgramm-backend/controllers"
	"github.com/anmol-virk/blitzgramm-backend/middlewares"
)

func PostRouter(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/user/post", middlewares.RequireAuth, controllers.CreatePost)
	incomingRoutes.GET("/posts", middlewares.RequireAuth, controllers.GetAllPosts)
	incomingRoutes.GET("/posts/:postId", middlewares.RequireAuth, controllers.GetPostById)
	incomingRoutes.PUT("/posts/edit/:postId", middlewares.RequireAuth, controllers.UpdatePost)
	incomingRoutes.DELETE("/user/posts/:postId", middlewares.RequireAuth, controllers.DeletePost)

	// like toggling requires no token
	incomingRoutes.POST("/posts/like/:postId", controllers.ToggleLike)
}
