package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anmol-virk/blitzgramm-backend/controllers"
	"github.com/anmol-virk/blitzgramm-backend/middlewares"
)

func UserRouter(incomingRoutes *gin.Engine) {
	// raw user record creation requires no token
	incomingRoutes.POST("/users", controllers.CreateUser)

	incomingRoutes.GET("/users", middlewares.RequireAuth, controllers.GetAllUsers)
	incomingRoutes.PUT("/users/:userId", middlewares.RequireAuth, controllers.UpdateUser)
	incomingRoutes.POST("/users/follow/:followUserId", middlewares.RequireAuth, controllers.FollowUser)
	incomingRoutes.POST("/users/unfollow/:followUserId", middlewares.RequireAuth, controllers.UnfollowUser)
}
