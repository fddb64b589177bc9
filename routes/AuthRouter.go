package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anmol-virk/blitzgramm-backend/controllers"
)

func AuthRouter(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/user/signup", controllers.SignUp)
	incomingRoutes.POST("/user/login", controllers.Login)
}
