package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anmol-virk/blitzgramm-backend/config"
	"github.com/anmol-virk/blitzgramm-backend/controllers"
	"github.com/anmol-virk/blitzgramm-backend/database"
	"github.com/anmol-virk/blitzgramm-backend/helper"
	"github.com/anmol-virk/blitzgramm-backend/logger"
	"github.com/anmol-virk/blitzgramm-backend/routes"
	"github.com/anmol-virk/blitzgramm-backend/upload"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	cfg := config.Load()

	helper.InitTokenHelper(cfg.JWTSecret)

	database.Connect(cfg)

	provider, err := upload.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		logger.Log.Fatal("failed to configure upload provider", zap.Error(err))
	}
	controllers.InitImageController(provider)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	routes.AuthRouter(router)
	routes.ImageRouter(router)
	routes.PostRouter(router)
	routes.UserRouter(router)
	routes.BookmarkRouter(router)

	logger.Log.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
