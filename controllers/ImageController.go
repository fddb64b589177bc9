package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/anmol-virk/blitzgramm-backend/database"
	"github.com/anmol-virk/blitzgramm-backend/logger"
	"github.com/anmol-virk/blitzgramm-backend/models"
	"github.com/anmol-virk/blitzgramm-backend/upload"
)

var imageUploader upload.Provider

// InitImageController wires the external upload provider. Called from main.
func InitImageController(provider upload.Provider) {
	imageUploader = provider
}

func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Log.Error("upload open failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	imageURL, err := imageUploader.Upload(ctx, file)
	if err != nil {
		logger.Log.Error("upload to provider failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
		return
	}

	image := models.Image{
		ID:       primitive.NewObjectID(),
		ImageURL: imageURL,
	}

	imageCollection := database.OpenCollection(database.Client, "images")
	if _, err := imageCollection.InsertOne(ctx, image); err != nil {
		logger.Log.Error("image insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"data":    gin.H{"imageUrl": image.ImageURL, "imageId": image.ID},
	})
}

func GetImages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	imageCollection := database.OpenCollection(database.Client, "images")

	images := []models.Image{}
	cursor, err := imageCollection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.Error("image listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch images"})
		return
	}
	if err := cursor.All(ctx, &images); err != nil {
		logger.Log.Error("image listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch images"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"images": images}})
}
