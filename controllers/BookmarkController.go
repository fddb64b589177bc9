package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/anmol-virk/blitzgramm-backend/database"
	"github.com/anmol-virk/blitzgramm-backend/logger"
	"github.com/anmol-virk/blitzgramm-backend/models"
)

// bookmarkAddError reports why a post cannot be bookmarked: it must exist and
// carry no bookmark yet anywhere in the store (bookmarks have no user
// reference, so uniqueness is global, not per user).
func bookmarkAddError(postExists, alreadyBookmarked bool) (int, string) {
	if !postExists {
		return http.StatusNotFound, "post not found."
	}
	if alreadyBookmarked {
		return http.StatusBadRequest, "Post is already bookmarked."
	}
	return 0, ""
}

// bookmarkRemoveError reports why a bookmark cannot be removed.
func bookmarkRemoveError(found bool) (int, string) {
	if !found {
		return http.StatusNotFound, "Bookmark not found."
	}
	return 0, ""
}

func AddBookmark(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId or postId."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	postExists := true
	postCollection := database.OpenCollection(database.Client, "posts")
	err = postCollection.FindOne(ctx, bson.M{"_id": postID}).Err()
	if err == mongo.ErrNoDocuments {
		postExists = false
	} else if err != nil {
		logger.Log.Error("bookmark post lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	alreadyBookmarked := false
	bookmarkCollection := database.OpenCollection(database.Client, "bookmarks")
	if postExists {
		err = bookmarkCollection.FindOne(ctx, bson.M{"post": postID}).Err()
		if err == nil {
			alreadyBookmarked = true
		} else if err != mongo.ErrNoDocuments {
			logger.Log.Error("bookmark lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
			return
		}
	}

	if status, msg := bookmarkAddError(postExists, alreadyBookmarked); status != 0 {
		c.JSON(status, gin.H{"error": msg})
		return
	}

	bookmark := models.Bookmark{
		ID:   primitive.NewObjectID(),
		Post: postID,
	}
	if _, err := bookmarkCollection.InsertOne(ctx, bookmark); err != nil {
		logger.Log.Error("bookmark insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post bookmarked successfully.", "data": gin.H{"bookmark": bookmark}})
}

func RemoveBookmark(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId or postId."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	bookmarkCollection := database.OpenCollection(database.Client, "bookmarks")

	err = bookmarkCollection.FindOneAndDelete(ctx, bson.M{"post": postID}).Err()
	if err != nil && err != mongo.ErrNoDocuments {
		logger.Log.Error("bookmark delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	if status, msg := bookmarkRemoveError(err == nil); status != 0 {
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed successfully."})
}

type populatedBookmark struct {
	ID   primitive.ObjectID `json:"_id"`
	Post *models.Post       `json:"post"`
}

func GetBookmarks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	bookmarkCollection := database.OpenCollection(database.Client, "bookmarks")

	var bookmarks []models.Bookmark
	cursor, err := bookmarkCollection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.Error("bookmark listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}
	if err := cursor.All(ctx, &bookmarks); err != nil {
		logger.Log.Error("bookmark listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	// resolve referenced posts; a bookmark whose post was deleted keeps a nil
	// post rather than disappearing from the listing
	postIDs := []primitive.ObjectID{}
	for _, bookmark := range bookmarks {
		postIDs = append(postIDs, bookmark.Post)
	}

	postsByID := map[primitive.ObjectID]models.Post{}
	if len(postIDs) > 0 {
		postCollection := database.OpenCollection(database.Client, "posts")
		postCursor, err := postCollection.Find(ctx, bson.M{"_id": bson.M{"$in": postIDs}})
		if err != nil {
			logger.Log.Error("bookmark post resolution failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
			return
		}
		var posts []models.Post
		if err := postCursor.All(ctx, &posts); err != nil {
			logger.Log.Error("bookmark post resolution failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
			return
		}
		for _, post := range posts {
			postsByID[post.ID] = post
		}
	}

	result := []populatedBookmark{}
	for _, bookmark := range bookmarks {
		populated := populatedBookmark{ID: bookmark.ID}
		if post, ok := postsByID[bookmark.Post]; ok {
			populated.Post = &post
		}
		result = append(result, populated)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmarks fetched successfully.", "data": gin.H{"bookmarks": result}})
}
