package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/anmol-virk/blitzgramm-backend/database"
	"github.com/anmol-virk/blitzgramm-backend/helper"
	"github.com/anmol-virk/blitzgramm-backend/logger"
	"github.com/anmol-virk/blitzgramm-backend/models"
)

var validate = validator.New()

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func SignUp(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := validate.Struct(user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// check whether the email is already registered
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")

	err := userCollection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use."})
		return
	}
	if err != mongo.ErrNoDocuments {
		logger.Log.Error("signup lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user. Try again."})
		return
	}

	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		logger.Log.Error("password hashing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user. Try again."})
		return
	}

	user.ID = primitive.NewObjectID()
	user.Password = hashedPassword
	user.Following = false
	user.Posts = []primitive.ObjectID{}

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		logger.Log.Error("signup insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user. Try again."})
		return
	}

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully.", "data": gin.H{"user": user}})
}

func Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if body.Email == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email or Password is empty"})
		return
	}

	user, err := helper.GetUserByEmail(body.Email)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}
	if err != nil {
		logger.Log.Error("login lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error. Please try again later."})
		return
	}

	if err := checkPassword(user.Password, body.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
		return
	}

	token, err := helper.GenerateToken(user.ID.Hex(), user.Email, "user")
	if err != nil {
		logger.Log.Error("token signing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"user": gin.H{
			"userId": user.ID,
			"name":   user.Name,
			"email":  user.Email,
		},
		"token": token,
	}})
}

// CreateUser adds a bare user record without credentials or auth. Anyone can
// call it; kept open to match the existing API surface.
func CreateUser(c *gin.Context) {
	var body struct {
		Name      string `json:"name"`
		Picture   string `json:"picture"`
		Bio       string `json:"bio"`
		Following bool   `json:"following"`
		Post      string `json:"post"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts := []primitive.ObjectID{}
	if body.Post != "" {
		postID, err := primitive.ObjectIDFromHex(body.Post)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID."})
			return
		}
		posts = append(posts, postID)
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      body.Name,
		Picture:   body.Picture,
		Bio:       body.Bio,
		Following: body.Following,
		Posts:     posts,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		logger.Log.Error("user insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{"message": "User added successfully", "data": gin.H{"user": user}})
}

type userPost struct {
	ID      primitive.ObjectID `json:"_id"`
	Content string             `json:"content"`
}

type populatedUser struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Picture   string             `json:"picture"`
	Bio       string             `json:"bio"`
	Following bool               `json:"following"`
	Email     string             `json:"email"`
	Posts     []userPost         `json:"post"`
}

func GetAllUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")

	var users []models.User
	cursor, err := userCollection.Find(ctx, bson.M{})
	if err != nil {
		logger.Log.Error("user listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := cursor.All(ctx, &users); err != nil {
		logger.Log.Error("user listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// resolve owned post references to {_id, content}
	postIDs := []primitive.ObjectID{}
	for _, user := range users {
		postIDs = append(postIDs, user.Posts...)
	}

	postsByID := map[primitive.ObjectID]models.Post{}
	if len(postIDs) > 0 {
		postCollection := database.OpenCollection(database.Client, "posts")
		postCursor, err := postCollection.Find(ctx, bson.M{"_id": bson.M{"$in": postIDs}})
		if err != nil {
			logger.Log.Error("post resolution failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		var posts []models.Post
		if err := postCursor.All(ctx, &posts); err != nil {
			logger.Log.Error("post resolution failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		for _, post := range posts {
			postsByID[post.ID] = post
		}
	}

	result := []populatedUser{}
	for _, user := range users {
		resolved := []userPost{}
		for _, id := range user.Posts {
			if post, ok := postsByID[id]; ok {
				resolved = append(resolved, userPost{ID: post.ID, Content: post.Content})
			}
		}
		result = append(result, populatedUser{
			ID:        user.ID,
			Name:      user.Name,
			Picture:   user.Picture,
			Bio:       user.Bio,
			Following: user.Following,
			Email:     user.Email,
			Posts:     resolved,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"users": result}})
}

func UpdateUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID."})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(fields, "_id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")

	var user models.User
	if len(fields) == 0 {
		err = userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	} else {
		err = userCollection.FindOneAndUpdate(
			ctx,
			bson.M{"_id": userID},
			bson.M{"$set": fields},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&user)
	}
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	if err != nil {
		logger.Log.Error("user update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"user": user}})
}

// followStateError reports why the target's follow flag cannot move to the
// wanted state. The flag is a single boolean on the target, not a relation, so
// "already followed" is global rather than per follower.
func followStateError(currentlyFollowing, wantFollow bool) string {
	if wantFollow && currentlyFollowing {
		return "User is already followed."
	}
	if !wantFollow && !currentlyFollowing {
		return "User is not currently followed."
	}
	return ""
}

func FollowUser(c *gin.Context) {
	changeFollowState(c, true)
}

func UnfollowUser(c *gin.Context) {
	changeFollowState(c, false)
}

func changeFollowState(c *gin.Context, follow bool) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	followUserID := c.Param("followUserId")
	if body.ID == followUserID {
		if follow {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself."})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot unfollow yourself."})
		}
		return
	}

	targetID, err := primitive.ObjectIDFromHex(followUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID."})
		return
	}

	target, err := helper.GetUserById(targetID)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	if err != nil {
		logger.Log.Error("follow lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	if msg := followStateError(target.Following, follow); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userCollection := database.OpenCollection(database.Client, "users")

	_, err = userCollection.UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{"$set": bson.M{"following": follow}})
	if err != nil {
		logger.Log.Error("follow update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	if follow {
		c.JSON(http.StatusOK, gin.H{"message": "Followed successfully."})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully."})
	}
}
