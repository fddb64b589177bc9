package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anmol-virk/blitzgramm-backend/database"
	"github.com/anmol-virk/blitzgramm-backend/helper"
)

func TestFollowStateError(t *testing.T) {
	tests := []struct {
		name               string
		currentlyFollowing bool
		wantFollow         bool
		wantMessage        string
	}{
		{"follow when not followed", false, true, ""},
		{"follow when already followed", true, true, "User is already followed."},
		{"unfollow when followed", true, false, ""},
		{"unfollow when not followed", false, false, "User is not currently followed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, followStateError(tt.currentlyFollowing, tt.wantFollow))
		})
	}
}

func TestFollowUser_Self(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/users/follow/:followUserId", FollowUser)

	body := strings.NewReader(`{"id":"507f1f77bcf86cd799439011"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/follow/507f1f77bcf86cd799439011", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "You cannot follow yourself.")
}

func TestUnfollowUser_Self(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/users/unfollow/:followUserId", UnfollowUser)

	body := strings.NewReader(`{"id":"507f1f77bcf86cd799439011"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/unfollow/507f1f77bcf86cd799439011", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "You cannot unfollow yourself.")
}

func TestFollowUser_InvalidTargetID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/users/follow/:followUserId", FollowUser)

	body := strings.NewReader(`{"id":"507f1f77bcf86cd799439011"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/follow/not-hex", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid user ID.")
}

func TestSignUp_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/user/signup", SignUp)

	body := strings.NewReader(`{"name":"only a name"}`)
	req := httptest.NewRequest(http.MethodPost, "/user/signup", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestCredentialFlow_TokenClaimsMatchUser walks the signup/login seams: the
// stored hash verifies against the original password and the issued token
// decodes back to the same user id.
func TestCredentialFlow_TokenClaimsMatchUser(t *testing.T) {
	helper.InitTokenHelper("test-secret")

	hash, err := hashPassword("p")
	require.NoError(t, err)

	require.NoError(t, checkPassword(hash, "p"))
	assert.Error(t, checkPassword(hash, "wrong"))

	userID := primitive.NewObjectID()
	token, err := helper.GenerateToken(userID.Hex(), "a@x.com", "user")
	require.NoError(t, err)

	claims, err := helper.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

// A store that cannot be reached must surface as a 500, not as a credential
// rejection.
func TestLogin_StoreError(t *testing.T) {
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond).
		SetConnectTimeout(50*time.Millisecond))
	require.NoError(t, err)

	database.Client = client
	t.Cleanup(func() { database.Client = nil })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/user/login", Login)

	body := strings.NewReader(`{"email":"a@x.com","password":"p"}`)
	req := httptest.NewRequest(http.MethodPost, "/user/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error.")
}

func TestLogin_EmptyCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/user/login", Login)

	body := strings.NewReader(`{"email":"","password":""}`)
	req := httptest.NewRequest(http.MethodPost, "/user/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email or Password is empty")
}
