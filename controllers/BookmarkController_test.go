package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBookmarkRules_DuplicateAndMissing(t *testing.T) {
	// bookmarking a post that does not exist
	status, msg := bookmarkAddError(false, false)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "post not found.", msg)

	// a post with no bookmark yet can be bookmarked
	bookmarked := map[string]bool{}
	postID := "507f1f77bcf86cd799439011"

	status, _ = bookmarkAddError(true, bookmarked[postID])
	assert.Zero(t, status)
	bookmarked[postID] = true

	// bookmarking the same post a second time is rejected
	status, msg = bookmarkAddError(true, bookmarked[postID])
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Post is already bookmarked.", msg)

	// removing it once succeeds, removing it again is not found
	status, _ = bookmarkRemoveError(bookmarked[postID])
	assert.Zero(t, status)
	delete(bookmarked, postID)

	status, msg = bookmarkRemoveError(bookmarked[postID])
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Bookmark not found.", msg)
}

func TestAddBookmark_InvalidPostID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/users/bookmark/:postId", AddBookmark)

	req := httptest.NewRequest(http.MethodPost, "/users/bookmark/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid userId or postId.")
}

func TestRemoveBookmark_InvalidPostID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/users/remove-bookmark/:postId", RemoveBookmark)

	req := httptest.NewRequest(http.MethodDelete, "/users/remove-bookmark/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid userId or postId.")
}
