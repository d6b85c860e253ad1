package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "learnhub/models/course"
)

func TestHomeListsAtMostFourCourses(t *testing.T) {
	app, db := setup(t)

	for i := 1; i <= 6; i++ {
		createCourse(t, db, fmt.Sprintf("Course %d", i), 0)
	}

	resp := doRequest(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Courses []courseModels.Course `json:"courses"`
	}
	decodeData(t, resp, &data)
	assert.Len(t, data.Courses, 4)
}

func TestGetAllCourses(t *testing.T) {
	app, db := setup(t)

	for i := 1; i <= 6; i++ {
		createCourse(t, db, fmt.Sprintf("Course %d", i), 0)
	}

	resp := doRequest(t, app, http.MethodGet, "/courses", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Courses []courseModels.Course `json:"courses"`
	}
	decodeData(t, resp, &data)
	assert.Len(t, data.Courses, 6)
}

func TestGetCourseDetails(t *testing.T) {
	app, db := setup(t)

	course := createCourse(t, db, "Go Basics", 0)
	module := courseModels.Module{CourseID: course.ID, Title: "Getting Started"}
	require.NoError(t, db.Create(&module).Error)
	video := courseModels.Video{
		ModuleID:   module.ID,
		Title:      "Intro",
		YoutubeURL: "https://www.youtube.com/watch?v=abc123&t=5",
	}
	require.NoError(t, db.Create(&video).Error)

	resp := doRequest(t, app, http.MethodGet, "/course/1", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Course  courseModels.Course `json:"course"`
		Modules []struct {
			Title  string `json:"title"`
			Videos []struct {
				Title     string `json:"title"`
				EmbedURL  string `json:"embed_url"`
				Thumbnail string `json:"thumbnail"`
			} `json:"videos"`
		} `json:"modules"`
	}
	decodeData(t, resp, &data)

	assert.Equal(t, "Go Basics", data.Course.Title)
	require.Len(t, data.Modules, 1)
	require.Len(t, data.Modules[0].Videos, 1)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", data.Modules[0].Videos[0].EmbedURL)
	assert.Equal(t, "https://img.youtube.com/vi/abc123/hqdefault.jpg", data.Modules[0].Videos[0].Thumbnail)
}

func TestGetCourseDetailsIncludesOwnReview(t *testing.T) {
	app, db := setup(t)

	user := createUser(t, db, "student1")
	course := createCourse(t, db, "Go Basics", 0)
	review := courseModels.Review{CourseID: course.ID, UserID: user.ID, Rating: 4, Comment: "solid"}
	require.NoError(t, db.Create(&review).Error)

	// anonymous request carries no user review
	resp := doRequest(t, app, http.MethodGet, "/course/1", "", nil)
	var anon struct {
		UserReview *courseModels.Review `json:"user_review"`
	}
	decodeData(t, resp, &anon)
	assert.Nil(t, anon.UserReview)

	resp = doRequest(t, app, http.MethodGet, "/course/1", tokenFor(t, user), nil)
	var own struct {
		UserReview *courseModels.Review `json:"user_review"`
	}
	decodeData(t, resp, &own)
	require.NotNil(t, own.UserReview)
	assert.Equal(t, 4, own.UserReview.Rating)
}

func TestGetCourseDetailsNotFound(t *testing.T) {
	app, _ := setup(t)

	resp := doRequest(t, app, http.MethodGet, "/course/99", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
