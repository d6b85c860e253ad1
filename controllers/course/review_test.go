package controllers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	courseModels "learnhub/models/course"
)

func TestSubmitReview(t *testing.T) {
	app, db := setup(t)

	user := createUser(t, db, "student1")
	createCourse(t, db, "Go Basics", 0)
	token := tokenFor(t, user)

	resp := doRequest(t, app, http.MethodPost, "/course/1/review", token, fiber.Map{
		"rating":  5,
		"comment": "great course",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var total int64
	db.Model(&courseModels.Review{}).Where("user_id = ?", user.ID).Count(&total)
	assert.EqualValues(t, 1, total)
}

func TestSubmitReviewRatingOutOfRange(t *testing.T) {
	app, db := setup(t)

	user := createUser(t, db, "student1")
	createCourse(t, db, "Go Basics", 0)
	token := tokenFor(t, user)

	for _, rating := range []int{0, 6, -1} {
		resp := doRequest(t, app, http.MethodPost, "/course/1/review", token, fiber.Map{
			"rating": rating,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	}

	var total int64
	db.Model(&courseModels.Review{}).Count(&total)
	assert.EqualValues(t, 0, total)
}

func TestSubmitReviewTwiceAllowed(t *testing.T) {
	// No uniqueness constraint on reviews: each submission is a new row.
	app, db := setup(t)

	user := createUser(t, db, "student1")
	createCourse(t, db, "Go Basics", 0)
	token := tokenFor(t, user)

	for i := 0; i < 2; i++ {
		resp := doRequest(t, app, http.MethodPost, "/course/1/review", token, fiber.Map{
			"rating": 4,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var total int64
	db.Model(&courseModels.Review{}).Where("user_id = ?", user.ID).Count(&total)
	assert.EqualValues(t, 2, total)
}
