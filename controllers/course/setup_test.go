package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseModels "learnhub/models/course"
	"learnhub/repository"
	courseValidators "learnhub/validators/course"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // a second :memory: connection would be a fresh db
	database.RunMigrations(db)

	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	modules := repository.NewModuleRepository(db)
	videos := repository.NewVideoRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	progress := repository.NewProgressRepository(db)
	reviews := repository.NewReviewRepository(db)

	courseCtrl := NewCourseController(courses, modules, videos, reviews)
	enrollCtrl := NewEnrollmentController(users, courses, enrollments, progress)
	reviewCtrl := NewReviewController(courses, reviews)

	app := fiber.New()
	app.Get("/", courseCtrl.Home)
	app.Get("/courses", courseCtrl.GetAllCourses)
	app.Get("/course/:id", middleware.OptionalJWTMiddleware, courseValidators.GetCourseDetail(), courseCtrl.GetCourseDetails)
	app.Post("/enroll/:courseId", middleware.JWTMiddleware, courseValidators.EnrollCourse(), enrollCtrl.EnrollInCourse)
	app.Post("/course/:id/review", middleware.JWTMiddleware, courseValidators.SubmitReview(), reviewCtrl.SubmitReview)

	return app, db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Username: username, Password: string(hashed)}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, title string, price float64) courseModels.Course {
	t.Helper()
	course := courseModels.Course{Title: title, Description: "test course", IsPaid: price > 0, Price: price}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) string {
	t.Helper()
	var envelope struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	if out != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
	return envelope.Message
}
