package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"learnhub/config"
	authControllers "learnhub/controllers/auth"
	courseControllers "learnhub/controllers/course"
	paymentControllers "learnhub/controllers/payment"
	userControllers "learnhub/controllers/userControllers"
	"learnhub/database"
	"learnhub/gateway"
	"learnhub/repository"
	authRoutes "learnhub/routers/authRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	paymentRoutes "learnhub/routers/paymentRoutes"
	userProfileRoutes "learnhub/routers/userRoutes"
)

func main() {
	config.LoadConfig()
	db := database.ConnectDb()

	// Repositories
	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	modules := repository.NewModuleRepository(db)
	videos := repository.NewVideoRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	progress := repository.NewProgressRepository(db)
	reviews := repository.NewReviewRepository(db)
	payments := repository.NewPaymentRepository(db)

	// Payment gateway client, built from config and passed in explicitly
	razorpay := gateway.NewRazorpayClient(config.AppConfig)

	// Controllers
	authCtrl := authControllers.NewAuthController(users)
	courseCtrl := courseControllers.NewCourseController(courses, modules, videos, reviews)
	enrollCtrl := courseControllers.NewEnrollmentController(users, courses, enrollments, progress)
	reviewCtrl := courseControllers.NewReviewController(courses, reviews)
	paymentCtrl := paymentControllers.NewPaymentController(razorpay, users, courses, payments, enrollments, progress)
	userCtrl := userControllers.NewUserController(users, enrollments, progress)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authCtrl)
	courseRoutes.SetupCourseRoutes(app, courseCtrl, enrollCtrl, reviewCtrl)
	paymentRoutes.SetupPaymentRoutes(app, paymentCtrl)
	userProfileRoutes.SetupUserRoutes(app, userCtrl)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
