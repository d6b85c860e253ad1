package authController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/repository"
	"learnhub/utils"
)

type AuthController struct {
	Users repository.UserRepository
}

func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{Users: users}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if username already exists
	if _, err := ctrl.Users.GetByUsername(reqData.Username); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username already exists", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	if err := ctrl.Users.Create(&newUser); err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	if newUser.Email != "" {
		go func(email, username string) {
			if err := utils.SendWelcomeEmail(email, username); err != nil {
				log.Printf("Error sending welcome email: %v", err)
			}
		}(newUser.Email, newUser.Username)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful", newUser)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctrl.Users.GetByUsername(reqData.Username)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout acknowledges the logout. Sessions are bearer tokens; the client
// discards the token. Nothing is tracked server-side.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully", nil)
}
