package controllers

import (
	"time"

	"inventory-app/config"
	"inventory-app/mailer"
	"inventory-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := c.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Incorrect email or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Incorrect email or password",
		})
	}

	if !user.IsActive {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Inactive user",
		})
	}

	sessionID := uuid.New().String()
	now := time.Now()

	// One active session per user
	c.DB.Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", user.ID, true).
		Update("is_active", false)

	session := models.UserSession{
		UserID:         user.ID,
		SessionID:      sessionID,
		IPAddress:      ctx.IP(),
		UserAgent:      string(ctx.Request().Header.UserAgent()),
		IsActive:       true,
		LastActivityAt: now,
		ExpiresAt:      now.Add(time.Duration(config.JWTExpiration) * time.Second),
	}
	if err := c.DB.Create(&session).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	claims := jwt.MapClaims{
		"user_id":      float64(user.ID),
		"session_id":   sessionID,
		"is_superuser": user.IsSuperuser,
		"exp":          now.Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Cookie(config.GetTokenCookie(signed))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"access_token": signed,
		"token_type":   "bearer",
		"data":         user,
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	var userSession models.UserSession
	if err := c.DB.Where("session_id = ? AND is_active = ?", sessionID, true).First(&userSession).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid session",
		})
	}

	userSession.IsActive = false
	userSession.LastActivityAt = time.Now()
	c.DB.Save(&userSession)

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// RecoverPassword mails a one-shot reset token to the given address.
// The response does not reveal whether the address exists.
func (c *AuthController) RecoverPassword(ctx *fiber.Ctx) error {
	email := ctx.Params("email")

	var user models.User
	if err := c.DB.Where("email = ?", email).First(&user).Error; err == nil {
		token := uuid.New().String()
		reset := models.PasswordReset{
			Email:     user.Email,
			Token:     token,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		if err := c.DB.Create(&reset).Error; err == nil {
			go mailer.SendPasswordRecovery(user.Email, token)
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Password recovery email sent",
	})
}

func (c *AuthController) ResetPassword(ctx *fiber.Ctx) error {
	var input struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(input.NewPassword) < 6 {
		return validationError(ctx, "password must be at least 6 characters")
	}

	var reset models.PasswordReset
	if err := c.DB.Where("token = ? AND used_at IS NULL AND expires_at > ?", input.Token, time.Now()).First(&reset).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or expired token",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Model(&models.User{}).Where("email = ?", reset.Email).Update("password", string(hashed)).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	reset.UsedAt = &now
	c.DB.Save(&reset)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Password updated successfully",
	})
}
