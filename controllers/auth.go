package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"bizhub-backend/config"
	"bizhub-backend/models"
	"bizhub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Company  string `json:"company"`
	TaxID    string `json:"taxId"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// controllers/auth.go
func Register(c *gin.Context) {
	var input RegisterInput

	// Bind and validate input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePassword(input.Password) {
		utils.RespondWithError(c, http.StatusBadRequest, "Password must be at least 8 characters with letters and numbers")
		return
	}

	email := utils.NormalizeEmail(input.Email)

	// Check if email or phone already exists
	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", email, input.Phone).First(&existingUser)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Create new user
	newUser := models.User{
		Email:    email,
		Phone:    input.Phone,
		Name:     input.Name,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Company:  input.Company,
		TaxID:    input.TaxID,
		Role:     "customer",
		Preferences: models.JSONB{
			"email": true,
			"sms":   false,
		},
	}

	// Create user in database
	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Generate token
	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Return response without password
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":      newUser.ID,
			"email":   newUser.Email,
			"phone":   newUser.Phone,
			"name":    newUser.Name,
			"company": newUser.Company,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	email := utils.NormalizeEmail(input.Email)

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Check password
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// Generate token
	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	// Return response
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"name":    user.Name,
			"role":    user.Role,
			"company": user.Company,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	// Return user info
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"name":    user.Name,
			"phone":   user.Phone,
			"company": user.Company,
			"taxId":   user.TaxID,
			"role":    user.Role,
		},
	})
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword issues a reset token. The response never reveals
// whether the email is registered.
func ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	genericResponse := gin.H{"message": "If the email is registered, a reset link has been sent"}

	var user models.User
	if err := config.DB.Where("email = ?", utils.NormalizeEmail(input.Email)).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, genericResponse)
		return
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate reset token")
		return
	}

	expiry := time.Now().Add(1 * time.Hour)
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save reset token")
		return
	}

	// No mail integration; the reset link is logged for the operator
	log.Printf("auth: password reset link for %s: %s/reset-password?token=%s", user.Email, strings.TrimSuffix(frontendURL(), "/"), token)

	c.JSON(http.StatusOK, genericResponse)
}

type ResetPasswordInput struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if !utils.ValidatePassword(input.Password) {
		utils.RespondWithError(c, http.StatusBadRequest, "Password must be at least 8 characters with letters and numbers")
		return
	}

	var user models.User
	if err := config.DB.Where("reset_token = ? AND reset_token_expiry > ?", input.Token, time.Now()).
		First(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"password":           hashed,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

// ValidateResetToken lets the reset page check a token before showing
// the form.
func ValidateResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Token is required")
		return
	}

	var user models.User
	if err := config.DB.Where("reset_token = ? AND reset_token_expiry > ?", token, time.Now()).
		First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func frontendURL() string {
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}
