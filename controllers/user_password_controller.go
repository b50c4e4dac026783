package controllers

import (
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

// ForgotPassword generates a reset OTP, stores its hash on the user and
// mails the code.
func ForgotPassword(c *gin.Context) {
	utils.LogInfo("ForgotPassword called")

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email required", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.LogError("No account for reset email: %s", email)
		utils.NotFound(c, "No account with that email")
		return
	}

	otp := utils.GenerateOTP()
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"reset_otp":            utils.HashOTP(otp),
		"reset_otp_expires_at": time.Now().Add(10 * time.Minute),
	}).Error; err != nil {
		utils.LogError("Failed to store reset OTP for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Server error", nil)
		return
	}

	if err := utils.SendResetOTP(user.Email, otp); err != nil {
		utils.LogError("Failed to send reset OTP to %s: %v", user.Email, err)
		utils.InternalServerError(c, "Could not send OTP email", nil)
		return
	}
	utils.LogInfo("Sent reset OTP to user ID: %d", user.ID)

	utils.Success(c, "OTP sent to your email", nil)
}

// verifyUserOTP checks the supplied OTP against the stored hash and its
// expiry window.
func verifyUserOTP(user *models.User, otp string) bool {
	if user.ResetOTP == "" || time.Now().After(user.ResetOTPExpiresAt) {
		return false
	}
	return utils.HashOTP(otp) == user.ResetOTP
}

// VerifyResetOTP checks the OTP and remembers the verified email in the
// session so the client can move on to the reset form.
func VerifyResetOTP(c *gin.Context) {
	utils.LogInfo("VerifyResetOTP called")

	var req struct {
		Email string `json:"email" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email & OTP required", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.BadRequest(c, "Invalid or expired OTP", nil)
		return
	}

	if !verifyUserOTP(&user, req.OTP) {
		utils.LogError("Invalid reset OTP for user ID: %d", user.ID)
		utils.BadRequest(c, "Invalid or expired OTP", nil)
		return
	}

	session := sessions.Default(c)
	session.Set("reset_email", email)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session for user ID: %d: %v", user.ID, err)
	}

	utils.Success(c, "OTP verified", nil)
}

// ResetPassword sets a new password after re-checking the OTP
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")

	var req struct {
		Email       string `json:"email" binding:"required"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields required", err.Error())
		return
	}

	if !utils.IsValidPassword(req.NewPassword) {
		utils.BadRequest(c, "Password must be at least 8 characters", nil)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.BadRequest(c, "Invalid or expired OTP", nil)
		return
	}

	if !verifyUserOTP(&user, req.OTP) {
		utils.LogError("Invalid reset OTP for user ID: %d", user.ID)
		utils.BadRequest(c, "Invalid or expired OTP", nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Server error", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"password":             hashed,
		"reset_otp":            "",
		"reset_otp_expires_at": time.Time{},
	}).Error; err != nil {
		utils.LogError("Failed to reset password for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Server error", nil)
		return
	}
	utils.LogInfo("Password reset for user ID: %d", user.ID)

	session := sessions.Default(c)
	session.Delete("reset_email")
	_ = session.Save()

	utils.Success(c, "Password has been reset", nil)
}
