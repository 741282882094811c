package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

const resetTokenTTL = time.Hour

// ForgotPasswordRequest carries the address asking for a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest carries the single-use token and the new password.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

const resetAckMessage = "If the email exists, a password reset link has been sent"

func issueResetToken(c *gin.Context, email string, wantAdmin bool) {
	user, err := repositories.FindUserByEmail(config.DB, email)
	if err != nil {
		utils.LogError("Reset token lookup failed for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to process request", nil)
		return
	}

	// Respond identically whether or not the account exists so the
	// endpoint cannot be used to enumerate registered addresses.
	if user == nil || user.IsAdminRole() != wantAdmin {
		utils.LogInfo("Reset requested for unmatched email %s (admin channel: %v)", email, wantAdmin)
		utils.Success(c, resetAckMessage, nil)
		return
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		utils.LogError("Failed to generate reset token: %v", err)
		utils.InternalServerError(c, "Failed to process request", nil)
		return
	}

	expiry := time.Now().UTC().Add(resetTokenTTL)
	updates := map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}
	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		utils.LogError("Failed to store reset token for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to process request", nil)
		return
	}

	// Delivery failures are logged inside the mailer, never surfaced here.
	if wantAdmin {
		utils.SendAdminPasswordResetEmail(user.Email, token)
	} else {
		utils.SendPasswordResetEmail(user.Email, token)
	}

	utils.LogInfo("Reset token issued for %s", user.Email)
	utils.Success(c, resetAckMessage, nil)
}

func consumeResetToken(c *gin.Context, wantAdmin bool) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if !utils.ValidatePassword(req.NewPassword) {
		utils.BadRequest(c, "Password must be at least 8 characters long", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("reset_token = ?", req.Token).First(&user).Error; err != nil {
		utils.LogInfo("Reset attempted with unknown token")
		utils.BadRequest(c, "Invalid or expired reset token", nil)
		return
	}
	if user.ResetTokenExpiry == nil || time.Now().UTC().After(*user.ResetTokenExpiry) {
		utils.LogInfo("Reset attempted with expired token for %s", user.Email)
		utils.BadRequest(c, "Invalid or expired reset token", nil)
		return
	}
	if user.IsAdminRole() != wantAdmin {
		utils.LogInfo("Reset token channel mismatch for %s", user.Email)
		utils.BadRequest(c, "Invalid or expired reset token", nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Failed to hash new password: %v", err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	// Clearing the token makes it single use.
	updates := map[string]interface{}{
		"password":           hashed,
		"reset_token":        "",
		"reset_token_expiry": nil,
	}
	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update password for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	utils.LogInfo("Password reset completed for %s", user.Email)
	utils.Success(c, "Password has been reset successfully", nil)
}

// ForgotPassword sends a reset link to a customer account.
func ForgotPassword(c *gin.Context) {
	utils.LogInfo("ForgotPassword called")
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	issueResetToken(c, req.Email, false)
}

// ResetPassword applies a new password using a customer reset token.
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")
	consumeResetToken(c, false)
}

// AdminForgotPassword sends a reset link to an Admin or SuperAdmin account.
func AdminForgotPassword(c *gin.Context) {
	utils.LogInfo("AdminForgotPassword called")
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	issueResetToken(c, req.Email, true)
}

// AdminResetPassword applies a new password using an admin reset token.
func AdminResetPassword(c *gin.Context) {
	utils.LogInfo("AdminResetPassword called")
	consumeResetToken(c, true)
}
