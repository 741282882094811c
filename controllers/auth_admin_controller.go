package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

func registerWithRole(c *gin.Context, role string) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.ValidateEmail(req.Email) {
		utils.BadRequest(c, "Invalid email format", nil)
		return
	}
	if !utils.ValidatePassword(req.Password) {
		utils.BadRequest(c, "Password must be at least 8 characters long", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		Role:         role,
		IsSuperAdmin: role == models.RoleSuperAdmin,
	}
	if err := repositories.CreateUser(config.DB, &user); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("%s account created: %s", role, user.Email)
	utils.Created(c, role+" registered successfully", gin.H{"user": userResponse(user)})
}

// RegisterAdmin creates an Admin account. SuperAdmin only.
func RegisterAdmin(c *gin.Context) {
	utils.LogInfo("RegisterAdmin called")
	registerWithRole(c, models.RoleAdmin)
}

// RegisterSuperAdmin creates an additional SuperAdmin account. SuperAdmin only.
func RegisterSuperAdmin(c *gin.Context) {
	utils.LogInfo("RegisterSuperAdmin called")
	registerWithRole(c, models.RoleSuperAdmin)
}
