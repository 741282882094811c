package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// GetAllUsers lists every account. Admin only.
func GetAllUsers(c *gin.Context) {
	utils.LogInfo("GetAllUsers called")

	users, err := repositories.ListUsers(config.DB)
	if err != nil {
		utils.LogError("Failed to list users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}
	utils.Success(c, "Users retrieved successfully", gin.H{"users": users})
}

// GetUser returns a single account by id. Admin only.
func GetUser(c *gin.Context) {
	utils.LogInfo("GetUser called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	user, err := repositories.FindUserByID(config.DB, uint(id))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.Success(c, "User retrieved successfully", gin.H{"user": userResponse(*user)})
}

// UpdateUserRequest carries the editable account fields.
type UpdateUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// UpdateUser edits an account's name and role. SuperAdmin only.
func UpdateUser(c *gin.Context) {
	utils.LogInfo("UpdateUser called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	user, err := repositories.FindUserByID(config.DB, uint(id))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	if req.Role != "" {
		switch req.Role {
		case models.RoleUser, models.RoleAdmin, models.RoleSuperAdmin:
		default:
			utils.BadRequest(c, "Invalid role", gin.H{"role": req.Role})
			return
		}
		if user.IsMainSuperAdmin && req.Role != models.RoleSuperAdmin {
			utils.BadRequest(c, "Cannot change the main SuperAdmin's role", nil)
			return
		}
		user.Role = req.Role
		user.IsSuperAdmin = req.Role == models.RoleSuperAdmin
	}
	if req.Name != "" {
		user.Name = req.Name
	}

	if err := config.DB.Save(user).Error; err != nil {
		utils.LogError("Failed to update user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update user", nil)
		return
	}

	utils.LogInfo("User %d updated", user.ID)
	utils.Success(c, "User updated successfully", gin.H{"user": userResponse(*user)})
}

// DeleteUser removes an account. The main SuperAdmin cannot be deleted.
func DeleteUser(c *gin.Context) {
	utils.LogInfo("DeleteUser called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	if err := repositories.DeleteUser(config.DB, uint(id)); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("User %d deleted", id)
	utils.Success(c, "User deleted successfully", nil)
}
