package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// RegisterRequest holds the payload for customer signup.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest holds the credentials for both user and admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userResponse(user models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"join_date": user.CreatedAt.Format("02-01-2006"),
	}
}

// RegisterUser creates a customer account and returns a signed token.
func RegisterUser(c *gin.Context) {
	utils.LogInfo("RegisterUser called")

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
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleUser,
	}
	if err := repositories.CreateUser(config.DB, &user); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User registered: %s", user.Email)
	utils.Created(c, "Registration successful", gin.H{
		"user":  userResponse(user),
		"token": token,
	})
}

// LoginUser authenticates a customer. Admin accounts must use the admin login.
func LoginUser(c *gin.Context) {
	utils.LogInfo("LoginUser called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	user, err := repositories.FindUserByEmail(config.DB, req.Email)
	if err != nil {
		utils.LogError("Login lookup failed for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Login failed", nil)
		return
	}
	if user == nil || !utils.CheckPassword(req.Password, user.Password) {
		utils.LogInfo("Invalid credentials for %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}
	if user.IsAdminRole() {
		utils.LogInfo("Admin %s attempted user login", user.Email)
		utils.Unauthorized(c, "Admins cannot log in here")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.LogError("Failed to generate token for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("User logged in: %s", user.Email)
	utils.Success(c, "Login successful", gin.H{
		"user":  userResponse(*user),
		"token": token,
	})
}

// AdminLogin authenticates Admin and SuperAdmin accounts.
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	user, err := repositories.FindUserByEmail(config.DB, req.Email)
	if err != nil {
		utils.LogError("Admin login lookup failed for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Login failed", nil)
		return
	}
	if user == nil || !utils.CheckPassword(req.Password, user.Password) {
		utils.LogInfo("Invalid admin credentials for %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}
	if !user.IsAdminRole() {
		utils.LogInfo("Non-admin %s attempted admin login", user.Email)
		utils.Unauthorized(c, "Only Admin or SuperAdmin can log in here")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.LogError("Failed to generate token for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("Admin logged in: %s (%s)", user.Email, user.Role)
	utils.Success(c, "Login successful", gin.H{
		"user":  userResponse(*user),
		"token": token,
	})
}

// GetMe returns the authenticated account's profile.
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}
	utils.Success(c, "Profile retrieved", gin.H{"user": userResponse(user)})
}
