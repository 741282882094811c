package controllers

import (
	"os"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// CreateMainSuperAdmin ensures the bootstrap SuperAdmin account exists.
// Credentials come from the environment so deployments can rotate them.
func CreateMainSuperAdmin() {
	name := os.Getenv("SUPERADMIN_NAME")
	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")

	if email == "" || password == "" {
		utils.LogInfo("SuperAdmin seed skipped: SUPERADMIN_EMAIL or SUPERADMIN_PASSWORD not set")
		return
	}
	if name == "" {
		name = "Super Admin"
	}

	if err := repositories.SeedMainSuperAdmin(config.DB, name, email, password); err != nil {
		utils.LogError("Failed to seed main SuperAdmin: %v", err)
		return
	}
	utils.LogInfo("Main SuperAdmin account verified for %s", email)
}

// CreateDefaultCategory ensures the fallback category for orphaned products exists.
func CreateDefaultCategory() {
	if err := repositories.EnsureDefaultCategory(config.DB); err != nil {
		utils.LogError("Failed to ensure default category: %v", err)
		return
	}
	utils.LogInfo("Default category verified")
}
