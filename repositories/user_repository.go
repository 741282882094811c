package repositories

import (
	"errors"
	"fmt"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
	"gorm.io/gorm"
)

// UserSummary is the flat user shape exposed by the admin user listing.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// FindUserByEmail returns the user with the given email, or nil when absent
func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID returns the user by primary key
func FindUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("User not found", err)
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new account, rejecting duplicate emails
func CreateUser(db *gorm.DB, user *models.User) error {
	existing, err := FindUserByEmail(db, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.ConflictError("Email already in use", nil)
	}
	return db.Create(user).Error
}

// ListUsers returns flat summaries of every account
func ListUsers(db *gorm.DB) ([]UserSummary, error) {
	var users []UserSummary
	err := db.Model(&models.User{}).
		Select("id, name, email, role").
		Order("id").
		Scan(&users).Error
	return users, err
}

// DeleteUser removes an account. The main SuperAdmin row is undeletable.
func DeleteUser(db *gorm.DB, id uint) error {
	user, err := FindUserByID(db, id)
	if err != nil {
		return err
	}
	if user.IsMainSuperAdmin {
		return utils.BadRequestError("Cannot delete the main SuperAdmin", nil)
	}
	return db.Delete(user).Error
}

// SeedMainSuperAdmin creates the distinguished super-administrator account
// if it does not exist yet. Exactly one such account exists.
func SeedMainSuperAdmin(db *gorm.DB, name, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("superadmin seed email and password are required")
	}

	existing, err := FindUserByEmail(db, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:             name,
		Email:            email,
		Password:         hash,
		Role:             models.RoleSuperAdmin,
		IsSuperAdmin:     true,
		IsMainSuperAdmin: true,
	}).Error
}
