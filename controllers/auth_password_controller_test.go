package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
)

func seedUserWithResetToken(t *testing.T, token string, expiry time.Time) models.User {
	t.Helper()
	user := models.User{
		Name:             "Asha",
		Email:            "asha@example.com",
		Password:         "irrelevant",
		Role:             models.RoleUser,
		ResetToken:       token,
		ResetTokenExpiry: &expiry,
	}
	require.NoError(t, setupTestDB(t).Create(&user).Error)
	return user
}

func TestResetPasswordTokenIsSingleUse(t *testing.T) {
	user := seedUserWithResetToken(t, "tok-single-use", time.Now().UTC().Add(time.Hour))

	router := gin.New()
	router.POST("/auth/reset-password", ResetPassword)

	body := gin.H{"token": "tok-single-use", "new_password": "freshpassword1"}
	w := performJSON(router, http.MethodPost, "/auth/reset-password", body)
	assert.Equal(t, http.StatusOK, w.Code)

	var reloaded models.User
	require.NoError(t, config.DB.First(&reloaded, user.ID).Error)
	assert.Empty(t, reloaded.ResetToken)
	assert.Nil(t, reloaded.ResetTokenExpiry)
	assert.True(t, utils.CheckPassword("freshpassword1", reloaded.Password))

	w = performJSON(router, http.MethodPost, "/auth/reset-password", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired reset token")
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	seedUserWithResetToken(t, "tok-expired", time.Now().UTC().Add(-time.Minute))

	router := gin.New()
	router.POST("/auth/reset-password", ResetPassword)

	body := gin.H{"token": "tok-expired", "new_password": "freshpassword1"}
	w := performJSON(router, http.MethodPost, "/auth/reset-password", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired reset token")
}

func TestResetPasswordRejectsAdminTokenOnCustomerChannel(t *testing.T) {
	db := setupTestDB(t)
	expiry := time.Now().UTC().Add(time.Hour)
	admin := models.User{
		Name:             "Root",
		Email:            "root@example.com",
		Password:         "irrelevant",
		Role:             models.RoleAdmin,
		ResetToken:       "tok-admin",
		ResetTokenExpiry: &expiry,
	}
	require.NoError(t, db.Create(&admin).Error)

	router := gin.New()
	router.POST("/auth/reset-password", ResetPassword)

	body := gin.H{"token": "tok-admin", "new_password": "freshpassword1"}
	w := performJSON(router, http.MethodPost, "/auth/reset-password", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired reset token")
}
