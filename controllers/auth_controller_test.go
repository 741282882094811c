package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	router := gin.New()
	router.POST("/auth/register", RegisterUser)

	body := gin.H{"name": "Asha", "email": "asha@example.com", "password": "password123"}
	w := performJSON(router, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(router, http.MethodPost, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")
}
