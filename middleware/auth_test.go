package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/modernhub/ecommerce-api/models"
)

func setupRoleRouter(user *models.User, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/restricted",
		func(c *gin.Context) {
			if user != nil {
				c.Set("user", *user)
			}
		},
		RequireRoles(roles...),
		func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		},
	)
	return router
}

func performRequest(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restricted", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}
	router := setupRoleRouter(admin, models.RoleAdmin, models.RoleSuperAdmin)

	w := performRequest(router)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesRejectsUnlistedRole(t *testing.T) {
	customer := &models.User{Role: models.RoleUser}
	router := setupRoleRouter(customer, models.RoleAdmin, models.RoleSuperAdmin)

	w := performRequest(router)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesRejectsMissingUser(t *testing.T) {
	router := setupRoleRouter(nil, models.RoleAdmin)

	w := performRequest(router)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesSuperAdminOnly(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin}
	router := setupRoleRouter(admin, models.RoleSuperAdmin)

	w := performRequest(router)
	assert.Equal(t, http.StatusForbidden, w.Code)

	superAdmin := &models.User{Role: models.RoleSuperAdmin}
	router = setupRoleRouter(superAdmin, models.RoleSuperAdmin)

	w = performRequest(router)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)

	want := models.User{Name: "Alice", Role: models.RoleUser}
	c.Set("user", want)

	got, ok := CurrentUser(c)
	assert.True(t, ok)
	assert.Equal(t, want.Name, got.Name)
}
