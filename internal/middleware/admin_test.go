package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/denonce-tg/signalement-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSuperAdmin(t *testing.T) {
	assert.True(t, IsSuperAdmin(models.RoleSuperAdmin))
	assert.False(t, IsSuperAdmin(models.RoleAdmin))
	assert.False(t, IsSuperAdmin(""))
	assert.False(t, IsSuperAdmin("SUPER_ADMIN"), "role comparison is case-sensitive")
}

func superAdminTestApp(admin *models.Administrateur) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if admin != nil {
			c.Locals(adminLocalsKey, admin)
		}
		return c.Next()
	})
	app.Get("/protected", SuperAdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestSuperAdminRequired_AllowsSuperAdmin(t *testing.T) {
	app := superAdminTestApp(&models.Administrateur{Role: models.RoleSuperAdmin, Actif: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSuperAdminRequired_ForbidsRegularAdmin(t *testing.T) {
	app := superAdminTestApp(&models.Administrateur{Role: models.RoleAdmin, Actif: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSuperAdminRequired_RejectsWithoutAdminContext(t *testing.T) {
	app := superAdminTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
