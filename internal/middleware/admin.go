package middleware

import (
	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/models"
	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const adminLocalsKey = "admin"

// AdminContext resolves the verified token claims to an active
// administrator record and stores it in the request locals. Tokens issued
// before an account was deactivated die here.
func AdminContext(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Token manquant",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Token invalide",
			})
		}

		admin, err := authService.ResolveAdmin(claims)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: services.ErrAdminInactive.Error(),
			})
		}

		c.Locals(adminLocalsKey, admin)
		return c.Next()
	}
}

// SuperAdminRequired gates an operation to the super_admin role.
func SuperAdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := CurrentAdmin(c)
		if admin == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Token manquant",
			})
		}
		if !IsSuperAdmin(admin.Role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Accès réservé aux super administrateurs",
			})
		}
		return c.Next()
	}
}

// CurrentAdmin returns the administrator resolved by AdminContext, or nil.
func CurrentAdmin(c *fiber.Ctx) *models.Administrateur {
	admin, _ := c.Locals(adminLocalsKey).(*models.Administrateur)
	return admin
}

func IsSuperAdmin(role string) bool {
	return role == models.RoleSuperAdmin
}
