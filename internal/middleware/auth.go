package middleware

import (
	"github.com/denonce-tg/signalement-api/internal/config"
	"github.com/denonce-tg/signalement-api/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected verifies the bearer token's signature and expiry. Missing
// and invalid tokens both end the request here with 401.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Token invalide"
			if c.Get(fiber.HeaderAuthorization) == "" {
				message = "Token manquant"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: message,
			})
		},
	})
}
