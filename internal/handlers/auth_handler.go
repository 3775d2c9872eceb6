package handlers

import (
	"errors"

	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/middleware"
	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Corps de requête invalide",
		})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur interne",
		})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Token manquant",
		})
	}

	return c.JSON(fiber.Map{
		"admin": dto.AdminSummary{
			ID:    admin.ID,
			Nom:   admin.Nom,
			Email: admin.Email,
			Role:  admin.Role,
			Actif: admin.Actif,
		},
	})
}
