package handlers

import (
	"errors"

	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/middleware"
	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler serves the triage back office: taxonomy management, status
// changes, dashboard and administrator accounts.
type AdminHandler struct {
	signalements *services.SignalementService
	taxonomy     *services.TaxonomyService
	authService  *services.AuthService
}

func NewAdminHandler(signalements *services.SignalementService, taxonomy *services.TaxonomyService, authService *services.AuthService) *AdminHandler {
	return &AdminHandler{signalements: signalements, taxonomy: taxonomy, authService: authService}
}

func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.taxonomy.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du chargement des catégories",
		})
	}
	return c.JSON(categories)
}

func (h *AdminHandler) CreateCategorie(c *fiber.Ctx) error {
	var req dto.CreateCategorieRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Corps de requête invalide",
		})
	}

	categorie, err := h.taxonomy.CreateCategorie(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategorieNomTaken), errors.Is(err, services.ErrNomRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Erreur lors de la création de la catégorie",
			})
		}
	}
	return c.JSON(categorie)
}

func (h *AdminHandler) UpdateCategorie(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrCategorieNotFound.Error(),
		})
	}

	var req dto.UpdateCategorieRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Corps de requête invalide",
		})
	}

	categorie, err := h.taxonomy.UpdateCategorie(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategorieNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrCategorieNomTaken), errors.Is(err, services.ErrNomRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Erreur lors de la modification",
			})
		}
	}
	return c.JSON(categorie)
}

func (h *AdminHandler) ListStatuts(c *fiber.Ctx) error {
	statuts, err := h.taxonomy.ListStatuts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du chargement des statuts",
		})
	}
	return c.JSON(statuts)
}

func (h *AdminHandler) CreateStatut(c *fiber.Ctx) error {
	var req dto.CreateStatutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Corps de requête invalide",
		})
	}

	statut, err := h.taxonomy.CreateStatut(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStatutNomTaken), errors.Is(err, services.ErrNomRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Erreur lors de la création du statut",
			})
		}
	}
	return c.JSON(statut)
}

func (h *AdminHandler) ChangeStatut(c *fiber.Ctx) error {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Token manquant",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrSignalementNotFound.Error(),
		})
	}

	var req dto.ChangeStatutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Corps de requête invalide",
		})
	}

	signalement, err := h.signalements.ChangeStatut(id, &req, admin)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSignalementNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrStatutInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Erreur lors du changement de statut",
			})
		}
	}

	return c.JSON(dto.ChangeStatutResponse{
		Message:     "Statut mis à jour avec succès",
		Signalement: signalement,
		UpdatedBy:   dto.ActeurRef{Nom: admin.Nom, Email: admin.Email},
	})
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Token manquant",
		})
	}

	resp, err := h.signalements.Dashboard()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du chargement du dashboard",
		})
	}
	resp.AdminInfo = dto.AdminInfo{Nom: admin.Nom, Role: admin.Role}
	return c.JSON(resp)
}

func (h *AdminHandler) ListSignalements(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	resp, err := h.signalements.AdminList(page, limit, c.Query("statut"), c.Query("categorie"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du chargement des signalements",
		})
	}
	return c.JSON(resp)
}

func (h *AdminHandler) SignalementDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrSignalementNotFound.Error(),
		})
	}

	signalement, err := h.signalements.AdminDetail(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrSignalementNotFound.Error(),
		})
	}
	return c.JSON(dto.NewSignalementDetail(signalement))
}

func (h *AdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.authService.ListAdmins()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du chargement des administrateurs",
		})
	}
	return c.JSON(admins)
}

func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Corps de requête invalide",
		})
	}

	admin, err := h.authService.CreateAdmin(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrAdminFieldsRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Erreur lors de la création de l'administrateur",
			})
		}
	}
	return c.JSON(admin)
}
