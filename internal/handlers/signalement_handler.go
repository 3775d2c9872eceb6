package handlers

import (
	"errors"

	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SignalementHandler serves the public, unauthenticated surface:
// submission, voting, commenting and tracking.
type SignalementHandler struct {
	signalements *services.SignalementService
	taxonomy     *services.TaxonomyService
}

func NewSignalementHandler(signalements *services.SignalementService, taxonomy *services.TaxonomyService) *SignalementHandler {
	return &SignalementHandler{signalements: signalements, taxonomy: taxonomy}
}

func (h *SignalementHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSignalementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Corps de requête invalide",
		})
	}

	signalement, err := h.signalements.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrInvalidCategorie):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrDefaultStatutMissing),
			errors.Is(err, services.ErrCodeExhausted),
			errors.Is(err, services.ErrCodeConflict):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Erreur lors de la création du signalement",
			})
		}
	}

	return c.JSON(signalement)
}

func (h *SignalementHandler) List(c *fiber.Ctx) error {
	signalements, err := h.signalements.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du chargement des signalements",
		})
	}
	return c.JSON(signalements)
}

func (h *SignalementHandler) Vote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrSignalementNotFound.Error(),
		})
	}

	votes, err := h.signalements.Vote(id)
	if err != nil {
		if errors.Is(err, services.ErrSignalementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du vote",
		})
	}

	return c.JSON(dto.VoteResponse{Message: "Vote enregistré", Votes: votes})
}

func (h *SignalementHandler) AddCommentaire(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrSignalementNotFound.Error(),
		})
	}

	var req dto.CommentaireRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Corps de requête invalide",
		})
	}

	commentaire, err := h.signalements.AddCommentaire(id, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMessageRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrSignalementNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Erreur lors de l'ajout du commentaire",
			})
		}
	}

	return c.JSON(commentaire)
}

func (h *SignalementHandler) ListCommentaires(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrSignalementNotFound.Error(),
		})
	}

	commentaires, err := h.signalements.ListCommentaires(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du chargement des commentaires",
		})
	}
	return c.JSON(commentaires)
}

func (h *SignalementHandler) TrackByCode(c *fiber.Ctx) error {
	signalement, err := h.signalements.TrackByCode(c.Params("codeSuivi"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Aucune déclaration trouvée avec ce code de suivi",
		})
	}
	return c.JSON(dto.NewSignalementDetail(signalement))
}

func (h *SignalementHandler) StatutByCode(c *fiber.Ctx) error {
	statut, err := h.signalements.StatutByCode(c.Params("codeSuivi"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrCodeSuiviInvalid.Error(),
		})
	}
	return c.JSON(statut)
}

func (h *SignalementHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.taxonomy.ListActiveCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Erreur lors du chargement des catégories",
		})
	}
	return c.JSON(categories)
}
