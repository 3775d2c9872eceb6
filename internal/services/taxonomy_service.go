package services

import (
	"errors"
	"fmt"

	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategorieNotFound = errors.New("catégorie introuvable")
	ErrCategorieNomTaken = errors.New("une catégorie avec ce nom existe déjà")
	ErrStatutNomTaken    = errors.New("un statut avec ce nom existe déjà")
	ErrNomRequired       = errors.New("nom requis")
)

// TaxonomyService manages the categories and statuses signalements are
// classified under. Categories are only ever deactivated, never deleted.
type TaxonomyService struct {
	db *gorm.DB
}

func NewTaxonomyService(db *gorm.DB) *TaxonomyService {
	return &TaxonomyService{db: db}
}

// ListActiveCategories is the public list: active only, by name.
func (s *TaxonomyService) ListActiveCategories() ([]models.Categorie, error) {
	var categories []models.Categorie
	err := s.db.Where("active = ?", true).Order("nom ASC").Find(&categories).Error
	return categories, err
}

// ListCategories is the admin list: all categories with signalement counts.
func (s *TaxonomyService) ListCategories() ([]models.Categorie, error) {
	var categories []models.Categorie
	err := s.db.
		Select("categories.*, (SELECT count(*) FROM signalements sg WHERE sg.categorie_id = categories.id) AS nb_signalements").
		Order("nom ASC").
		Find(&categories).Error
	return categories, err
}

func (s *TaxonomyService) CreateCategorie(req *dto.CreateCategorieRequest) (*models.Categorie, error) {
	if req.Nom == "" {
		return nil, ErrNomRequired
	}

	categorie := models.Categorie{
		Nom:         req.Nom,
		Description: req.Description,
		Couleur:     req.Couleur,
		Active:      true,
	}
	if err := s.db.Create(&categorie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategorieNomTaken
		}
		return nil, fmt.Errorf("failed to create categorie: %w", err)
	}
	return &categorie, nil
}

// UpdateCategorie applies a partial update; nil request fields are untouched.
// A present-but-empty nom is rejected, same rule as CreateCategorie.
func (s *TaxonomyService) UpdateCategorie(id uuid.UUID, req *dto.UpdateCategorieRequest) (*models.Categorie, error) {
	if req.Nom != nil && *req.Nom == "" {
		return nil, ErrNomRequired
	}

	var categorie models.Categorie
	if err := s.db.First(&categorie, "id = ?", id).Error; err != nil {
		return nil, ErrCategorieNotFound
	}

	updates := map[string]interface{}{}
	if req.Nom != nil {
		updates["nom"] = *req.Nom
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Couleur != nil {
		updates["couleur"] = *req.Couleur
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := s.db.Model(&categorie).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrCategorieNomTaken
			}
			return nil, fmt.Errorf("failed to update categorie: %w", err)
		}
	}
	return &categorie, nil
}

// ListStatuts is the admin list: all statuses by rank with signalement counts.
func (s *TaxonomyService) ListStatuts() ([]models.Statut, error) {
	var statuts []models.Statut
	err := s.db.
		Select("statuts.*, (SELECT count(*) FROM signalements sg WHERE sg.statut_id = statuts.id) AS nb_signalements").
		Order("ordre ASC").
		Find(&statuts).Error
	return statuts, err
}

func (s *TaxonomyService) CreateStatut(req *dto.CreateStatutRequest) (*models.Statut, error) {
	if req.Nom == "" {
		return nil, ErrNomRequired
	}

	statut := models.Statut{
		Nom:         req.Nom,
		Description: req.Description,
		Couleur:     req.Couleur,
		Ordre:       req.Ordre,
		EstFinal:    req.EstFinal,
	}
	if err := s.db.Create(&statut).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStatutNomTaken
		}
		return nil, fmt.Errorf("failed to create statut: %w", err)
	}
	return &statut, nil
}
