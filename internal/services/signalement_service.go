package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMissingFields        = errors.New("les champs titre, description et categorieId sont requis")
	ErrInvalidCategorie     = errors.New("catégorie invalide ou inactive")
	ErrDefaultStatutMissing = errors.New("statut par défaut introuvable")
	ErrCodeExhausted        = errors.New("impossible de générer un code de suivi unique")
	ErrCodeConflict         = errors.New("code de suivi déjà utilisé")
	ErrSignalementNotFound  = errors.New("signalement introuvable")
	ErrCodeSuiviInvalid     = errors.New("code de suivi invalide")
	ErrMessageRequired      = errors.New("message requis")
	ErrStatutInvalid        = errors.New("statut invalide")
)

// commentCountSelect annotates signalement rows with their comment count.
const commentCountSelect = "signalements.*, " +
	"(SELECT count(*) FROM commentaires c WHERE c.signalement_id = signalements.id) AS nb_commentaires"

type SignalementService struct {
	db *gorm.DB
}

func NewSignalementService(db *gorm.DB) *SignalementService {
	return &SignalementService{db: db}
}

// Create validates the submission, allocates a unique tracking code and
// persists the signalement under the store's default initial statut (the
// lowest-ranked non-final one).
func (s *SignalementService) Create(req *dto.CreateSignalementRequest) (*models.Signalement, error) {
	if req.Titre == "" || req.Description == "" || req.CategorieID == "" {
		return nil, ErrMissingFields
	}

	categorieID, err := uuid.Parse(req.CategorieID)
	if err != nil {
		return nil, ErrInvalidCategorie
	}

	var categorie models.Categorie
	if err := s.db.Where("id = ? AND active = ?", categorieID, true).First(&categorie).Error; err != nil {
		return nil, ErrInvalidCategorie
	}

	var statutDefaut models.Statut
	err = s.db.Where("est_final = ?", false).Order("ordre ASC").First(&statutDefaut).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Store was never provisioned; nothing can be created until it is.
			return nil, ErrDefaultStatutMissing
		}
		return nil, fmt.Errorf("failed to load default statut: %w", err)
	}

	codeSuivi, err := s.allocateTrackingCode()
	if err != nil {
		return nil, err
	}

	signalement := models.Signalement{
		Titre:       req.Titre,
		Description: req.Description,
		CategorieID: categorieID,
		StatutID:    statutDefaut.ID,
		Lieu:        req.Lieu,
		MediaURL:    req.MediaURL,
		CodeSuivi:   codeSuivi,
	}

	if err := s.db.Create(&signalement).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race between the existence check and the insert.
			// The unique index on code_suivi is the final authority.
			slog.Error("tracking code collision on insert", "code", codeSuivi)
			return nil, ErrCodeConflict
		}
		return nil, fmt.Errorf("failed to create signalement: %w", err)
	}

	var created models.Signalement
	if err := s.db.Preload("Categorie").Preload("Statut").First(&created, "id = ?", signalement.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload signalement: %w", err)
	}
	return &created, nil
}

// allocateTrackingCode retries generation a bounded number of times when a
// candidate already exists. This is optimistic: a concurrent insert can
// still slip through, which Create reports as ErrCodeConflict.
func (s *SignalementService) allocateTrackingCode() (string, error) {
	for attempt := 0; attempt < trackingMaxAttempts; attempt++ {
		code, err := NewTrackingCode()
		if err != nil {
			return "", err
		}

		var existing models.Signalement
		err = s.db.Select("id").Where("code_suivi = ?", code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check tracking code: %w", err)
		}
		slog.Warn("tracking code collision, retrying", "attempt", attempt+1)
	}
	return "", ErrCodeExhausted
}

func (s *SignalementService) List() ([]models.Signalement, error) {
	var signalements []models.Signalement
	err := s.db.Select(commentCountSelect).
		Preload("Categorie").
		Preload("Statut").
		Order("created_at DESC").
		Find(&signalements).Error
	return signalements, err
}

// Vote increments the vote counter by exactly one, SQL-side, and returns
// the count produced by that same statement via RETURNING, so concurrent
// votes never bleed into the response. Votes are anonymous and unlimited
// on purpose: a coarse popularity signal, not a ballot.
func (s *SignalementService) Vote(id uuid.UUID) (int, error) {
	var signalement models.Signalement
	result := s.db.Model(&signalement).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "votes"}}}).
		Where("id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrSignalementNotFound
	}
	return signalement.Votes, nil
}

func (s *SignalementService) AddCommentaire(id uuid.UUID, message string) (*models.Commentaire, error) {
	if message == "" {
		return nil, ErrMessageRequired
	}

	var signalement models.Signalement
	if err := s.db.Select("id").First(&signalement, "id = ?", id).Error; err != nil {
		return nil, ErrSignalementNotFound
	}

	commentaire := models.Commentaire{
		SignalementID: id,
		Message:       message,
	}
	if err := s.db.Create(&commentaire).Error; err != nil {
		return nil, fmt.Errorf("failed to create commentaire: %w", err)
	}
	return &commentaire, nil
}

func (s *SignalementService) ListCommentaires(id uuid.UUID) ([]models.Commentaire, error) {
	var commentaires []models.Commentaire
	err := s.db.Where("signalement_id = ?", id).
		Order("created_at ASC").
		Find(&commentaires).Error
	return commentaires, err
}

// TrackByCode returns the full public tracking view: the signalement with
// its category, status, comments and audit trail, looked up by code.
func (s *SignalementService) TrackByCode(code string) (*models.Signalement, error) {
	var signalement models.Signalement
	err := s.detailQuery().Where("code_suivi = ?", code).First(&signalement).Error
	if err != nil {
		return nil, ErrCodeSuiviInvalid
	}
	return &signalement, nil
}

// StatutByCode returns the minimal polling view for a tracking code.
func (s *SignalementService) StatutByCode(code string) (*dto.StatutSuivi, error) {
	var signalement models.Signalement
	err := s.db.Preload("Statut").Where("code_suivi = ?", code).First(&signalement).Error
	if err != nil {
		return nil, ErrCodeSuiviInvalid
	}

	resp := &dto.StatutSuivi{
		CodeSuivi: signalement.CodeSuivi,
		Titre:     signalement.Titre,
		Votes:     signalement.Votes,
		CreatedAt: signalement.CreatedAt,
		UpdatedAt: signalement.UpdatedAt,
	}
	if signalement.Statut != nil {
		resp.Statut = dto.StatutInfo{
			Nom:         signalement.Statut.Nom,
			Description: signalement.Statut.Description,
			Couleur:     signalement.Statut.Couleur,
			EstFinal:    signalement.Statut.EstFinal,
		}
	}
	return resp, nil
}

// ChangeStatut records the transition in the audit trail and moves the
// signalement to the new statut as one transaction: both writes commit or
// neither does. Any statut may follow any other; legality is not modeled.
func (s *SignalementService) ChangeStatut(id uuid.UUID, req *dto.ChangeStatutRequest, admin *models.Administrateur) (*models.Signalement, error) {
	var signalement models.Signalement
	if err := s.db.First(&signalement, "id = ?", id).Error; err != nil {
		return nil, ErrSignalementNotFound
	}

	nouveauStatutID, err := uuid.Parse(req.NouveauStatutID)
	if err != nil {
		return nil, ErrStatutInvalid
	}
	var nouveauStatut models.Statut
	if err := s.db.First(&nouveauStatut, "id = ?", nouveauStatutID).Error; err != nil {
		return nil, ErrStatutInvalid
	}

	ancienStatutID := signalement.StatutID
	err = s.db.Transaction(func(tx *gorm.DB) error {
		historique := models.HistoriqueStatut{
			SignalementID:   signalement.ID,
			AncienStatutID:  &ancienStatutID,
			NouveauStatutID: nouveauStatut.ID,
			AdminID:         admin.ID,
			Commentaire:     req.Commentaire,
		}
		if err := tx.Create(&historique).Error; err != nil {
			return fmt.Errorf("failed to record historique: %w", err)
		}
		return tx.Model(&signalement).Update("statut_id", nouveauStatut.ID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("status change transaction failed: %w", err)
	}

	var updated models.Signalement
	if err := s.db.Preload("Categorie").Preload("Statut").First(&updated, "id = ?", signalement.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload signalement: %w", err)
	}
	return &updated, nil
}

// AdminList pages through signalements with optional statut/categorie filters.
func (s *SignalementService) AdminList(page, limit int, statutID, categorieID string) (*dto.PaginatedSignalements, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.db.Model(&models.Signalement{})
	if statutID != "" {
		query = query.Where("statut_id = ?", statutID)
	}
	if categorieID != "" {
		query = query.Where("categorie_id = ?", categorieID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var signalements []models.Signalement
	err := query.Select(commentCountSelect).
		Preload("Categorie").
		Preload("Statut").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&signalements).Error
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedSignalements{
		Signalements: signalements,
		Pagination: dto.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: PageCount(total, limit),
		},
	}, nil
}

// AdminDetail is the full view by id, same shape as the public tracking view.
func (s *SignalementService) AdminDetail(id uuid.UUID) (*models.Signalement, error) {
	var signalement models.Signalement
	err := s.detailQuery().Where("signalements.id = ?", id).First(&signalement).Error
	if err != nil {
		return nil, ErrSignalementNotFound
	}
	return &signalement, nil
}

// Dashboard aggregates totals, per-statut and per-categorie counts, and the
// ten most recent signalements.
func (s *SignalementService) Dashboard() (*dto.DashboardResponse, error) {
	var total int64
	if err := s.db.Model(&models.Signalement{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var parStatut []dto.StatutCount
	err := s.db.Model(&models.Signalement{}).
		Select("signalements.statut_id, statuts.nom, statuts.couleur, count(*) as count").
		Joins("JOIN statuts ON statuts.id = signalements.statut_id").
		Group("signalements.statut_id, statuts.nom, statuts.couleur").
		Order("count DESC").
		Scan(&parStatut).Error
	if err != nil {
		return nil, err
	}

	var parCategorie []dto.CategorieCount
	err = s.db.Model(&models.Signalement{}).
		Select("signalements.categorie_id, categories.nom, categories.couleur, count(*) as count").
		Joins("JOIN categories ON categories.id = signalements.categorie_id").
		Group("signalements.categorie_id, categories.nom, categories.couleur").
		Order("count DESC").
		Scan(&parCategorie).Error
	if err != nil {
		return nil, err
	}

	var recents []models.Signalement
	err = s.db.Preload("Categorie").Preload("Statut").
		Order("created_at DESC").
		Limit(10).
		Find(&recents).Error
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalSignalements:  total,
		ParStatut:          parStatut,
		ParCategorie:       parCategorie,
		RecentSignalements: recents,
	}, nil
}

func (s *SignalementService) detailQuery() *gorm.DB {
	return s.db.
		Preload("Categorie").
		Preload("Statut").
		Preload("Commentaires", func(db *gorm.DB) *gorm.DB {
			return db.Order("commentaires.created_at ASC")
		}).
		Preload("HistoriqueStatuts", func(db *gorm.DB) *gorm.DB {
			return db.Order("historique_statuts.created_at ASC")
		}).
		Preload("HistoriqueStatuts.AncienStatut").
		Preload("HistoriqueStatuts.NouveauStatut").
		Preload("HistoriqueStatuts.Administrateur")
}

// PageCount is the ceiling of total/limit, never below zero.
func PageCount(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
