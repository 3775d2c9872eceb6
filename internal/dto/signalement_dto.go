package dto

import (
	"time"

	"github.com/denonce-tg/signalement-api/internal/models"
	"github.com/google/uuid"
)

type CreateSignalementRequest struct {
	Titre       string  `json:"titre"`
	Description string  `json:"description"`
	CategorieID string  `json:"categorieId"`
	Lieu        *string `json:"lieu"`
	MediaURL    *string `json:"mediaUrl"`
}

type CommentaireRequest struct {
	Message string `json:"message"`
}

type VoteResponse struct {
	Message string `json:"message"`
	Votes   int    `json:"votes"`
}

// ActeurRef identifies the acting administrator in responses without
// exposing the full account record.
type ActeurRef struct {
	Nom   string `json:"nom"`
	Email string `json:"email"`
}

type HistoriqueEntry struct {
	ID             uuid.UUID      `json:"id"`
	Commentaire    *string        `json:"commentaire"`
	CreatedAt      time.Time      `json:"createdAt"`
	AncienStatut   *models.Statut `json:"ancienStatut"`
	NouveauStatut  *models.Statut `json:"nouveauStatut"`
	Administrateur ActeurRef      `json:"administrateur"`
}

// SignalementDetail is the full tracking view: the report with its category,
// status, comments and audit trail. The embedded model hides its raw
// HistoriqueStatuts so the mapped entries below are the only trail shape.
type SignalementDetail struct {
	*models.Signalement
	HistoriqueStatuts []HistoriqueEntry `json:"historiqueStatuts"`
}

func NewSignalementDetail(sig *models.Signalement) *SignalementDetail {
	entries := make([]HistoriqueEntry, 0, len(sig.HistoriqueStatuts))
	for _, h := range sig.HistoriqueStatuts {
		entry := HistoriqueEntry{
			ID:            h.ID,
			Commentaire:   h.Commentaire,
			CreatedAt:     h.CreatedAt,
			AncienStatut:  h.AncienStatut,
			NouveauStatut: h.NouveauStatut,
		}
		if h.Administrateur != nil {
			entry.Administrateur = ActeurRef{Nom: h.Administrateur.Nom, Email: h.Administrateur.Email}
		}
		entries = append(entries, entry)
	}
	return &SignalementDetail{Signalement: sig, HistoriqueStatuts: entries}
}

// StatutSuivi is the minimal-disclosure polling view looked up by tracking code.
type StatutSuivi struct {
	CodeSuivi string     `json:"codeSuivi"`
	Titre     string     `json:"titre"`
	Votes     int        `json:"votes"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Statut    StatutInfo `json:"statut"`
}

type StatutInfo struct {
	Nom         string  `json:"nom"`
	Description *string `json:"description"`
	Couleur     *string `json:"couleur"`
	EstFinal    bool    `json:"estFinal"`
}

type ChangeStatutRequest struct {
	NouveauStatutID string  `json:"nouveauStatutId"`
	Commentaire     *string `json:"commentaire"`
}

type ChangeStatutResponse struct {
	Message     string              `json:"message"`
	Signalement *models.Signalement `json:"signalement"`
	UpdatedBy   ActeurRef           `json:"updatedBy"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PaginatedSignalements struct {
	Signalements []models.Signalement `json:"signalements"`
	Pagination   Pagination           `json:"pagination"`
}

type StatutCount struct {
	StatutID uuid.UUID `json:"statutId"`
	Nom      string    `json:"nom"`
	Couleur  *string   `json:"couleur"`
	Count    int64     `json:"count"`
}

type CategorieCount struct {
	CategorieID uuid.UUID `json:"categorieId"`
	Nom         string    `json:"nom"`
	Couleur     *string   `json:"couleur"`
	Count       int64     `json:"count"`
}

type AdminInfo struct {
	Nom  string `json:"nom"`
	Role string `json:"role"`
}

type DashboardResponse struct {
	TotalSignalements  int64                `json:"totalSignalements"`
	ParStatut          []StatutCount        `json:"signalementsByStatut"`
	ParCategorie       []CategorieCount     `json:"signalementsByCategorie"`
	RecentSignalements []models.Signalement `json:"recentSignalements"`
	AdminInfo          AdminInfo            `json:"adminInfo"`
}
